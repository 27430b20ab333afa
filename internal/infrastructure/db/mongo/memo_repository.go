package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

const collectionMemos = "memos"

type MemoRepository struct {
	col *mongo.Collection
}

func NewMemoRepository(db *mongo.Database) *MemoRepository {
	return &MemoRepository{col: db.Collection(collectionMemos)}
}

// ListByClient returns the client's memos, newest CreatedAt first.
func (r *MemoRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Memo, error) {
	return r.list(ctx, bson.M{"clientId": clientID})
}

// ListAll returns every memo across all clients, newest CreatedAt first.
func (r *MemoRepository) ListAll(ctx context.Context) ([]domain.Memo, error) {
	return r.list(ctx, bson.M{})
}

func (r *MemoRepository) list(ctx context.Context, filter bson.M) ([]domain.Memo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	memos := []domain.Memo{}
	if err := cur.All(ctx, &memos); err != nil {
		return nil, fmt.Errorf("list memos: decode: %w", err)
	}
	return memos, nil
}

// Insert stores a new memo, assigning its id and the immutable CreatedAt at
// write time. CreatedAt is truncated to the store's millisecond precision so
// the returned record equals what a re-fetch would yield.
func (r *MemoRepository) Insert(ctx context.Context, m domain.Memo) (domain.Memo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m.ID = primitive.NewObjectID().Hex()
	m.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	m.MemoDate = m.MemoDate.UTC()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return domain.Memo{}, fmt.Errorf("insert memo: %w", err)
	}
	return m, nil
}

// Update replaces text and memoDate of the memo under (clientID, memoID) and
// returns the updated record. CreatedAt and author are never touched.
func (r *MemoRepository) Update(ctx context.Context, clientID, memoID, text string, memoDate time.Time) (domain.Memo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": memoID, "clientId": clientID}
	update := bson.M{"$set": bson.M{"text": text, "memoDate": memoDate.UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m domain.Memo
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Memo{}, domain.ErrMemoNotFound
		}
		return domain.Memo{}, fmt.Errorf("update memo %s: %w", memoID, err)
	}
	return m, nil
}

// Delete removes the memo; deleting an absent memo succeeds silently.
func (r *MemoRepository) Delete(ctx context.Context, clientID, memoID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": memoID, "clientId": clientID}); err != nil {
		return fmt.Errorf("delete memo %s: %w", memoID, err)
	}
	return nil
}

func (r *MemoRepository) DeleteByClient(ctx context.Context, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"clientId": clientID}); err != nil {
		return fmt.Errorf("delete memos for %s: %w", clientID, err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing the memo listings.
func (r *MemoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}
