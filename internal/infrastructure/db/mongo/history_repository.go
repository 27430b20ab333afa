package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

const collectionHistory = "history"

type HistoryRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{col: db.Collection(collectionHistory)}
}

// ListByClient returns the client's booking history, newest date first.
func (r *HistoryRepository) ListByClient(ctx context.Context, clientID string) ([]domain.HistoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list history for %s: %w", clientID, err)
	}
	items := []domain.HistoryItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("list history for %s: decode: %w", clientID, err)
	}
	return items, nil
}

func (r *HistoryRepository) Insert(ctx context.Context, item domain.HistoryItem) (domain.HistoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID().Hex()
	item.Date = item.Date.UTC()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return domain.HistoryItem{}, fmt.Errorf("insert history: %w", err)
	}
	return item, nil
}

func (r *HistoryRepository) DeleteByClient(ctx context.Context, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"clientId": clientID}); err != nil {
		return fmt.Errorf("delete history for %s: %w", clientID, err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing the per-client listing.
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: -1}}},
	})
	return err
}
