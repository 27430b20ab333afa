package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

const collectionClients = "clients"

// optionalClientFields are the fields erased from the stored document when
// left empty on update (replace semantics, not a partial patch).
var optionalClientFields = []string{"contactName", "contactEmail", "contactPhone", "website"}

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	clients := []domain.Client{}
	if err := cur.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("list clients: decode: %w", err)
	}
	return clients, nil
}

// Insert stores a new client document with a freshly assigned id.
func (r *ClientRepository) Insert(ctx context.Context, c domain.Client) (domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	c.LatestMemo = nil
	if _, err := r.col.InsertOne(ctx, clientWriteDoc(c)); err != nil {
		return domain.Client{}, fmt.Errorf("insert client: %w", err)
	}
	return c, nil
}

// Update replaces the client's editable fields. Empty optional contact
// fields are removed from the document with $unset rather than preserved,
// so a cleared field does not linger from a previous save.
func (r *ClientRepository) Update(ctx context.Context, c domain.Client) (domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"name":             c.Name,
		"type":             c.Type,
		"countryStrengths": c.CountryStrengths,
	}
	unset := bson.M{}
	for field, value := range optionalClientValues(c) {
		if value == "" {
			unset[field] = ""
		} else {
			set[field] = value
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.col.UpdateByID(ctx, c.ID, update)
	if err != nil {
		return domain.Client{}, fmt.Errorf("update client %s: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return domain.Client{}, domain.ErrClientNotFound
	}
	c.LatestMemo = nil
	return c, nil
}

// InsertMany stores the whole batch inside one transaction: a failure leaves
// no new documents behind. Ids are assigned up front and returned in input
// order.
func (r *ClientRepository) InsertMany(ctx context.Context, cs []domain.Client) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]any, 0, len(cs))
	out := make([]domain.Client, 0, len(cs))
	for _, c := range cs {
		c.ID = primitive.NewObjectID().Hex()
		c.LatestMemo = nil
		docs = append(docs, clientWriteDoc(c))
		out = append(out, c)
	}

	session, err := r.col.Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("bulk insert clients: start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return r.col.InsertMany(sc, docs)
	})
	if err != nil {
		return nil, fmt.Errorf("bulk insert clients: %w", err)
	}
	return out, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}
	return nil
}

// clientWriteDoc builds an insert document carrying only the persisted
// fields; empty optional fields are simply absent.
func clientWriteDoc(c domain.Client) bson.M {
	doc := bson.M{
		"_id":              c.ID,
		"name":             c.Name,
		"type":             c.Type,
		"countryStrengths": c.CountryStrengths,
	}
	for field, value := range optionalClientValues(c) {
		if value != "" {
			doc[field] = value
		}
	}
	return doc
}

func optionalClientValues(c domain.Client) map[string]string {
	return map[string]string{
		"contactName":  c.ContactName,
		"contactEmail": c.ContactEmail,
		"contactPhone": c.ContactPhone,
		"website":      c.Website,
	}
}
