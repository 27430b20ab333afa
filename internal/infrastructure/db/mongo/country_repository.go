package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionSettings = "settings"
	countriesDocID     = "countries"
)

// CountryRepository stores the global country vocabulary as a single
// settings document holding one string array.
type CountryRepository struct {
	col *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{col: db.Collection(collectionSettings)}
}

type countriesDoc struct {
	List []string `bson:"list"`
}

// List returns the vocabulary alphabetically sorted. A missing settings
// document yields an empty vocabulary, not an error.
func (r *CountryRepository) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc countriesDoc
	err := r.col.FindOne(ctx, bson.M{"_id": countriesDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list countries: %w", err)
	}

	out := append([]string{}, doc.List...)
	sort.Strings(out)
	return out, nil
}

// Add unions the name into the vocabulary with $addToSet, so re-adding an
// existing name is idempotent. The settings document is created on first use.
func (r *CountryRepository) Add(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateByID(ctx, countriesDocID,
		bson.M{"$addToSet": bson.M{"list": name}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("add country %q: %w", name, err)
	}
	return nil
}
