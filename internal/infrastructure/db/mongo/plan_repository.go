package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

const collectionPlans = "plans"

type PlanRepository struct {
	col *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{col: db.Collection(collectionPlans)}
}

func (r *PlanRepository) List(ctx context.Context) ([]domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	plans := []domain.Plan{}
	if err := cur.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("list plans: decode: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) Insert(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return domain.Plan{}, fmt.Errorf("insert plan: %w", err)
	}
	return p, nil
}

// Update replaces the whole plan document. Plans carry no optional fields,
// so there is no field-deletion subtlety here.
func (r *PlanRepository) Update(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("update plan %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	return p, nil
}
