package planRepo

import (
	"context"
	"errors"
	"time"

	"planbuilder/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a submitted plan and returns its ID.
func (r *mongoPlanRepo) Create(ctx context.Context, plan models.Plan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetByID returns a plan by its ID.
func (r *mongoPlanRepo) GetByID(ctx context.Context, id string) (*models.Plan, error) {
	var plan models.Plan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByOwnerID fetches all plans submitted by one owner.
func (r *mongoPlanRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]models.Plan, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// DeleteByID removes a plan by ID.
func (r *mongoPlanRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("plan not found")
	}
	return nil
}
