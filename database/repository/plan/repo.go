package planRepo

import (
	"context"

	"planbuilder/database"
	"planbuilder/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PlanRepository stores submitted plans.
type PlanRepository interface {
	Create(ctx context.Context, plan models.Plan) (string, error)
	GetByID(ctx context.Context, id string) (*models.Plan, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]models.Plan, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo returns a new PlanRepository instance using MongoDB.
func NewMongoPlanRepo() PlanRepository {
	db := database.MongoClient.Database("planbuilder")
	return &mongoPlanRepo{
		coll: db.Collection("plans"),
	}
}
