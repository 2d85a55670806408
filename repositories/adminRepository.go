package repositories

import (
	"context"
	"log"

	"civicconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository manages the single administrator record.
type AdminRepository interface {
	Get(ctx context.Context) (models.AdminAccount, error)
	Seed(ctx context.Context, account models.AdminAccount) error
}

type mongoAdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository returns an AdminRepository backed by the adminAccount collection
func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &mongoAdminRepository{collection: db.Collection("adminAccount")}
}

func (r *mongoAdminRepository) Get(ctx context.Context) (models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return models.AdminAccount{}, models.ErrNotFound
	}
	if err != nil {
		return models.AdminAccount{}, err
	}
	return account, nil
}

// Seed inserts the administrator record at first run. An existing record is
// left untouched so credential changes require operator action.
func (r *mongoAdminRepository) Seed(ctx context.Context, account models.AdminAccount) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := account.HashPassword(); err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		return err
	}

	log.Println("Seeded administrator account:", account.Email)
	return nil
}
