package repositories

import (
	"context"

	"civicconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository provides indexed access to the users collection. Users are
// keyed by email; uniqueness is enforced by the collection index.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByCredentials(ctx context.Context, email, password string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}

type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository returns a UserRepository backed by the users collection
func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{collection: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user models.User) error {
	exists, err := r.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrDuplicateEmail
	}

	_, err = r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateEmail
	}
	return err
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindByCredentials resolves a user by email and checks the password against
// the stored hash. Both failure modes return ErrInvalidCredentials so the
// response does not reveal whether the email is registered.
func (r *mongoUserRepository) FindByCredentials(ctx context.Context, email, password string) (models.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err == models.ErrNotFound {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if !user.ComparePassword(password) {
		return models.User{}, models.ErrInvalidCredentials
	}

	return user, nil
}

func (r *mongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// Delete removes a user by email. Issues reported by the user are left in
// place; their reportedBy values become historical data.
func (r *mongoUserRepository) Delete(ctx context.Context, email string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
