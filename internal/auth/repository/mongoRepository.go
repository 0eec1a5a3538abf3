package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const usersCollection = "users"

type userDocument struct {
	Sub       string    `bson:"sub"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d *userDocument) toModel() (*models.User, error) {
	user := &models.User{
		Username:  d.Username,
		Password:  d.Password,
		Role:      models.Role(d.Role),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Sub != "" {
		sub, err := uuid.Parse(d.Sub)
		if err != nil {
			return nil, fmt.Errorf("decode sub of %q: %w", d.Username, err)
		}
		user.Sub = sub
	}
	return user, nil
}

type MongoUserRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoUserRepository(client *mongo.Client, database string) *MongoUserRepository {
	return &MongoUserRepository{
		client:     client,
		collection: client.Database(database).Collection(usersCollection),
	}
}

// EnsureIndexes makes username unique in the collection.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return doc.toModel()
}

func (r *MongoUserRepository) CheckUserExists(ctx context.Context, username string) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("check user %q: %w", username, err)
	}
	if count > 0 {
		return customerrors.ErrUsernameAlreadyExists
	}
	return nil
}

func (r *MongoUserRepository) SaveUser(ctx context.Context, user *models.User) error {
	if user.Sub == uuid.Nil {
		user.Sub = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	_, err := r.collection.InsertOne(ctx, userDocument{
		Sub:       user.Sub.String(),
		Username:  user.Username,
		Password:  user.Password,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return customerrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("save user %q: %w", user.Username, err)
	}
	return nil
}

func (r *MongoUserRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *MongoUserRepository) Close() error {
	return r.client.Disconnect(context.Background())
}
