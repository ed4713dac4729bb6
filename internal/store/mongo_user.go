package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Login        string    `bson:"login"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

type mongoUserRepository struct {
	collection *mongo.Collection
	ids        utils.IDGenerator
	now        func() time.Time
}

func NewMongoUserRepository(db *MongoDB) UserRepository {
	db.logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: db.database.Collection(models.User{}.TableName()),
		ids:        utils.NewUUIDGenerator(),
		now:        mongoNow,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now()

	_, err := r.collection.InsertOne(ctx, userDocument{
		ID:           user.UserID,
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, ErrLoginAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}

	user.Password = ""
	return user, nil
}

func (r *mongoUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.D{{Key: "login", Value: login}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoUserRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}

	return models.User{
		UserID:       doc.ID,
		Login:        doc.Login,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
