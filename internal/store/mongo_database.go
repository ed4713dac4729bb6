package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// MongoDB holds a connected client and the database the repositories use.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	db := &MongoDB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}

	if err = db.ensureIndexes(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the unique login index and the owner listing index.
// It is idempotent.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(models.User{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: users index: %w", ErrMongoOperation, err)
	}

	_, err = m.database.Collection(models.CipheredVaultItem{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: vault_items index: %w", ErrMongoOperation, err)
	}

	return nil
}

// Ping implements [HealthChecker].
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// mongoNow truncates to the millisecond resolution of BSON dates so the
// value returned from Create equals the one read back later.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
