package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultItemDocument struct {
	ID        string    `bson:"_id"`
	OwnerID   string    `bson:"owner_id"`
	Title     string    `bson:"title"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	URL       string    `bson:"url"`
	Notes     string    `bson:"notes"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func newVaultItemDocument(item models.CipheredVaultItem) vaultItemDocument {
	return vaultItemDocument{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		Title:     string(item.Fields.Title),
		Username:  string(item.Fields.Username),
		Password:  string(item.Fields.Password),
		URL:       string(item.Fields.URL),
		Notes:     string(item.Fields.Notes),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (d vaultItemDocument) model() models.CipheredVaultItem {
	return models.CipheredVaultItem{
		ID:      d.ID,
		OwnerID: d.OwnerID,
		Fields: models.CipheredVaultFields{
			Title:    models.CipheredText(d.Title),
			Username: models.CipheredText(d.Username),
			Password: models.CipheredText(d.Password),
			URL:      models.CipheredText(d.URL),
			Notes:    models.CipheredText(d.Notes),
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ownedFilter(id, ownerID string) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "owner_id", Value: ownerID}}
}

// mongoVaultItemRepository implements [VaultItemRepository] on a MongoDB
// collection. Replace and Delete filter on both _id and owner_id, so the
// ownership check is part of the single-document write.
type mongoVaultItemRepository struct {
	collection *mongo.Collection
	ids        utils.IDGenerator
	now        func() time.Time
}

func NewMongoVaultItemRepository(db *MongoDB) VaultItemRepository {
	db.logger.Debug().Msg("creating mongo vault item repository")
	return &mongoVaultItemRepository{
		collection: db.database.Collection(models.CipheredVaultItem{}.TableName()),
		ids:        utils.NewUUIDGenerator(),
		now:        mongoNow,
	}
}

func (r *mongoVaultItemRepository) Create(ctx context.Context, item models.CipheredVaultItem) (models.CipheredVaultItem, error) {
	log := logger.FromContext(ctx)

	item.ID = r.ids.Generate()
	item.CreatedAt = r.now()
	item.UpdatedAt = item.CreatedAt

	if _, err := r.collection.InsertOne(ctx, newVaultItemDocument(item)); err != nil {
		log.Err(err).
			Str("func", "mongoVaultItemRepository.Create").
			Str("owner_id", item.OwnerID).
			Msg("failed to insert vault item")
		return models.CipheredVaultItem{}, fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}

	return item, nil
}

func (r *mongoVaultItemRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]models.CipheredVaultItem, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{{Key: "owner_id", Value: ownerID}}, opts)
	if err != nil {
		log.Err(err).
			Str("func", "mongoVaultItemRepository.FindAllByOwner").
			Str("owner_id", ownerID).
			Msg("failed to find vault items")
		return nil, fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}

	var docs []vaultItemDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).
			Str("func", "mongoVaultItemRepository.FindAllByOwner").
			Str("owner_id", ownerID).
			Msg("failed to decode vault items")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	items := make([]models.CipheredVaultItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.model())
	}

	return items, nil
}

func (r *mongoVaultItemRepository) FindOneByOwner(ctx context.Context, id, ownerID string) (models.CipheredVaultItem, error) {
	var doc vaultItemDocument
	err := r.collection.FindOne(ctx, ownedFilter(id, ownerID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CipheredVaultItem{}, ErrVaultItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoVaultItemRepository.FindOneByOwner").
			Str("id", id).
			Msg("failed to find vault item")
		return models.CipheredVaultItem{}, fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}

	return doc.model(), nil
}

func (r *mongoVaultItemRepository) Replace(ctx context.Context, id, ownerID string, fields models.CipheredVaultFields) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: string(fields.Title)},
		{Key: "username", Value: string(fields.Username)},
		{Key: "password", Value: string(fields.Password)},
		{Key: "url", Value: string(fields.URL)},
		{Key: "notes", Value: string(fields.Notes)},
		{Key: "updated_at", Value: r.now()},
	}}}

	res, err := r.collection.UpdateOne(ctx, ownedFilter(id, ownerID), update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoVaultItemRepository.Replace").
			Str("id", id).
			Msg("failed to update vault item")
		return fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}
	if res.MatchedCount == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}

func (r *mongoVaultItemRepository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.collection.DeleteOne(ctx, ownedFilter(id, ownerID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoVaultItemRepository.Delete").
			Str("id", id).
			Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrMongoOperation, err)
	}
	if res.DeletedCount == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}
