package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

const collectionShipments = "shipments"

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// Create inserts a new shipment document. The unique index on trackingId
// turns concurrent duplicate inserts into ErrDuplicateShipment.
func (r *ShipmentRepository) Create(ctx context.Context, s *domain.ShipmentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateShipment
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// FindByTrackingID retrieves a shipment by its tracking id.
func (r *ShipmentRepository) FindByTrackingID(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.ShipmentRecord
	err := r.col.FindOne(ctx, bson.M{"trackingId": trackingID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	return &s, nil
}

// List returns one page of shipments matching the filter, newest first, plus
// the total match count for pagination.
func (r *ShipmentRepository) List(ctx context.Context, filter ports.ListShipmentsFilter) ([]*domain.ShipmentRecord, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.FreightType != "" {
		query["freightType"] = filter.FreightType
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"trackingId": pattern},
			bson.M{"sender": pattern},
			bson.M{"recipient": pattern},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count shipments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list shipments: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*domain.ShipmentRecord
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode shipments: %w", err)
	}
	return items, total, nil
}

// Update applies the sparse patch with a single $set and returns the
// post-update document. Nil patch fields never reach the update document, so
// absent fields are untouched while present empty values overwrite.
func (r *ShipmentRepository) Update(ctx context.Context, trackingID string, patch domain.ShipmentPatch) (*domain.ShipmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("unmarshal patch: %w", err)
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.ShipmentRecord
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"trackingId": trackingID},
		bson.M{"$set": set},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return &updated, nil
}

// Delete removes a shipment permanently.
func (r *ShipmentRepository) Delete(ctx context.Context, trackingID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"trackingId": trackingID})
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

// AppendEvent pushes one timeline event atomically and returns the post-update
// document, preserving insertion order of the events array.
func (r *ShipmentRepository) AppendEvent(ctx context.Context, trackingID string, ev domain.TimelineEvent) (*domain.ShipmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"events": ev},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.ShipmentRecord
	err := r.col.FindOneAndUpdate(ctx, bson.M{"trackingId": trackingID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("append event: %w", err)
	}
	return &updated, nil
}

// EnsureIndexes creates the indexes the repository depends on.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trackingId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
