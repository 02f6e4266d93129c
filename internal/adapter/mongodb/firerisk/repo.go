// Package firerisk implements the FireRiskRecord repository using MongoDB.
package firerisk

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firewatch-bo/chiquitos-backend/internal/adapter/mongodb"
	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

// Repo provides fire-risk record persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new fire-risk record repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.RecordsCollection)}
}

// Create inserts a new record and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, rec *domain.FireRiskRecord) (*domain.FireRiskRecord, error) {
	doc := fromDomain(rec)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "firerisk", rec.Location)
	}

	created := toDomain(doc)
	return &created, nil
}

// CreateMany bulk-inserts records, assigning fresh ids. Used by the demo
// seeder; the request path always inserts one at a time.
func (r *Repo) CreateMany(ctx context.Context, recs []domain.FireRiskRecord) error {
	if len(recs) == 0 {
		return nil
	}

	docs := make([]any, 0, len(recs))
	for i := range recs {
		doc := fromDomain(&recs[i])
		doc.ID = primitive.NewObjectID()
		docs = append(docs, doc)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return mongodb.MapError(err, "firerisk", "batch")
	}
	return nil
}

// ListRecent returns up to limit records ordered most-recent-first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.FireRiskRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mongodb.MapError(err, "firerisk", "")
	}
	defer cur.Close(ctx)

	var docs []recordDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "firerisk", "")
	}

	records := make([]domain.FireRiskRecord, 0, len(docs))
	for i := range docs {
		records = append(records, toDomain(&docs[i]))
	}
	return records, nil
}

// UpdateName renames a record and returns the updated document.
// Returns domain.ErrNotFound for unknown or malformed ids.
func (r *Repo) UpdateName(ctx context.Context, id, name string) (*domain.FireRiskRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("firerisk %s: %w", id, domain.ErrNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": name}},
		opts,
	)

	var doc recordDoc
	if err := res.Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "firerisk", id)
	}

	rec := toDomain(&doc)
	return &rec, nil
}

// Delete removes a record. Returns false without error when the id is
// unknown or malformed.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, mongodb.MapError(err, "firerisk", id)
	}
	return res.DeletedCount > 0, nil
}

// ExistsBySourceID reports whether a record derived from the given
// external report already exists.
func (r *Repo) ExistsBySourceID(ctx context.Context, sourceID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx,
		bson.M{"sourceId": sourceID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, mongodb.MapError(err, "firerisk", sourceID)
	}
	return count > 0, nil
}

// ExistsByCoordinates reports whether a record exists at the exact
// coordinate pair. Kept as a legacy dedup fallback for records created
// before sourceId was introduced.
func (r *Repo) ExistsByCoordinates(ctx context.Context, lat, lng float64) (bool, error) {
	count, err := r.coll.CountDocuments(ctx,
		bson.M{"coordinates.lat": lat, "coordinates.lng": lng},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, mongodb.MapError(err, "firerisk", "")
	}
	return count > 0, nil
}
