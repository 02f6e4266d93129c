// Package user implements the User repository using MongoDB.
package user

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

// userDoc is the BSON shape of an account document.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nombre       string             `bson:"nombre"`
	Apellido     string             `bson:"apellido"`
	Email        string             `bson:"email"`
	CI           string             `bson:"ci"`
	PasswordHash string             `bson:"passwordHash"`
	Telefono     string             `bson:"telefono"`
	IsAdmin      bool               `bson:"isAdmin"`
}

// Repo provides account persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new user repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.UsersCollection)}
}

// Create inserts a new account. Returns domain.ErrAlreadyExists when the
// ci is already taken (unique index).
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc := fromDomain(u)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "user", u.CI)
	}

	created := toDomain(doc)
	return &created, nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return r.findOne(ctx, bson.M{"_id": oid}, id)
}

// GetByCI returns an account by citizen id.
func (r *Repo) GetByCI(ctx context.Context, ci string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"ci": ci}, ci)
}

// GetByEmail returns an account by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, email)
}

// List returns all accounts.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, mongodb.MapError(err, "user", "")
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "user", "")
	}

	users := make([]domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, toDomain(&docs[i]))
	}
	return users, nil
}

// UpdateFields applies the non-nil fields of upd and returns the updated
// account. Returns domain.ErrNotFound for unknown ids.
func (r *Repo) UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	set := bson.M{}
	if upd.Nombre != nil {
		set["nombre"] = *upd.Nombre
	}
	if upd.Apellido != nil {
		set["apellido"] = *upd.Apellido
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Telefono != nil {
		set["telefono"] = *upd.Telefono
	}
	if upd.PasswordHash != nil {
		set["passwordHash"] = *upd.PasswordHash
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": set}, id)
}

// SetAdmin grants admin rights and returns the updated account.
func (r *Repo) SetAdmin(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": bson.M{"isAdmin": true}}, id)
}

// Delete removes an account. Returns false without error when the id is
// unknown or malformed.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, mongodb.MapError(err, "user", id)
	}
	return res.DeletedCount > 0, nil
}

func (r *Repo) findOne(ctx context.Context, filter bson.M, ref string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "user", ref)
	}
	u := toDomain(&doc)
	return &u, nil
}

func (r *Repo) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M, ref string) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "user", ref)
	}
	u := toDomain(&doc)
	return &u, nil
}

func fromDomain(u *domain.User) *userDoc {
	return &userDoc{
		Nombre:       u.Nombre,
		Apellido:     u.Apellido,
		Email:        u.Email,
		CI:           u.CI,
		PasswordHash: u.PasswordHash,
		Telefono:     u.Telefono,
		IsAdmin:      u.IsAdmin,
	}
}

func toDomain(doc *userDoc) domain.User {
	return domain.User{
		ID:           doc.ID.Hex(),
		Nombre:       doc.Nombre,
		Apellido:     doc.Apellido,
		Email:        doc.Email,
		CI:           doc.CI,
		PasswordHash: doc.PasswordHash,
		Telefono:     doc.Telefono,
		IsAdmin:      doc.IsAdmin,
	}
}
