package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionReviews      = "reviews"
	CollectionDoctors      = "doctors"
	CollectionAppointments = "appointments"
	CollectionUsers        = "users"
)

var ErrNotFound = errors.New("document not found")

// Document is a record exactly as its collection holds it. Fields the
// application does not know about pass through untouched.
type Document = bson.M

// InsertResult is the acknowledgment returned for a single insert.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// DeleteResult is the acknowledgment returned for a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Client groups the collection repositories of one database.
type Client struct {
	db *mongo.Database

	Appointment *AppointmentRepo
	Doctor      *DoctorRepo
	Review      *ReviewRepo
	User        *UserRepo
}

func NewClient(db *mongo.Database) *Client {
	return &Client{
		db:          db,
		Appointment: &AppointmentRepo{coll: db.Collection(CollectionAppointments)},
		Doctor:      &DoctorRepo{coll: db.Collection(CollectionDoctors)},
		Review:      &ReviewRepo{coll: db.Collection(CollectionReviews)},
		User:        &UserRepo{coll: db.Collection(CollectionUsers)},
	}
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

// EnsureIndexes creates the indexes the services rely on. It is idempotent.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("users_email_unique").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = c.db.Collection(CollectionAppointments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("appointments_email"),
	})
	if err != nil {
		return fmt.Errorf("create appointments email index: %w", err)
	}

	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, mongo.ErrNoDocuments)
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// ParseID converts a hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// withoutID copies doc minus any caller-supplied _id so the server assigns one.
func withoutID(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}

func insertDocument(ctx context.Context, coll *mongo.Collection, doc Document) (*InsertResult, error) {
	res, err := coll.InsertOne(ctx, withoutID(doc))
	if err != nil {
		return nil, err
	}
	id, err := insertedID(res)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func insertedID(res *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// findAll decodes every document matching filter into a non-nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
