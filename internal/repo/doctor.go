package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepo reads the externally curated doctors collection.
type DoctorRepo struct {
	coll *mongo.Collection
}

func (r *DoctorRepo) FindAll(ctx context.Context) ([]Document, error) {
	out, err := findAll[Document](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	return out, nil
}

// FindByID returns the matching doctors; an unknown id yields an empty slice.
func (r *DoctorRepo) FindByID(ctx context.Context, id primitive.ObjectID) ([]Document, error) {
	out, err := findAll[Document](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return out, nil
}
