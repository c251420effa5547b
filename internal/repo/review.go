package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepo struct {
	coll *mongo.Collection
}

func (r *ReviewRepo) FindAll(ctx context.Context) ([]Document, error) {
	out, err := findAll[Document](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	return out, nil
}
