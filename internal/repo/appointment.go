package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentFilter narrows Find. The zero value matches every appointment.
type AppointmentFilter struct {
	Email string
}

func (f AppointmentFilter) toBSON() bson.M {
	m := bson.M{}
	if f.Email != "" {
		m["email"] = f.Email
	}
	return m
}

// AppointmentRepo stores bookings as free-form documents keyed by email.
type AppointmentRepo struct {
	coll *mongo.Collection
}

func (r *AppointmentRepo) Insert(ctx context.Context, doc Document) (*InsertResult, error) {
	res, err := insertDocument(ctx, r.coll, doc)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return res, nil
}

func (r *AppointmentRepo) Find(ctx context.Context, f AppointmentFilter) ([]Document, error) {
	out, err := findAll[Document](ctx, r.coll, f.toBSON())
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	return out, nil
}

func (r *AppointmentRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete appointment: %w", err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
