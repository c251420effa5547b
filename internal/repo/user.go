package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const RoleAdmin = "admin"

// User is the slice of a user document the role checks need. The stored
// document itself stays free-form.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Role  string             `bson:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type UserFilter struct {
	Email string
}

func (f UserFilter) toBSON() bson.M {
	m := bson.M{}
	if f.Email != "" {
		m["email"] = f.Email
	}
	return m
}

type UserRepo struct {
	coll *mongo.Collection
}

func (r *UserRepo) Insert(ctx context.Context, doc Document) (*InsertResult, error) {
	res, err := insertDocument(ctx, r.coll, doc)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return res, nil
}

func (r *UserRepo) Find(ctx context.Context, f UserFilter) ([]Document, error) {
	out, err := findAll[Document](ctx, r.coll, f.toBSON())
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return out, nil
}

// FindOneByEmail returns ErrNotFound when no user has the email.
func (r *UserRepo) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// SetRole sets or, for an empty role, removes the role of the user with email.
func (r *UserRepo) SetRole(ctx context.Context, email, role string) error {
	update := bson.M{"$set": bson.M{"role": role}}
	if role == "" {
		update = bson.M{"$unset": bson.M{"role": ""}}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("set user role: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
