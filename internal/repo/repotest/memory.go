// Package repotest provides in-memory implementations of the service store
// ports for tests.
package repotest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
)

// calls counts store operations and carries an injectable failure.
type calls struct {
	mu  sync.Mutex
	n   int
	Err error
}

func (c *calls) hit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.Err
}

// Calls returns how many store operations were attempted.
func (c *calls) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *calls) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Err = err
}

// clone copies doc the way a round trip through the store would, assigning
// an _id when assign is set.
func clone(doc repo.Document, assign bool) repo.Document {
	out := make(repo.Document, len(doc)+1)
	for k, v := range doc {
		if k == "_id" && assign {
			continue
		}
		out[k] = v
	}
	if assign {
		out["_id"] = primitive.NewObjectID()
	}
	return out
}

func cloneAll(docs []repo.Document) []repo.Document {
	out := make([]repo.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, clone(d, false))
	}
	return out
}

func emailOf(doc repo.Document) string {
	s, _ := doc["email"].(string)
	return s
}

type Appointments struct {
	calls
	docs []repo.Document
}

func (s *Appointments) Insert(_ context.Context, doc repo.Document) (*repo.InsertResult, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	stored := clone(doc, true)
	s.mu.Lock()
	s.docs = append(s.docs, stored)
	s.mu.Unlock()
	return &repo.InsertResult{Acknowledged: true, InsertedID: stored["_id"].(primitive.ObjectID)}, nil
}

func (s *Appointments) Find(_ context.Context, f repo.AppointmentFilter) ([]repo.Document, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []repo.Document{}
	for _, d := range s.docs {
		if f.Email == "" || emailOf(d) == f.Email {
			out = append(out, clone(d, false))
		}
	}
	return out, nil
}

func (s *Appointments) DeleteByID(_ context.Context, id primitive.ObjectID) (*repo.DeleteResult, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.docs {
		if d["_id"] == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return &repo.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repo.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
}

type Users struct {
	calls
	docs []repo.Document
}

// Seed stores user documents directly, bypassing Insert and the call counter.
func (s *Users) Seed(docs ...repo.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		_, hasID := d["_id"]
		s.docs = append(s.docs, clone(d, !hasID))
	}
}

// SetRole changes a stored role without counting as a call.
func (s *Users) SetRole(email, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if emailOf(d) != email {
			continue
		}
		if role == "" {
			delete(d, "role")
		} else {
			d["role"] = role
		}
	}
}

func (s *Users) Insert(_ context.Context, doc repo.Document) (*repo.InsertResult, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.docs {
		if emailOf(existing) == emailOf(doc) {
			return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{
				Code:    11000,
				Message: "E11000 duplicate key error collection: doc-houseDb.users index: users_email_unique",
			}}}
		}
	}
	stored := clone(doc, true)
	s.docs = append(s.docs, stored)
	return &repo.InsertResult{Acknowledged: true, InsertedID: stored["_id"].(primitive.ObjectID)}, nil
}

func (s *Users) Find(_ context.Context, f repo.UserFilter) ([]repo.Document, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []repo.Document{}
	for _, d := range s.docs {
		if f.Email == "" || emailOf(d) == f.Email {
			out = append(out, clone(d, false))
		}
	}
	return out, nil
}

// FindOneByEmail decodes the stored document through BSON, like the driver.
func (s *Users) FindOneByEmail(_ context.Context, email string) (*repo.User, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if emailOf(d) != email {
			continue
		}
		raw, err := bson.Marshal(d)
		if err != nil {
			return nil, err
		}
		var u repo.User
		if err := bson.Unmarshal(raw, &u); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, repo.ErrNotFound
}

type Doctors struct {
	calls
	Docs []repo.Document
}

func (s *Doctors) FindAll(context.Context) ([]repo.Document, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return cloneAll(s.Docs), nil
}

func (s *Doctors) FindByID(_ context.Context, id primitive.ObjectID) ([]repo.Document, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	out := []repo.Document{}
	for _, d := range s.Docs {
		if d["_id"] == id {
			out = append(out, clone(d, false))
		}
	}
	return out, nil
}

type Reviews struct {
	calls
	Docs []repo.Document
}

func (s *Reviews) FindAll(context.Context) ([]repo.Document, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return cloneAll(s.Docs), nil
}
