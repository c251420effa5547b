package doctor

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/internal/repo/repotest"
)

func TestGetByID(t *testing.T) {
	id := primitive.NewObjectID()
	store := &repotest.Doctors{Docs: []repo.Document{
		{"_id": id, "name": "Dr. Karim", "fee": "$200", "education": bson.A{"MBBS"}},
		{"_id": primitive.NewObjectID()},
	}}
	svc := New(store)
	ctx := context.Background()

	got, err := svc.GetByID(ctx, id.Hex())
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Dr. Karim" || got[0]["fee"] != "$200" {
		t.Errorf("GetByID() = %+v", got)
	}
	if _, ok := got[0]["education"]; !ok {
		t.Error("GetByID() dropped an unmodeled field")
	}

	got, err = svc.GetByID(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("GetByID(unknown) error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("GetByID(unknown) = %#v, want empty slice", got)
	}

	calls := store.Calls()
	if _, err := svc.GetByID(ctx, "xyz"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("GetByID(bad) error = %v, want ErrInvalidID", err)
	}
	if store.Calls() != calls {
		t.Error("store queried for a malformed id")
	}
}

func TestList(t *testing.T) {
	store := &repotest.Doctors{Docs: []repo.Document{{"name": "a"}, {"name": "b"}}}
	got, err := New(store).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("List() returned %d", len(got))
	}
}
