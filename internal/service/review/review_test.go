package review

import (
	"context"
	"errors"
	"testing"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/internal/repo/repotest"
)

func TestList(t *testing.T) {
	store := &repotest.Reviews{Docs: []repo.Document{{"name": "Awlad Hossain", "rating": 5}}}
	got, err := New(store).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0]["rating"] != 5 {
		t.Errorf("List() = %+v", got)
	}

	boom := errors.New("boom")
	store.Fail(boom)
	if _, err := New(store).List(context.Background()); !errors.Is(err, boom) {
		t.Errorf("List() error = %v, want %v", err, boom)
	}
}
