package team

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	items   map[string]Member
	lastSet bson.M
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]Member)}
}

func (f *fakeRepository) Create(_ context.Context, item Member) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (Member, error) {
	item, ok := f.items[id]
	if !ok {
		return Member{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) Update(_ context.Context, id string, set bson.M) (Member, error) {
	f.lastSet = set
	item, ok := f.items[id]
	if !ok {
		return Member{}, mongo.ErrNoDocuments
	}
	if name, ok := set["name"].(string); ok {
		item.Name = name
	}
	if position, ok := set["position"].(string); ok {
		item.Position = position
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeRepository) List(_ context.Context) ([]Member, error) {
	out := make([]Member, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func validUpsertRequest() UpsertRequest {
	return UpsertRequest{
		Name:       "  Jane Doe  ",
		Position:   "Partner",
		Subheading: "Litigation",
		Email:      "jane@example.com",
		Image:      "https://example.com/jane.png",
	}
}

func TestCreateTrimsFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), validUpsertRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Name != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, ok := repo.items[item.ID]; !ok {
		t.Fatalf("expected member stored")
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, time.UTC)

	created, err := svc.Create(context.Background(), validUpsertRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	req := validUpsertRequest()
	req.Position = "Senior Partner"
	// Phone was never set; a full replace still writes the empty value.
	updated, err := svc.Update(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Position != "Senior Partner" {
		t.Fatalf("expected updated position, got %q", updated.Position)
	}

	for _, field := range []string{"name", "position", "subheading", "phone", "email", "linkedin", "bio", "services", "image", "updatedAt"} {
		if _, ok := repo.lastSet[field]; !ok {
			t.Fatalf("expected %s in update set", field)
		}
	}
}

func TestUpdateMissingMember(t *testing.T) {
	svc := NewService(newFakeRepository(), time.UTC)
	if _, err := svc.Update(context.Background(), "missing", validUpsertRequest()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByIDMissing(t *testing.T) {
	svc := NewService(newFakeRepository(), time.UTC)
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMember(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, time.UTC)

	created, err := svc.Create(context.Background(), validUpsertRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
