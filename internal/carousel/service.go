package carousel

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("carousel item not found")

// PublicLimit caps the public list to the newest items; the homepage never
// renders more than this.
const PublicLimit = 4

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Item, error) {
	now := time.Now().In(s.location)
	item := Item{
		ID:        primitive.NewObjectID().Hex(),
		Title:     strings.TrimSpace(req.Title),
		Subtitle:  strings.TrimSpace(req.Subtitle),
		Image:     strings.TrimSpace(req.Image),
		Link1:     strings.TrimSpace(req.Link1),
		Link2:     strings.TrimSpace(req.Link2),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Item, error) {
	set := bson.M{
		"title":     strings.TrimSpace(req.Title),
		"subtitle":  strings.TrimSpace(req.Subtitle),
		"image":     strings.TrimSpace(req.Image),
		"link1":     strings.TrimSpace(req.Link1),
		"link2":     strings.TrimSpace(req.Link2),
		"updatedAt": time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListPublic(ctx context.Context) ([]Item, error) {
	return s.repo.ListNewest(ctx, PublicLimit)
}
