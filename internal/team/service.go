package team

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("team member not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Member, error) {
	now := time.Now().In(s.location)
	item := Member{
		ID:         primitive.NewObjectID().Hex(),
		Name:       strings.TrimSpace(req.Name),
		Position:   strings.TrimSpace(req.Position),
		Subheading: strings.TrimSpace(req.Subheading),
		Phone:      strings.TrimSpace(req.Phone),
		Email:      strings.TrimSpace(req.Email),
		LinkedIn:   strings.TrimSpace(req.LinkedIn),
		Bio:        strings.TrimSpace(req.Bio),
		Services:   req.Services,
		Image:      strings.TrimSpace(req.Image),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Member{}, err
	}
	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Member, error) {
	item, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Member, error) {
	set := bson.M{
		"name":       strings.TrimSpace(req.Name),
		"position":   strings.TrimSpace(req.Position),
		"subheading": strings.TrimSpace(req.Subheading),
		"phone":      strings.TrimSpace(req.Phone),
		"email":      strings.TrimSpace(req.Email),
		"linkedin":   strings.TrimSpace(req.LinkedIn),
		"bio":        strings.TrimSpace(req.Bio),
		"services":   req.Services,
		"image":      strings.TrimSpace(req.Image),
		"updatedAt":  time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
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

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}
