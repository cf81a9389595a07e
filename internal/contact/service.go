package contact

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Message, error) {
	item := Message{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   req.Message,
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Message{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, page, limit int64) ([]Message, int64, error) {
	skip := (page - 1) * limit
	items, err := s.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
