package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"lexsite-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound   = errors.New("blog not found")
	ErrSlugExists = errors.New("slug already exists")
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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Blog, error) {
	now := time.Now().In(s.location)
	item := Blog{
		ID:          primitive.NewObjectID().Hex(),
		Title:       strings.TrimSpace(req.Title),
		Slug:        utils.Slugify(req.Title),
		Subtitle:    strings.TrimSpace(req.Subtitle),
		Category:    strings.TrimSpace(req.Category),
		Author:      strings.TrimSpace(req.Author),
		Tags:        req.Tags,
		Images:      req.Images,
		SocialLinks: req.SocialLinks,
		Content:     req.Content,
		LawWays:     req.LawWays,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique slug index arbitrates duplicates, so two concurrent creates
	// with the same title cannot both win.
	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Blog{}, ErrSlugExists
		}
		return Blog{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, page, limit int64) ([]Blog, int64, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)

	skip := (page - 1) * limit
	items, err := s.repo.List(ctx, filter, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Blog, error) {
	item, err := s.repo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Blog{}, ErrNotFound
		}
		return Blog{}, err
	}
	return item, nil
}

// Update applies the provided fields only. The slug is never recomputed, even
// when the title changes; the original publish URL stays stable.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Blog, error) {
	set := bson.M{"updatedAt": time.Now().In(s.location)}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Subtitle != nil {
		set["subtitle"] = strings.TrimSpace(*req.Subtitle)
	}
	if req.Category != nil {
		set["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Author != nil {
		set["author"] = strings.TrimSpace(*req.Author)
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}
	if req.SocialLinks != nil {
		set["socialLinks"] = *req.SocialLinks
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.LawWays != nil {
		set["lawWays"] = *req.LawWays
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Blog{}, ErrNotFound
		}
		return Blog{}, err
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
	// Comments referencing this blog are left in place.
	return nil
}
