package comments

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("comment not found")

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

// Create stores a visitor comment as submitted. Neither blogId nor parentId
// is checked against existing documents.
func (s *Service) Create(ctx context.Context, blogID string, req CreateRequest) (Comment, error) {
	item := Comment{
		ID:        primitive.NewObjectID().Hex(),
		BlogID:    strings.TrimSpace(blogID),
		Name:      strings.TrimSpace(req.Name),
		Content:   req.Content,
		CreatedAt: time.Now().In(s.location),
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		item.Email = &email
	}
	if parentID := strings.TrimSpace(req.ParentID); parentID != "" {
		item.ParentID = &parentID
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Comment{}, err
	}
	return item, nil
}

func (s *Service) ListByBlog(ctx context.Context, blogID string) ([]Thread, error) {
	items, err := s.repo.ListByBlog(ctx, strings.TrimSpace(blogID))
	if err != nil {
		return nil, err
	}
	return BuildThreads(items), nil
}

// BuildThreads partitions comments into top-level entries and replies, then
// attaches each reply to the comment its parentId names. A reply to a reply
// ends up grouped under that intermediate reply's id, so chains deeper than
// two levels are flattened rather than nested.
func BuildThreads(items []Comment) []Thread {
	grouped := make(map[string][]Comment)
	for _, item := range items {
		if item.ParentID != nil {
			grouped[*item.ParentID] = append(grouped[*item.ParentID], item)
		}
	}

	threads := make([]Thread, 0)
	for _, item := range items {
		if item.ParentID != nil {
			continue
		}
		replies := grouped[item.ID]
		if replies == nil {
			replies = make([]Comment, 0)
		}
		threads = append(threads, Thread{Comment: item, Replies: replies})
	}
	return threads
}

// Delete removes the comment and its direct children only. Replies whose
// parent was one of the removed children are orphaned, not deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	if _, err := s.repo.DeleteByParent(ctx, id); err != nil {
		return err
	}
	return nil
}
