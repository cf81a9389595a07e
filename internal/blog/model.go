package blog

import "time"

type Blog struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Subtitle    string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Category    string    `bson:"category" json:"category"`
	Author      string    `bson:"author" json:"author"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	SocialLinks []string  `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Content     string    `bson:"content" json:"content"`
	LawWays     string    `bson:"lawWays" json:"lawWays"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Subtitle    string   `json:"subtitle"`
	Category    string   `json:"category" validate:"required,min=3"`
	Author      string   `json:"author" validate:"required"`
	Tags        []string `json:"tags" validate:"omitempty,min=1"`
	Images      []string `json:"images" validate:"omitempty,min=1"`
	SocialLinks []string `json:"socialLinks" validate:"omitempty,dive,url"`
	Content     string   `json:"content" validate:"required,min=10"`
	LawWays     string   `json:"lawWays" validate:"required"`
}

// UpdateRequest is the create schema with every field optional. Absent fields
// are left untouched by the partial update.
type UpdateRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=3"`
	Subtitle    *string   `json:"subtitle"`
	Category    *string   `json:"category" validate:"omitempty,min=3"`
	Author      *string   `json:"author" validate:"omitempty,min=1"`
	Tags        *[]string `json:"tags" validate:"omitempty,min=1"`
	Images      *[]string `json:"images" validate:"omitempty,min=1"`
	SocialLinks *[]string `json:"socialLinks" validate:"omitempty,dive,url"`
	Content     *string   `json:"content" validate:"omitempty,min=10"`
	LawWays     *string   `json:"lawWays" validate:"omitempty,min=1"`
}

type ListFilter struct {
	Category string
	Tags     []string
	Search   string
}
