package team

import "time"

type Member struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Position   string    `bson:"position" json:"position"`
	Subheading string    `bson:"subheading" json:"subheading"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email      string    `bson:"email" json:"email"`
	LinkedIn   string    `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Bio        string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Services   []string  `bson:"services,omitempty" json:"services,omitempty"`
	Image      string    `bson:"image" json:"image"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UpsertRequest serves both create and update; updates are full replaces
// through the same schema.
type UpsertRequest struct {
	Name       string   `json:"name" validate:"required"`
	Position   string   `json:"position" validate:"required"`
	Subheading string   `json:"subheading" validate:"required"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email" validate:"required,email"`
	LinkedIn   string   `json:"linkedin" validate:"omitempty,url"`
	Bio        string   `json:"bio"`
	Services   []string `json:"services"`
	Image      string   `json:"image" validate:"required,url"`
}
