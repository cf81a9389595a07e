package carousel

import "time"

type Item struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle" json:"subtitle"`
	Image     string    `bson:"image" json:"image"`
	Link1     string    `bson:"link1,omitempty" json:"link1,omitempty"`
	Link2     string    `bson:"link2,omitempty" json:"link2,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle" validate:"required"`
	Image    string `json:"image" validate:"required,url"`
	Link1    string `json:"link1" validate:"omitempty,url"`
	Link2    string `json:"link2" validate:"omitempty,url"`
}
