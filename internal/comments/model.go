package comments

import "time"

// Comment belongs to a blog by id reference. A non-nil ParentID makes it a
// reply; the serving logic never nests deeper than one level.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	BlogID    string    `bson:"blogId" json:"blogId"`
	Name      string    `bson:"name" json:"name"`
	Email     *string   `bson:"email" json:"email"`
	Content   string    `bson:"content" json:"content"`
	ParentID  *string   `bson:"parentId" json:"parentId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Thread is a top-level comment with its direct replies attached.
type Thread struct {
	Comment
	Replies []Comment `json:"replies"`
}

type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Content  string `json:"content" validate:"required"`
	ParentID string `json:"parentId" validate:"omitempty,objectid"`
}
