package schema

import (
	"io"
	"time"
)

const (
	SortByCreatedAt = "createdAt"
	SortByTitle     = "title"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

type (
	// Task represents a to-do item
	Task struct {
		ID          string    `json:"_id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Image       string    `json:"image,omitempty"`
		Owner       string    `json:"owner,omitempty"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	// TaskInput represents task create/update form fields
	TaskInput struct {
		Title       string
		Description string
		Image       *File
	}

	// TaskQuery represents list filters
	TaskQuery struct {
		Search string
		Sort   string
		Order  string
	}

	// File represents a multipart upload
	File struct {
		Name        string
		ContentType string
		Content     io.Reader
	}
)

// Init sets default sort and order
func (q *TaskQuery) Init() {
	if q.Sort == "" {
		q.Sort = SortByCreatedAt
	}
	if q.Order == "" {
		q.Order = OrderDesc
	}
}
