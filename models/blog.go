package models

type BlogPointChild struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type BlogPoint struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Image    string           `json:"image,omitempty"`
	Child    []BlogPointChild `json:"child,omitempty"`
}

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

type Blog struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Publish     string      `json:"publish"`
	Date        string      `json:"date"`
	URL         string      `json:"url"`
	Image       string      `json:"image"`
	Alt         string      `json:"alt,omitempty"`
	Points      []BlogPoint `json:"points"`
	Status      BlogStatus  `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

type BlogInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Publish     string      `json:"publish,omitempty"`
	Date        string      `json:"date" validate:"required"`
	URL         string      `json:"url" validate:"required"`
	Alt         string      `json:"alt,omitempty"`
	Points      []BlogPoint `json:"points"`
	Status      BlogStatus  `json:"status,omitempty"`
}
