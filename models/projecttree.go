package models

// ProjectTree is one milestone entry on the public timeline.
type ProjectTree struct {
	ID            string          `json:"_id"`
	No            int             `json:"no"`
	Year          int             `json:"year"`
	Title         string          `json:"title"`
	Location      string          `json:"location"`
	Image         string          `json:"image"`
	ImageMetadata *BannerMetadata `json:"imageMetadata,omitempty"`
	TypeOfProject ProjectType     `json:"typeofproject"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

type ProjectTreeInput struct {
	No            int         `json:"no" validate:"required,min=1"`
	Year          int         `json:"year" validate:"required,min=1900"`
	Title         string      `json:"title" validate:"required"`
	Location      string      `json:"location" validate:"required"`
	TypeOfProject ProjectType `json:"typeofproject" validate:"required,oneof=residential commercial plots"`
}

type ProjectTreeFilters struct {
	Year          int
	TypeOfProject string
	Search        string
}

type ProjectTreeStats struct {
	TotalYears    int   `json:"totalYears"`
	Years         []int `json:"years"`
	TypeBreakdown []struct {
		ID    string `json:"_id"`
		Count int    `json:"count"`
	} `json:"typeBreakdown"`
}
