package models

// Project is the upstream backend's project document as returned by the
// /api/projects endpoints.
type Project struct {
	ID                      string       `json:"_id"`
	ProjectTitle            string       `json:"projectTitle"`
	Slug                    string       `json:"slug"`
	ProjectState            ProjectState `json:"projectState"`
	ProjectType             ProjectType  `json:"projectType"`
	ShortAddress            string       `json:"shortAddress"`
	ProjectStatusPercentage int          `json:"projectStatusPercentage"`
	AboutUsDetail           struct {
		Description1 string `json:"description1"`
		Description2 string `json:"description2"`
		Description3 string `json:"description3"`
		Description4 string `json:"description4"`
		Image        struct {
			URL string `json:"url"`
			Alt string `json:"alt"`
		} `json:"image"`
	} `json:"aboutUsDetail"`
	FloorPlans []struct {
		Title string `json:"title"`
		Image string `json:"image"`
		Alt   string `json:"alt"`
	} `json:"floorPlans"`
	ProjectImages []struct {
		Image string `json:"image"`
		Alt   string `json:"alt"`
	} `json:"projectImages"`
	Amenities []struct {
		Title      string `json:"title"`
		SvgOrImage string `json:"svgOrImage"`
		Alt        string `json:"alt"`
	} `json:"amenities"`
	YoutubeURL         string `json:"youtubeUrl"`
	UpdatedImagesTitle string `json:"updatedImagesTitle"`
	UpdatedImages      []struct {
		Image string `json:"image"`
		Alt   string `json:"alt"`
	} `json:"updatedImages"`
	LocationTitle     string      `json:"locationTitle"`
	LocationTitleText string      `json:"locationTitleText"`
	LocationArea      string      `json:"locationArea"`
	Number1           string      `json:"number1"`
	Number2           string      `json:"number2"`
	Email1            string      `json:"email1"`
	Email2            string      `json:"email2"`
	MapIframeURL      string      `json:"mapIframeUrl"`
	CardImage         string      `json:"cardImage"`
	CardLocation      string      `json:"cardLocation"`
	CardAreaFt        string      `json:"cardAreaFt"`
	CardProjectType   ProjectType `json:"cardProjectType"`
	CardHouse         HouseStatus `json:"cardHouse"`
	ReraNumber        string      `json:"reraNumber"`
	Brochure          string      `json:"brochure,omitempty"`
	IsActive          bool        `json:"isActive"`
	CreatedAt         string      `json:"createdAt"`
	UpdatedAt         string      `json:"updatedAt"`
}

// ProjectPagination is the upstream list envelope's pagination block.
type ProjectPagination struct {
	Current int  `json:"current"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type ProjectList struct {
	Projects   []Project         `json:"projects"`
	Pagination ProjectPagination `json:"pagination"`
}

// SubmitResult is the structured outcome of a create/update submission.
// Failures carry the backend message and, when provided, a field-path
// to message mapping for inline re-display. It is a value, not an
// error: submission never panics past the assembler/client boundary.
type SubmitResult struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	ProjectID    string            `json:"projectId,omitempty"`
	ProjectTitle string            `json:"projectTitle,omitempty"`
	Slug         string            `json:"slug,omitempty"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`
}
