package models

import (
	"github.com/google/uuid"
)

type ProjectState string

const (
	ProjectStateOnGoing   ProjectState = "on-going"
	ProjectStateCompleted ProjectState = "completed"
)

type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypePlot        ProjectType = "plot"
)

type HouseStatus string

const (
	HouseStatusReadyToMove      HouseStatus = "Ready to Move"
	HouseStatusSampleHouseReady HouseStatus = "Sample House Ready"
)

// Fixed cardinalities for the gallery and construction-update
// collections. The draft store refuses add/remove on these.
const (
	ProjectImageCount = 5
	UpdatedImageCount = 3
)

// Default contact numbers pre-filled on a fresh draft.
const (
	DefaultContactNumber1 = "9898211567"
	DefaultContactNumber2 = "9898508567"
)

type BannerSection struct {
	Desktop ImageSlot `bson:"desktop" json:"desktopBanner"`
	Mobile  ImageSlot `bson:"mobile" json:"mobileBanner"`
	Alt     string    `bson:"alt" json:"alt"`
}

type AboutUsDetail struct {
	Description1 string    `bson:"description1" json:"description1"`
	Description2 string    `bson:"description2" json:"description2"`
	Description3 string    `bson:"description3" json:"description3"`
	Description4 string    `bson:"description4" json:"description4"`
	Image        ImageSlot `bson:"image" json:"image"`
	ImageAlt     string    `bson:"image_alt" json:"imageAlt"`
}

type FloorPlan struct {
	ID    string    `bson:"id" json:"id"`
	Title string    `bson:"title" json:"title"`
	Alt   string    `bson:"alt" json:"alt"`
	Image ImageSlot `bson:"image" json:"image"`
}

type GalleryImage struct {
	ID    string    `bson:"id" json:"id"`
	Alt   string    `bson:"alt" json:"alt"`
	Image ImageSlot `bson:"image" json:"image"`
}

type Amenity struct {
	ID    string    `bson:"id" json:"id"`
	Title string    `bson:"title" json:"title"`
	Alt   string    `bson:"alt" json:"alt"`
	Image ImageSlot `bson:"image" json:"image"`
}

// ProjectDraft is the working copy of the project-creation wizard: one
// per admin session, mutated only through the draft store, discarded
// after a successful submission.
type ProjectDraft struct {
	ProjectTitle            string         `bson:"project_title" json:"projectTitle"`
	Slug                    string         `bson:"slug" json:"slug"`
	Brochure                *StagedFile    `bson:"-" json:"brochure,omitempty"`
	ProjectState            ProjectState   `bson:"project_state" json:"projectState"`
	ProjectType             ProjectType    `bson:"project_type" json:"projectType"`
	ShortAddress            string         `bson:"short_address" json:"shortAddress"`
	ProjectStatusPercentage int            `bson:"project_status_percentage" json:"projectStatusPercentage"`
	Banner                  BannerSection  `bson:"banner" json:"bannerSection"`
	AboutUs                 AboutUsDetail  `bson:"about_us" json:"aboutUsDetail"`
	FloorPlans              []FloorPlan    `bson:"floor_plans" json:"floorPlans"`
	ProjectImages           []GalleryImage `bson:"project_images" json:"projectImages"`
	Amenities               []Amenity      `bson:"amenities" json:"amenities"`
	YoutubeURL              string         `bson:"youtube_url" json:"youtubeUrl"`
	UpdatedImagesTitle      string         `bson:"updated_images_title" json:"updatedImagesTitle"`
	UpdatedImages           []GalleryImage `bson:"updated_images" json:"updatedImages"`
	LocationTitle           string         `bson:"location_title" json:"locationTitle"`
	LocationTitleText       string         `bson:"location_title_text" json:"locationTitleText"`
	LocationArea            string         `bson:"location_area" json:"locationArea"`
	Number1                 string         `bson:"number1" json:"number1"`
	Number2                 string         `bson:"number2" json:"number2"`
	Email1                  string         `bson:"email1" json:"email1"`
	Email2                  string         `bson:"email2" json:"email2"`
	MapIframeURL            string         `bson:"map_iframe_url" json:"mapIframeUrl"`
	CardImage               ImageSlot      `bson:"card_image" json:"cardImage"`
	CardLocation            string         `bson:"card_location" json:"cardLocation"`
	CardAreaFt              string         `bson:"card_area_ft" json:"cardAreaFt"`
	CardProjectType         ProjectType    `bson:"card_project_type" json:"cardProjectType"`
	CardHouse               HouseStatus    `bson:"card_house" json:"cardHouse"`
	ReraNumber              string         `bson:"rera_number" json:"reraNumber"`
}

// NewProjectDraft returns the seeded-empty draft shape: one blank floor
// plan, one blank amenity, five gallery slots, three update slots,
// default enums and contact numbers. Every seeded item gets a fresh id.
func NewProjectDraft() *ProjectDraft {
	d := &ProjectDraft{
		ProjectState:    ProjectStateOnGoing,
		ProjectType:     ProjectTypeResidential,
		Number1:         DefaultContactNumber1,
		Number2:         DefaultContactNumber2,
		CardProjectType: ProjectTypeResidential,
		CardHouse:       HouseStatusReadyToMove,
		FloorPlans:      []FloorPlan{{ID: uuid.NewString()}},
		Amenities:       []Amenity{{ID: uuid.NewString()}},
	}
	for i := 0; i < ProjectImageCount; i++ {
		d.ProjectImages = append(d.ProjectImages, GalleryImage{ID: uuid.NewString()})
	}
	for i := 0; i < UpdatedImageCount; i++ {
		d.UpdatedImages = append(d.UpdatedImages, GalleryImage{ID: uuid.NewString()})
	}
	return d
}

// Clone returns a draft copy with its own collection slices, safe to
// read outside the store's lock. StagedFile pointers are shared: a
// staged file is immutable after staging, only the slot holding it
// changes.
func (d *ProjectDraft) Clone() *ProjectDraft {
	c := *d
	c.FloorPlans = append([]FloorPlan(nil), d.FloorPlans...)
	c.ProjectImages = append([]GalleryImage(nil), d.ProjectImages...)
	c.Amenities = append([]Amenity(nil), d.Amenities...)
	c.UpdatedImages = append([]GalleryImage(nil), d.UpdatedImages...)
	return &c
}

// StagedFiles lists every staged file currently held by the draft, in a
// stable order. Used to release staging resources on reset.
func (d *ProjectDraft) StagedFiles() []*StagedFile {
	var files []*StagedFile
	add := func(f *StagedFile) {
		if f != nil {
			files = append(files, f)
		}
	}
	add(d.Brochure)
	add(d.Banner.Desktop.File)
	add(d.Banner.Mobile.File)
	add(d.AboutUs.Image.File)
	add(d.CardImage.File)
	for i := range d.FloorPlans {
		add(d.FloorPlans[i].Image.File)
	}
	for i := range d.ProjectImages {
		add(d.ProjectImages[i].Image.File)
	}
	for i := range d.Amenities {
		add(d.Amenities[i].Image.File)
	}
	for i := range d.UpdatedImages {
		add(d.UpdatedImages[i].Image.File)
	}
	return files
}
