package assembler

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"shilpgroup-io/backoffice/internal/draft"
	"shilpgroup-io/backoffice/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memOpener serves staged file contents from memory, keyed by file id.
type memOpener struct {
	contents map[string]string
}

func (o *memOpener) Open(f *models.StagedFile) (io.ReadCloser, error) {
	content, ok := o.contents[f.ID]
	if !ok {
		return nil, errors.Errorf("no such staged file %s", f.ID)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func staged(id, name string) *models.StagedFile {
	return &models.StagedFile{ID: id, Name: name}
}

// buildDraft returns a complete draft with a mix of staged files and
// stored references: two floor plans (first stored, second staged) and
// five staged gallery images.
func buildDraft() (*models.ProjectDraft, *memOpener) {
	d := models.NewProjectDraft()
	opener := &memOpener{contents: map[string]string{}}
	stage := func(id, name, content string) *models.StagedFile {
		opener.contents[id] = content
		return staged(id, name)
	}

	d.ProjectTitle = "Shilp Serene Heights"
	d.Slug = "shilp-serene-heights"
	d.ShortAddress = "SG Highway, Ahmedabad"
	d.ProjectStatusPercentage = 60
	d.Brochure = stage("br", "brochure.pdf", "%PDF-1.4")
	d.AboutUs.Description1 = "First paragraph."
	d.AboutUs.Description2 = "Second paragraph."
	d.AboutUs.Image = models.ImageSlot{File: stage("ab", "about.jpg", "about-bytes")}
	d.AboutUs.ImageAlt = "about us"
	d.Banner.Alt = "hero banner"
	d.Banner.Desktop = models.ImageSlot{File: staged("bd", "desktop.jpg")}
	d.Banner.Mobile = models.ImageSlot{StoredRef: "uploads/mobile.jpg"}

	d.FloorPlans[0].Title = "2 BHK"
	d.FloorPlans[0].Alt = "2 bhk plan"
	d.FloorPlans[0].Image = models.ImageSlot{StoredRef: "uploads/fp-2bhk.jpg"}
	d.FloorPlans = append(d.FloorPlans, models.FloorPlan{
		ID:    "fp-2",
		Title: "3 BHK",
		Alt:   "3 bhk plan",
		Image: models.ImageSlot{File: stage("fp3", "fp-3bhk.jpg", "fp3-bytes")},
	})

	for i := range d.ProjectImages {
		d.ProjectImages[i].Alt = "gallery"
		d.ProjectImages[i].Image = models.ImageSlot{File: stage("pi"+string(rune('0'+i)), "gallery.jpg", "gallery-bytes")}
	}

	d.Amenities[0].Title = "Club House"
	d.Amenities[0].Alt = "club house"
	d.Amenities[0].Image = models.ImageSlot{File: stage("am", "club.svg", "svg-bytes")}

	d.UpdatedImagesTitle = "Construction Progress"
	for i := range d.UpdatedImages {
		d.UpdatedImages[i].Alt = "progress"
		d.UpdatedImages[i].Image = models.ImageSlot{StoredRef: "uploads/progress.jpg"}
	}

	d.LocationTitle = "Prime Location"
	d.LocationTitleText = "Close to everything"
	d.MapIframeURL = "https://maps.example.com/embed"
	d.CardImage = models.ImageSlot{StoredRef: "uploads/card.jpg"}
	d.CardLocation = "Ahmedabad"
	d.CardAreaFt = "1200"

	return d, opener
}

func parsePayload(t *testing.T, p *Payload) *multipart.Form {
	t.Helper()
	_, params, err := mime.ParseMediaType(p.ContentType)
	require.NoError(t, err)
	reader := multipart.NewReader(p.Body, params["boundary"])
	form, err := reader.ReadForm(64 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func formValue(t *testing.T, form *multipart.Form, name string) string {
	t.Helper()
	require.NotEmpty(t, form.Value[name], "missing field %s", name)
	return form.Value[name][0]
}

func TestBuildRejectsIncompleteDraft(t *testing.T) {
	d := models.NewProjectDraft()

	_, err := Build(d, &memOpener{})
	assert.True(t, errors.Is(err, draft.ErrIncomplete))
}

func TestBuildScalarFields(t *testing.T) {
	d, opener := buildDraft()
	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	assert.Equal(t, "Shilp Serene Heights", formValue(t, form, "projectTitle"))
	assert.Equal(t, "shilp-serene-heights", formValue(t, form, "slug"))
	assert.Equal(t, "on-going", formValue(t, form, "projectState"))
	assert.Equal(t, "residential", formValue(t, form, "projectType"))
	assert.Equal(t, "60", formValue(t, form, "projectStatusPercentage"))
	assert.Equal(t, "Ready to Move", formValue(t, form, "cardHouse"))

	// The about-us descriptions come through flattened.
	assert.Equal(t, "First paragraph.", formValue(t, form, "description1"))
	assert.Equal(t, "Second paragraph.", formValue(t, form, "description2"))
	assert.Equal(t, "", formValue(t, form, "description3"))
	assert.Equal(t, "about us", formValue(t, form, "aboutUsAlt"))
}

func TestBuildNullableSentinels(t *testing.T) {
	d, opener := buildDraft()
	d.YoutubeURL = "  "
	d.ReraNumber = "RERA-GJ-1234"

	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	assert.Equal(t, "null", formValue(t, form, "youtubeUrl"))
	assert.Equal(t, "RERA-GJ-1234", formValue(t, form, "reraNumber"))

	d, opener = buildDraft()
	d.YoutubeURL = "https://youtube.com/watch?v=x"
	d.ReraNumber = ""

	payload, err = Build(d, opener)
	require.NoError(t, err)
	form = parsePayload(t, payload)

	assert.Equal(t, "https://youtube.com/watch?v=x", formValue(t, form, "youtubeUrl"))
	assert.Equal(t, "null", formValue(t, form, "reraNumber"))
}

func TestBuildFloorPlansPositional(t *testing.T) {
	d, opener := buildDraft()
	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	var meta []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Image string `json:"image"`
		Alt   string `json:"alt"`
	}
	require.NoError(t, json.Unmarshal([]byte(formValue(t, form, "floorPlans")), &meta))
	require.Len(t, meta, 2)
	assert.Equal(t, "2 BHK", meta[0].Title)
	assert.Equal(t, "uploads/fp-2bhk.jpg", meta[0].Image)
	assert.Equal(t, "3 BHK", meta[1].Title)
	assert.Empty(t, meta[1].Image)

	// Only the staged row contributes a file part, in metadata order.
	files := form.File["floorPlanImages"]
	require.Len(t, files, 1)
	assert.Equal(t, "fp-3bhk.jpg", files[0].Filename)
}

func TestBuildGalleryFilesMatchMetadataOrder(t *testing.T) {
	d, opener := buildDraft()
	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	var meta []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(formValue(t, form, "projectImages")), &meta))
	assert.Len(t, meta, 5)
	assert.Len(t, form.File["projectImageFiles"], 5)

	// Stored-ref updated images send metadata but no files.
	var upd []struct {
		Image string `json:"image"`
	}
	require.NoError(t, json.Unmarshal([]byte(formValue(t, form, "updatedImages")), &upd))
	assert.Len(t, upd, 3)
	assert.Equal(t, "uploads/progress.jpg", upd[0].Image)
	assert.Empty(t, form.File["updatedImageFiles"])
}

func TestBuildFiltersIncompleteAmenities(t *testing.T) {
	d, opener := buildDraft()
	d.Amenities = append(d.Amenities, models.Amenity{ID: "am-blank"})

	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	var meta []struct {
		Title      string `json:"title"`
		SvgOrImage string `json:"svgOrImage"`
	}
	require.NoError(t, json.Unmarshal([]byte(formValue(t, form, "amenities")), &meta))
	require.Len(t, meta, 1)
	assert.Equal(t, "Club House", meta[0].Title)
	assert.Len(t, form.File["amenityFiles"], 1)
}

func TestBuildNoAmenitiesSendsNull(t *testing.T) {
	d, opener := buildDraft()
	d.Amenities = []models.Amenity{{ID: "am-blank"}}

	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	assert.Equal(t, "null", formValue(t, form, "amenities"))
	assert.Empty(t, form.File["amenityFiles"])
}

func TestBuildTopLevelFileParts(t *testing.T) {
	d, opener := buildDraft()
	payload, err := Build(d, opener)
	require.NoError(t, err)
	form := parsePayload(t, payload)

	require.Len(t, form.File["brochure"], 1)
	assert.Equal(t, "brochure.pdf", form.File["brochure"][0].Filename)

	// The banner section never travels, staged or not.
	assert.Empty(t, form.Value["bannerAlt"])
	assert.Empty(t, form.File["desktopBanner"])
	assert.Empty(t, form.File["mobileBanner"])

	// Stored-ref slots send no file part.
	assert.Empty(t, form.File["cardImage"])

	// The card image stored reference travels as a scalar field.
	assert.Equal(t, "uploads/card.jpg", formValue(t, form, "cardImage"))

	src, err := form.File["brochure"][0].Open()
	require.NoError(t, err)
	defer src.Close()
	content, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}
