// Package assembler turns a complete project draft into the multipart
// request body the upstream backend expects for create and update.
//
// The backend zips each collection's JSON metadata array with its
// sibling raw file parts by position, so metadata and files must be
// written in the same iteration order. Items that only carry a stored
// reference contribute metadata but no file part.
package assembler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"shilpgroup-io/backoffice/internal/draft"
	"shilpgroup-io/backoffice/models"

	"github.com/pkg/errors"
)

// ErrIncomplete mirrors the submit-time completeness re-check: gating
// in the dashboard is not trusted.
var ErrIncomplete = draft.ErrIncomplete

// FileOpener yields the staged bytes for a file part.
type FileOpener interface {
	Open(f *models.StagedFile) (io.ReadCloser, error)
}

// Payload is a ready-to-send multipart body.
type Payload struct {
	Body        *bytes.Buffer
	ContentType string
}

// floorPlanMeta et al. are the metadata projections serialized into the
// JSON array fields. Image carries the stored reference, or "" for a
// freshly staged file.
type floorPlanMeta struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

type imageMeta struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

type amenityMeta struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	SvgOrImage string `json:"svgOrImage"`
	Alt        string `json:"alt"`
}

// nullable implements the backend's explicit-nullability convention:
// two fields are sent as the literal string "null" when blank instead
// of empty or omitted. Keep every sentinel behind this one function.
func nullable(v string) string {
	if strings.TrimSpace(v) == "" {
		return "null"
	}
	return strings.TrimSpace(v)
}

// Build assembles the multipart payload for the given draft,
// re-checking completeness first.
func Build(d *models.ProjectDraft, files FileOpener) (*Payload, error) {
	if !draft.AllComplete(d) {
		return nil, ErrIncomplete
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{"projectTitle", d.ProjectTitle},
		{"slug", d.Slug},
		{"projectState", string(d.ProjectState)},
		{"projectType", string(d.ProjectType)},
		{"shortAddress", d.ShortAddress},
		{"projectStatusPercentage", strconv.Itoa(d.ProjectStatusPercentage)},
		{"youtubeUrl", nullable(d.YoutubeURL)},
		{"updatedImagesTitle", d.UpdatedImagesTitle},
		{"locationTitle", d.LocationTitle},
		{"locationTitleText", d.LocationTitleText},
		{"locationArea", d.LocationArea},
		{"number1", d.Number1},
		{"number2", d.Number2},
		{"email1", d.Email1},
		{"email2", d.Email2},
		{"mapIframeUrl", d.MapIframeURL},
		{"cardImage", d.CardImage.StoredRef},
		{"cardLocation", d.CardLocation},
		{"cardAreaFt", d.CardAreaFt},
		{"cardProjectType", string(d.CardProjectType)},
		{"cardHouse", string(d.CardHouse)},
		{"reraNumber", nullable(d.ReraNumber)},
		// The banner section stays draft-side; the project create/update
		// contract carries no banner fields or file parts.
		// The about-us descriptions are flattened out of their section.
		{"description1", d.AboutUs.Description1},
		{"description2", d.AboutUs.Description2},
		{"description3", d.AboutUs.Description3},
		{"description4", d.AboutUs.Description4},
		{"aboutUsAlt", d.AboutUs.ImageAlt},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, errors.Wrapf(err, "writing field %s", f.name)
		}
	}

	if err := writeFilePart(w, files, "brochure", d.Brochure); err != nil {
		return nil, err
	}
	if err := writeFilePart(w, files, "aboutUsImage", d.AboutUs.Image.File); err != nil {
		return nil, err
	}
	if err := writeFilePart(w, files, "cardImage", d.CardImage.File); err != nil {
		return nil, err
	}

	// Floor plans: metadata for every row, file parts only for staged
	// files, in the same order.
	fpMeta := make([]floorPlanMeta, 0, len(d.FloorPlans))
	for i := range d.FloorPlans {
		fp := &d.FloorPlans[i]
		fpMeta = append(fpMeta, floorPlanMeta{ID: fp.ID, Title: fp.Title, Image: fp.Image.StoredRef, Alt: fp.Alt})
	}
	if err := writeJSONField(w, "floorPlans", fpMeta); err != nil {
		return nil, err
	}
	for i := range d.FloorPlans {
		if err := writeFilePart(w, files, "floorPlanImages", d.FloorPlans[i].Image.File); err != nil {
			return nil, err
		}
	}

	imgMeta := make([]imageMeta, 0, len(d.ProjectImages))
	for i := range d.ProjectImages {
		img := &d.ProjectImages[i]
		imgMeta = append(imgMeta, imageMeta{ID: img.ID, Image: img.Image.StoredRef, Alt: img.Alt})
	}
	if err := writeJSONField(w, "projectImages", imgMeta); err != nil {
		return nil, err
	}
	for i := range d.ProjectImages {
		if err := writeFilePart(w, files, "projectImageFiles", d.ProjectImages[i].Image.File); err != nil {
			return nil, err
		}
	}

	// Amenities: only complete rows are submitted, and "no amenities"
	// is the JSON null sentinel rather than an empty array.
	var complete []*models.Amenity
	for i := range d.Amenities {
		am := &d.Amenities[i]
		if strings.TrimSpace(am.Title) != "" && strings.TrimSpace(am.Alt) != "" && !am.Image.Empty() {
			complete = append(complete, am)
		}
	}
	if len(complete) == 0 {
		if err := w.WriteField("amenities", "null"); err != nil {
			return nil, errors.Wrap(err, "writing field amenities")
		}
	} else {
		amMeta := make([]amenityMeta, 0, len(complete))
		for _, am := range complete {
			amMeta = append(amMeta, amenityMeta{ID: am.ID, Title: am.Title, SvgOrImage: am.Image.StoredRef, Alt: am.Alt})
		}
		if err := writeJSONField(w, "amenities", amMeta); err != nil {
			return nil, err
		}
		for _, am := range complete {
			if err := writeFilePart(w, files, "amenityFiles", am.Image.File); err != nil {
				return nil, err
			}
		}
	}

	updMeta := make([]imageMeta, 0, len(d.UpdatedImages))
	for i := range d.UpdatedImages {
		img := &d.UpdatedImages[i]
		updMeta = append(updMeta, imageMeta{ID: img.ID, Image: img.Image.StoredRef, Alt: img.Alt})
	}
	if err := writeJSONField(w, "updatedImages", updMeta); err != nil {
		return nil, err
	}
	for i := range d.UpdatedImages {
		if err := writeFilePart(w, files, "updatedImageFiles", d.UpdatedImages[i].Image.File); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "closing multipart writer")
	}
	return &Payload{Body: body, ContentType: w.FormDataContentType()}, nil
}

func writeJSONField(w *multipart.Writer, name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	if err := w.WriteField(name, string(raw)); err != nil {
		return errors.Wrapf(err, "writing field %s", name)
	}
	return nil
}

func writeFilePart(w *multipart.Writer, files FileOpener, name string, f *models.StagedFile) error {
	if f == nil {
		return nil
	}
	part, err := w.CreateFormFile(name, f.Name)
	if err != nil {
		return errors.Wrapf(err, "creating file part %s", name)
	}
	src, err := files.Open(f)
	if err != nil {
		return errors.Wrapf(err, "opening staged file for %s", name)
	}
	defer src.Close()
	if _, err := io.Copy(part, src); err != nil {
		return errors.Wrapf(err, "copying staged file into %s", name)
	}
	return nil
}
