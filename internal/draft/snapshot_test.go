package draft

import (
	"testing"
	"time"

	"shilpgroup-io/backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSnapshotProjectionKeepsTextDropsFiles(t *testing.T) {
	d := models.NewProjectDraft()
	d.ProjectTitle = "Shilp Residency"
	d.Slug = "shilp-residency"
	d.Brochure = &models.StagedFile{ID: "br", Name: "b.pdf"}
	d.AboutUs.Description1 = "About."
	d.AboutUs.Image = models.ImageSlot{
		StoredRef: "uploads/about.jpg",
		File:      &models.StagedFile{ID: "ab", Name: "a.jpg", PreviewURL: "http://x/p"},
	}
	d.FloorPlans[0].Title = "2 BHK"
	d.FloorPlans[0].Image = models.ImageSlot{File: &models.StagedFile{ID: "fp", Name: "f.jpg"}}

	raw, err := bson.Marshal(snapshotDoc{Key: "k", Draft: *d, UpdatedAt: time.Now()})
	require.NoError(t, err)

	var doc snapshotDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	restored := doc.Draft

	// Text and stored references survive.
	assert.Equal(t, "Shilp Residency", restored.ProjectTitle)
	assert.Equal(t, "shilp-residency", restored.Slug)
	assert.Equal(t, "About.", restored.AboutUs.Description1)
	assert.Equal(t, "uploads/about.jpg", restored.AboutUs.Image.StoredRef)
	assert.Equal(t, "2 BHK", restored.FloorPlans[0].Title)
	assert.Len(t, restored.ProjectImages, models.ProjectImageCount)

	// Staged files never round-trip.
	assert.Nil(t, restored.Brochure)
	assert.Nil(t, restored.AboutUs.Image.File)
	assert.Nil(t, restored.FloorPlans[0].Image.File)
}
