package draft

import (
	"strings"

	"shilpgroup-io/backoffice/models"
)

type Section int

const (
	Section1 Section = iota + 1
	Section2
	Section3
	Section4

	SectionCount = 4
)

// allowEmptyDenyPartial is the validation policy for the optional row
// collections (floor plans, amenities): a fully empty row counts as
// not-yet-started, a partially filled row blocks the section. A
// placeholder row can be added without immediately erroring.
func allowEmptyDenyPartial(title string, slot models.ImageSlot, alt string) bool {
	hasContent := strings.TrimSpace(title) != "" || !slot.Empty() || strings.TrimSpace(alt) != ""
	complete := strings.TrimSpace(title) != "" && !slot.Empty() && strings.TrimSpace(alt) != ""
	return !hasContent || complete
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateSection1(d *models.ProjectDraft) bool {
	if blank(d.ProjectTitle) || blank(d.Slug) {
		return false
	}
	if blank(d.ShortAddress) || len(strings.TrimSpace(d.ShortAddress)) < 2 {
		return false
	}
	if d.Brochure == nil {
		return false
	}
	if blank(d.AboutUs.Description1) {
		return false
	}
	// Descriptions 2-4 are optional.
	return !d.AboutUs.Image.Empty()
}

func validateSection2(d *models.ProjectDraft) bool {
	for i := range d.FloorPlans {
		fp := &d.FloorPlans[i]
		if !allowEmptyDenyPartial(fp.Title, fp.Image, fp.Alt) {
			return false
		}
	}
	if len(d.ProjectImages) != models.ProjectImageCount {
		return false
	}
	for i := range d.ProjectImages {
		img := &d.ProjectImages[i]
		if img.Image.Empty() || blank(img.Alt) {
			return false
		}
	}
	return true
}

func validateSection3(d *models.ProjectDraft) bool {
	for i := range d.Amenities {
		am := &d.Amenities[i]
		if !allowEmptyDenyPartial(am.Title, am.Image, am.Alt) {
			return false
		}
	}
	if blank(d.UpdatedImagesTitle) {
		return false
	}
	if len(d.UpdatedImages) != models.UpdatedImageCount {
		return false
	}
	for i := range d.UpdatedImages {
		img := &d.UpdatedImages[i]
		if img.Image.Empty() || blank(img.Alt) {
			return false
		}
	}
	return true
}

func validateSection4(d *models.ProjectDraft) bool {
	if blank(d.LocationTitle) || blank(d.LocationTitleText) || blank(d.MapIframeURL) {
		return false
	}
	// RERA number and contact fields are optional.
	return !blank(d.CardLocation) && !blank(d.CardAreaFt)
}

// ValidateSection runs one section's validator against the draft. The
// validators are pure: they never mutate the draft and no section
// depends on another section's fields.
func ValidateSection(d *models.ProjectDraft, s Section) bool {
	switch s {
	case Section1:
		return validateSection1(d)
	case Section2:
		return validateSection2(d)
	case Section3:
		return validateSection3(d)
	case Section4:
		return validateSection4(d)
	}
	return false
}

// Completed recomputes the completed-sections set from scratch.
func Completed(d *models.ProjectDraft) map[Section]bool {
	set := make(map[Section]bool, SectionCount)
	for s := Section1; s <= Section4; s++ {
		if ValidateSection(d, s) {
			set[s] = true
		}
	}
	return set
}

// AllComplete holds exactly when all four section validators pass.
func AllComplete(d *models.ProjectDraft) bool {
	return len(Completed(d)) == SectionCount
}
