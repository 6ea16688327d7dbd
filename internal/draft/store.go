package draft

import (
	"context"
	"log"
	"strconv"
	"sync"

	"shilpgroup-io/backoffice/models"

	slug2 "github.com/gosimple/slug"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Field names a scalar draft field the dashboard can edit. The store
// only accepts this closed set.
type Field string

const (
	FieldProjectTitle            Field = "projectTitle"
	FieldSlug                    Field = "slug"
	FieldProjectState            Field = "projectState"
	FieldProjectType             Field = "projectType"
	FieldShortAddress            Field = "shortAddress"
	FieldProjectStatusPercentage Field = "projectStatusPercentage"
	FieldYoutubeURL              Field = "youtubeUrl"
	FieldUpdatedImagesTitle      Field = "updatedImagesTitle"
	FieldLocationTitle           Field = "locationTitle"
	FieldLocationTitleText       Field = "locationTitleText"
	FieldLocationArea            Field = "locationArea"
	FieldNumber1                 Field = "number1"
	FieldNumber2                 Field = "number2"
	FieldEmail1                  Field = "email1"
	FieldEmail2                  Field = "email2"
	FieldMapIframeURL            Field = "mapIframeUrl"
	FieldCardLocation            Field = "cardLocation"
	FieldCardAreaFt              Field = "cardAreaFt"
	FieldCardProjectType         Field = "cardProjectType"
	FieldCardHouse               Field = "cardHouse"
	FieldReraNumber              Field = "reraNumber"
	FieldBannerAlt               Field = "bannerAlt"
	FieldDescription1            Field = "description1"
	FieldDescription2            Field = "description2"
	FieldDescription3            Field = "description3"
	FieldDescription4            Field = "description4"
	FieldAboutUsAlt              Field = "aboutUsAlt"
)

// Slot addresses an image or file slot in the draft. Collection slots
// additionally need the item id.
type Slot string

const (
	SlotBannerDesktop Slot = "bannerDesktop"
	SlotBannerMobile  Slot = "bannerMobile"
	SlotAboutUsImage  Slot = "aboutUsImage"
	SlotCardImage     Slot = "cardImage"
	SlotBrochure      Slot = "brochure"
	SlotFloorPlan     Slot = "floorPlan"
	SlotProjectImage  Slot = "projectImage"
	SlotAmenity       Slot = "amenity"
	SlotUpdatedImage  Slot = "updatedImage"
)

type Collection string

const (
	CollectionFloorPlans    Collection = "floorPlans"
	CollectionProjectImages Collection = "projectImages"
	CollectionAmenities     Collection = "amenities"
	CollectionUpdatedImages Collection = "updatedImages"
)

// Releaser frees the staging resources (file bytes + preview URL) of a
// staged file that is replaced, cleared or reset away.
type Releaser interface {
	Release(f *models.StagedFile) error
}

// Persister is the draft snapshot store: written on every change,
// loaded once per session, cleared after a successful submission. Only
// text/metadata survives the round trip; staged files never do.
type Persister interface {
	Save(ctx context.Context, key string, d *models.ProjectDraft) error
	Load(ctx context.Context, key string, d *models.ProjectDraft) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Store owns one admin session's project draft. All mutations happen
// through it; the completion set and navigation gating are derived from
// the draft on demand. Mutations are total over the draft shape;
// malformed content is caught by the section validators, not here.
type Store struct {
	mu         sync.Mutex
	key        string
	draft      *models.ProjectDraft
	nav        Navigator
	releaser   Releaser
	persist    Persister
	submitting bool
}

func NewStore(key string, releaser Releaser, persist Persister) *Store {
	return &Store{
		key:      key,
		draft:    models.NewProjectDraft(),
		nav:      NewNavigator(),
		releaser: releaser,
		persist:  persist,
	}
}

// Restore merges a previously persisted snapshot over the seeded
// defaults. Staged files are gone after a restore; that is documented
// behavior, not an error.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.persist.Load(ctx, s.key, s.draft)
	return err
}

func (s *Store) saveSnapshot(ctx context.Context) {
	if err := s.persist.Save(ctx, s.key, s.draft); err != nil {
		log.Printf("failed to persist draft snapshot %s: %v", s.key, err)
	}
}

func (s *Store) release(f *models.StagedFile) {
	if f == nil || s.releaser == nil {
		return
	}
	if err := s.releaser.Release(f); err != nil {
		log.Printf("failed to release staged file %s: %v", f.ID, err)
	}
}

// State is the wizard view handed back to the dashboard after every
// operation: the draft, the current section and the derived completion
// model. The draft is a detached copy; callers (and gin's JSON
// marshaling) never touch the guarded draft.
type State struct {
	Draft             *models.ProjectDraft `json:"draft"`
	CurrentSection    Section              `json:"currentSection"`
	CompletedSections []Section            `json:"completedSections"`
	AllComplete       bool                 `json:"allComplete"`
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := Completed(s.draft)
	var list []Section
	for sec := Section1; sec <= Section4; sec++ {
		if completed[sec] {
			list = append(list, sec)
		}
	}
	return State{
		Draft:             s.draft.Clone(),
		CurrentSection:    s.nav.Current(),
		CompletedSections: list,
		AllComplete:       len(list) == SectionCount,
	}
}

// SetField updates one scalar field. Editing the title always rederives
// the slug; a manually edited slug is overwritten by the next title
// edit. Editing the project type keeps the card's project type in sync
// the same way.
func (s *Store) SetField(ctx context.Context, f Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft
	switch f {
	case FieldProjectTitle:
		d.ProjectTitle = value
		d.Slug = slug2.Make(value)
	case FieldSlug:
		d.Slug = value
	case FieldProjectState:
		d.ProjectState = models.ProjectState(value)
	case FieldProjectType:
		d.ProjectType = models.ProjectType(value)
		d.CardProjectType = models.ProjectType(value)
	case FieldShortAddress:
		d.ShortAddress = value
	case FieldProjectStatusPercentage:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrap(err, "project status percentage must be a number")
		}
		d.ProjectStatusPercentage = n
	case FieldYoutubeURL:
		d.YoutubeURL = value
	case FieldUpdatedImagesTitle:
		d.UpdatedImagesTitle = value
	case FieldLocationTitle:
		d.LocationTitle = value
	case FieldLocationTitleText:
		d.LocationTitleText = value
	case FieldLocationArea:
		d.LocationArea = value
	case FieldNumber1:
		d.Number1 = value
	case FieldNumber2:
		d.Number2 = value
	case FieldEmail1:
		d.Email1 = value
	case FieldEmail2:
		d.Email2 = value
	case FieldMapIframeURL:
		d.MapIframeURL = value
	case FieldCardLocation:
		d.CardLocation = value
	case FieldCardAreaFt:
		d.CardAreaFt = value
	case FieldCardProjectType:
		d.CardProjectType = models.ProjectType(value)
	case FieldCardHouse:
		d.CardHouse = models.HouseStatus(value)
	case FieldReraNumber:
		d.ReraNumber = value
	case FieldBannerAlt:
		d.Banner.Alt = value
	case FieldDescription1:
		d.AboutUs.Description1 = value
	case FieldDescription2:
		d.AboutUs.Description2 = value
	case FieldDescription3:
		d.AboutUs.Description3 = value
	case FieldDescription4:
		d.AboutUs.Description4 = value
	case FieldAboutUsAlt:
		d.AboutUs.ImageAlt = value
	default:
		return errors.Wrapf(ErrUnknownField, "%q", f)
	}

	s.saveSnapshot(ctx)
	return nil
}

func (s *Store) slot(slot Slot, itemID string) (*models.ImageSlot, error) {
	d := s.draft
	switch slot {
	case SlotBannerDesktop:
		return &d.Banner.Desktop, nil
	case SlotBannerMobile:
		return &d.Banner.Mobile, nil
	case SlotAboutUsImage:
		return &d.AboutUs.Image, nil
	case SlotCardImage:
		return &d.CardImage, nil
	case SlotFloorPlan:
		for i := range d.FloorPlans {
			if d.FloorPlans[i].ID == itemID {
				return &d.FloorPlans[i].Image, nil
			}
		}
		return nil, errors.Wrapf(ErrItemNotFound, "floor plan %s", itemID)
	case SlotProjectImage:
		for i := range d.ProjectImages {
			if d.ProjectImages[i].ID == itemID {
				return &d.ProjectImages[i].Image, nil
			}
		}
		return nil, errors.Wrapf(ErrItemNotFound, "project image %s", itemID)
	case SlotAmenity:
		for i := range d.Amenities {
			if d.Amenities[i].ID == itemID {
				return &d.Amenities[i].Image, nil
			}
		}
		return nil, errors.Wrapf(ErrItemNotFound, "amenity %s", itemID)
	case SlotUpdatedImage:
		for i := range d.UpdatedImages {
			if d.UpdatedImages[i].ID == itemID {
				return &d.UpdatedImages[i].Image, nil
			}
		}
		return nil, errors.Wrapf(ErrItemNotFound, "updated image %s", itemID)
	}
	return nil, errors.Wrapf(ErrUnknownSlot, "%q", slot)
}

// StageFile installs a staged file into a slot, releasing the staging
// resources of whatever was staged there before. An existing stored
// reference stays in place, shadowed until submission.
func (s *Store) StageFile(ctx context.Context, slot Slot, itemID string, f *models.StagedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot == SlotBrochure {
		s.release(s.draft.Brochure)
		s.draft.Brochure = f
		s.saveSnapshot(ctx)
		return nil
	}

	target, err := s.slot(slot, itemID)
	if err != nil {
		return err
	}
	s.release(target.File)
	target.File = f
	s.saveSnapshot(ctx)
	return nil
}

// ClearSlot drops the staged file from a slot. The stored reference, if
// any, is untouched.
func (s *Store) ClearSlot(ctx context.Context, slot Slot, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot == SlotBrochure {
		s.release(s.draft.Brochure)
		s.draft.Brochure = nil
		s.saveSnapshot(ctx)
		return nil
	}

	target, err := s.slot(slot, itemID)
	if err != nil {
		return err
	}
	s.release(target.File)
	target.File = nil
	s.saveSnapshot(ctx)
	return nil
}

// AddItem appends a blank row with a fresh id. The gallery and
// construction-update collections have fixed cardinality and refuse.
func (s *Store) AddItem(ctx context.Context, col Collection) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	switch col {
	case CollectionFloorPlans:
		s.draft.FloorPlans = append(s.draft.FloorPlans, models.FloorPlan{ID: id})
	case CollectionAmenities:
		s.draft.Amenities = append(s.draft.Amenities, models.Amenity{ID: id})
	case CollectionProjectImages, CollectionUpdatedImages:
		return "", errors.Wrapf(ErrFixedCollection, "%q", col)
	default:
		return "", errors.Wrapf(ErrUnknownCollection, "%q", col)
	}

	s.saveSnapshot(ctx)
	return id, nil
}

// RemoveItem removes a row by id and releases its staged file.
func (s *Store) RemoveItem(ctx context.Context, col Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch col {
	case CollectionFloorPlans:
		for i := range s.draft.FloorPlans {
			if s.draft.FloorPlans[i].ID == id {
				s.release(s.draft.FloorPlans[i].Image.File)
				s.draft.FloorPlans = append(s.draft.FloorPlans[:i], s.draft.FloorPlans[i+1:]...)
				s.saveSnapshot(ctx)
				return nil
			}
		}
	case CollectionAmenities:
		for i := range s.draft.Amenities {
			if s.draft.Amenities[i].ID == id {
				s.release(s.draft.Amenities[i].Image.File)
				s.draft.Amenities = append(s.draft.Amenities[:i], s.draft.Amenities[i+1:]...)
				s.saveSnapshot(ctx)
				return nil
			}
		}
	case CollectionProjectImages, CollectionUpdatedImages:
		return errors.Wrapf(ErrFixedCollection, "%q", col)
	default:
		return errors.Wrapf(ErrUnknownCollection, "%q", col)
	}
	return errors.Wrapf(ErrItemNotFound, "%s %s", col, id)
}

func (s *Store) SetFloorPlanTitle(ctx context.Context, id, value string) error {
	return s.setItemField(ctx, func() error {
		for i := range s.draft.FloorPlans {
			if s.draft.FloorPlans[i].ID == id {
				s.draft.FloorPlans[i].Title = value
				return nil
			}
		}
		return errors.Wrapf(ErrItemNotFound, "floor plan %s", id)
	})
}

func (s *Store) SetFloorPlanAlt(ctx context.Context, id, value string) error {
	return s.setItemField(ctx, func() error {
		for i := range s.draft.FloorPlans {
			if s.draft.FloorPlans[i].ID == id {
				s.draft.FloorPlans[i].Alt = value
				return nil
			}
		}
		return errors.Wrapf(ErrItemNotFound, "floor plan %s", id)
	})
}

func (s *Store) SetProjectImageAlt(ctx context.Context, id, value string) error {
	return s.setItemField(ctx, func() error {
		for i := range s.draft.ProjectImages {
			if s.draft.ProjectImages[i].ID == id {
				s.draft.ProjectImages[i].Alt = value
				return nil
			}
		}
		return errors.Wrapf(ErrItemNotFound, "project image %s", id)
	})
}

func (s *Store) SetAmenityTitle(ctx context.Context, id, value string) error {
	return s.setItemField(ctx, func() error {
		for i := range s.draft.Amenities {
			if s.draft.Amenities[i].ID == id {
				s.draft.Amenities[i].Title = value
				return nil
			}
		}
		return errors.Wrapf(ErrItemNotFound, "amenity %s", id)
	})
}

func (s *Store) SetAmenityAlt(ctx context.Context, id, value string) error {
	return s.setItemField(ctx, func() error {
		for i := range s.draft.Amenities {
			if s.draft.Amenities[i].ID == id {
				s.draft.Amenities[i].Alt = value
				return nil
			}
		}
		return errors.Wrapf(ErrItemNotFound, "amenity %s", id)
	})
}

func (s *Store) SetUpdatedImageAlt(ctx context.Context, id, value string) error {
	return s.setItemField(ctx, func() error {
		for i := range s.draft.UpdatedImages {
			if s.draft.UpdatedImages[i].ID == id {
				s.draft.UpdatedImages[i].Alt = value
				return nil
			}
		}
		return errors.Wrapf(ErrItemNotFound, "updated image %s", id)
	})
}

func (s *Store) setItemField(ctx context.Context, apply func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := apply(); err != nil {
		return err
	}
	s.saveSnapshot(ctx)
	return nil
}

// Navigation. Blocked moves leave both the section and the draft
// untouched.

func (s *Store) Next(ctx context.Context) (Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.nav.Next(s.draft)
	return s.nav.Current(), err
}

func (s *Store) Prev(ctx context.Context) Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.Prev()
	return s.nav.Current()
}

func (s *Store) JumpTo(ctx context.Context, target Section) (Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.nav.JumpTo(target, s.draft)
	return s.nav.Current(), err
}

// Reset restores the seeded-empty draft, releases every staged file and
// clears the persisted snapshot.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resetLocked(ctx)
}

func (s *Store) resetLocked(ctx context.Context) error {
	for _, f := range s.draft.StagedFiles() {
		s.release(f)
	}
	s.draft = models.NewProjectDraft()
	s.nav.Reset()
	return s.persist.Delete(ctx, s.key)
}

// Submit runs one submission attempt through the given send function
// (assemble + network). Completeness is re-checked here, not trusted
// from UI gating. The send function gets a detached copy taken under
// the lock, so edits landing while the request is on the wire cannot
// tear the assembled payload. Exactly one submission may be in flight;
// on a successful result the draft resets and the wizard returns to
// section one. The in-flight flag is always cleared.
func (s *Store) Submit(ctx context.Context, send func(*models.ProjectDraft) (*models.SubmitResult, error)) (*models.SubmitResult, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if !AllComplete(s.draft) {
		s.mu.Unlock()
		return nil, ErrIncomplete
	}
	s.submitting = true
	d := s.draft.Clone()
	s.mu.Unlock()

	result, err := send(d)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		return nil, err
	}
	if result.Success {
		if rerr := s.resetLocked(ctx); rerr != nil {
			log.Printf("failed to clear draft after submission: %v", rerr)
		}
	}
	return result, nil
}
