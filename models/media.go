package models

// StagedFile is a file the admin has picked for an image or brochure
// slot but that has not been submitted upstream yet. The bytes live in
// the staging directory; PreviewURL is a served URL for immediate
// display and must be released when the file is replaced or cleared.
type StagedFile struct {
	ID          string `bson:"-" json:"id"`
	Path        string `bson:"-" json:"-"`
	Name        string `bson:"-" json:"name"`
	Size        int64  `bson:"-" json:"size"`
	ContentType string `bson:"-" json:"contentType"`
	PreviewURL  string `bson:"-" json:"preview"`
	PreviewID   string `bson:"-" json:"-"`
}

// ImageSlot holds either a reference to an already-uploaded image (when
// editing an existing project) or a freshly staged file. A staged file
// shadows the stored reference until submission; it never deletes it.
type ImageSlot struct {
	StoredRef string      `bson:"stored_ref" json:"image"`
	File      *StagedFile `bson:"-" json:"file,omitempty"`
}

// Empty reports whether the slot carries neither a stored reference nor
// a staged file.
func (s ImageSlot) Empty() bool {
	return s.StoredRef == "" && s.File == nil
}
