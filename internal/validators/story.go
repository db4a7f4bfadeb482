// Package validators holds the input validation rules for user-authored
// stories. Validation always happens before any I/O, so a rejected input
// never leaves partial state behind.
package validators

import (
	"net/http"
	"strings"

	"github.com/aulrahman/storyshare/models"
)

// MaxPhotoSize is the upper bound the API accepts for a photo upload.
// It applies to network submission only; a story held locally while offline
// may carry a larger photo and is re-validated at send time.
const MaxPhotoSize = 1 << 20

// StoryValidator validates story drafts and upload candidates.
type StoryValidator struct{}

// NewStoryValidator constructs a StoryValidator.
func NewStoryValidator() *StoryValidator {
	return &StoryValidator{}
}

// ValidateDraft checks the fields required to hold a story at all:
// a non-empty description (after trimming) and a present photo payload.
// This is the rule set applied to offline pending storage.
func (v *StoryValidator) ValidateDraft(story models.NewStory) error {
	if strings.TrimSpace(story.Description) == "" {
		return ErrEmptyDescription
	}
	if len(story.Photo) == 0 {
		return ErrMissingPhoto
	}
	return nil
}

// ValidateUpload checks everything ValidateDraft does plus the constraints
// the API enforces on submission: the payload must sniff as an image and must
// not exceed MaxPhotoSize.
func (v *StoryValidator) ValidateUpload(story models.NewStory) error {
	if err := v.ValidateDraft(story); err != nil {
		return err
	}
	if !strings.HasPrefix(http.DetectContentType(story.Photo), "image/") {
		return ErrNotAnImage
	}
	if len(story.Photo) > MaxPhotoSize {
		return ErrPhotoTooLarge
	}
	return nil
}
