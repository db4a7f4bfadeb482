package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulrahman/storyshare/models"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngPhoto(size int) []byte {
	photo := make([]byte, size)
	copy(photo, pngHeader)
	return photo
}

// ── ValidateDraft ────────────────────────────────────────────────────────────

func TestValidateDraft_OK(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateDraft(models.NewStory{
		Description: "a day at the beach",
		Photo:       pngPhoto(64),
	})
	require.NoError(t, err)
}

func TestValidateDraft_EmptyDescription(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateDraft(models.NewStory{Description: "", Photo: pngPhoto(64)})
	assert.ErrorIs(t, err, ErrEmptyDescription)

	err = v.ValidateDraft(models.NewStory{Description: "   \t\n", Photo: pngPhoto(64)})
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestValidateDraft_MissingPhoto(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateDraft(models.NewStory{Description: "no photo"})
	assert.ErrorIs(t, err, ErrMissingPhoto)
}

func TestValidateDraft_AcceptsOversizedPhoto(t *testing.T) {
	v := NewStoryValidator()

	// Draft rules hold anything with a photo; the size cap applies on upload.
	err := v.ValidateDraft(models.NewStory{
		Description: "huge photo, saved locally",
		Photo:       pngPhoto(MaxPhotoSize + 1),
	})
	require.NoError(t, err)
}

// ── ValidateUpload ───────────────────────────────────────────────────────────

func TestValidateUpload_OK(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateUpload(models.NewStory{
		Description: "a day at the beach",
		Photo:       pngPhoto(MaxPhotoSize),
	})
	require.NoError(t, err)
}

func TestValidateUpload_NotAnImage(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateUpload(models.NewStory{
		Description: "plain text attachment",
		Photo:       []byte("definitely not an image"),
	})
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestValidateUpload_PhotoTooLarge(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateUpload(models.NewStory{
		Description: "too big",
		Photo:       pngPhoto(MaxPhotoSize + 1),
	})
	assert.ErrorIs(t, err, ErrPhotoTooLarge)
}

func TestValidateUpload_DraftRulesStillApply(t *testing.T) {
	v := NewStoryValidator()

	err := v.ValidateUpload(models.NewStory{Description: " ", Photo: pngPhoto(64)})
	assert.ErrorIs(t, err, ErrEmptyDescription)
}
