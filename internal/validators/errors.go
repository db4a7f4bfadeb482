package validators

import "errors"

var (
	ErrEmptyDescription = errors.New("story description must not be empty")
	ErrMissingPhoto     = errors.New("story photo is required")
	ErrNotAnImage       = errors.New("story photo must be an image")
	ErrPhotoTooLarge    = errors.New("story photo must not exceed 1 MiB")
)
