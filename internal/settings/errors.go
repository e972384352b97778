package settings

import "errors"

var (
	// ErrDuplicateItem is returned when two custom items share an id, or a
	// custom item reuses a built-in category id
	ErrDuplicateItem = errors.New("duplicate checklist item id")

	// ErrNegativeWeight is returned when any item carries a negative weight
	ErrNegativeWeight = errors.New("negative item weight")

	// ErrMissingID is returned when a custom item has no id
	ErrMissingID = errors.New("custom item missing id")
)
