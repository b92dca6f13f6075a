package prefabs

import (
	"errors"
	"fmt"
)

// ErrEmptyRecipe is returned for a recipe document without parts.
var ErrEmptyRecipe = errors.New("recipe has no parts")

// ValidationError reports a malformed recipe field. Path points at the
// offending field, e.g. "Parts[3].Scale".
type ValidationError struct {
	Recipe string
	Path   string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("prefabs: recipe %s: %v", e.Recipe, e.Err)
	}
	return fmt.Sprintf("prefabs: recipe %s: %s: %v", e.Recipe, e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AssetLoadError is returned when a recipe cannot be fetched or decoded.
type AssetLoadError struct {
	Name string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("prefabs: load asset %s: %v", e.Name, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }
