package assets

import (
	"fmt"
	"strings"
)

// MaxAssetNameLength caps asset names.
const MaxAssetNameLength = 64

// ValidateAssetName checks that name can be used as a file name inside an
// asset directory: non-empty, bounded, and free of separators and dots.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > MaxAssetNameLength:
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidAssetName, MaxAssetNameLength)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
