// Package fonts resolves the face names the layout model uses to
// embedded font data. The binary ships with the Latin Modern Sans
// faces so generated documents never depend on system fonts.
package fonts

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// Load returns the TTF bytes for a face name. The empty name maps to
// the body face.
func Load(name string) ([]byte, error) {
	switch name {
	case "", "body":
		return lmsans10regular.TTF, nil
	case "bold":
		return lmsans10bold.TTF, nil
	default:
		return nil, fmt.Errorf("fonts: unknown face %q", name)
	}
}
