//go:build !ebiten

package app

import (
	"errors"

	"celleste/internal/core"
)

// Run reports that GUI support requires the ebiten build tag. The
// terminal frontend remains available in headless builds.
func Run(core.Sim, *Config) error {
	return errors.New("the GUI frontend requires building with the 'ebiten' tag; use --terminal or rebuild with -tags ebiten")
}
