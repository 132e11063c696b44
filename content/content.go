// Package content embeds the static level and item data files.
package content

import (
	"embed"
	"sync"

	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/loader"
)

//go:embed *.lua
var FS embed.FS

var (
	once sync.Once
	defs *tables.Defs
	err  error
)

// Defs loads the embedded data once and returns the shared tables.
func Defs() (*tables.Defs, error) {
	once.Do(func() {
		defs, err = loader.Load(FS)
	})
	return defs, err
}
