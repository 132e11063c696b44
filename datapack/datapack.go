// Package datapack writes the tables a game-memory client needs to map
// names and native task ids to global ids.
package datapack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/zstd"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/types"
	"github.com/nathoo/jaklogic/world"
)

const (
	Game    = "Jak and Daxter: The Precursor Legacy"
	Version = 1
)

var (
	ErrGame    = errors.New("datapack: not a Jak and Daxter data package")
	ErrVersion = errors.New("datapack: unsupported version")
)

// zstdMagic opens every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Categories with native id tables, in export order.
var nativeCategories = []string{
	types.CategoryCell,
	types.CategoryFly,
	types.CategorySpecial,
	types.CategoryCache,
	types.CategoryOrb,
}

// Package is the exported document.
type Package struct {
	Game             string                   `json:"game"`
	Version          int                      `json:"version"`
	Player           int                      `json:"player"`
	Options          config.Options           `json:"options"`
	ItemNameToID     map[string]int64         `json:"item_name_to_id"`
	LocationNameToID map[string]int64         `json:"location_name_to_id"`
	Native           map[string]map[int]int64 `json:"native"`
}

// Options control the export encoding.
type Options struct {
	Compress bool
}

// Build assembles the package of a world.
func Build(w *world.World) *Package {
	p := &Package{
		Game:             Game,
		Version:          Version,
		Player:           w.Player,
		Options:          w.Options,
		ItemNameToID:     w.ItemNameToID(),
		LocationNameToID: w.LocationNameToID(),
		Native:           make(map[string]map[int]int64, len(nativeCategories)),
	}
	for _, cat := range nativeCategories {
		p.Native[cat] = w.Defs.NativeTable(cat)
	}
	return p
}

// Export writes the package of w to out as JSON, zstd-compressed when
// opts.Compress is set.
func Export(out io.Writer, w *world.World, opts Options) error {
	data, err := json.MarshalIndent(Build(w), "", "  ")
	if err != nil {
		return fmt.Errorf("datapack: encode: %w", err)
	}
	if !opts.Compress {
		_, err = out.Write(data)
		return err
	}

	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("datapack: zstd: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("datapack: zstd: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("datapack: zstd: %w", err)
	}
	slog.Debug("data package compressed", "raw_bytes", len(data))
	return nil
}

// Import reads a package written by Export, compressed or not.
func Import(r io.Reader) (*Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("datapack: read: %w", err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("datapack: zstd: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("datapack: zstd: %w", err)
		}
	}

	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("datapack: decode: %w", err)
	}
	if p.Game != Game {
		return nil, fmt.Errorf("%w: game %q", ErrGame, p.Game)
	}
	if p.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, p.Version)
	}
	return &p, nil
}

// NativeLocation looks up the location id of a category native id.
func (p *Package) NativeLocation(category string, native int) (int64, bool) {
	id, ok := p.Native[category][native]
	return id, ok
}
