// Package ids translates between the game's native identifiers and the
// host's global id space.
//
// Every category owns a disjoint band above Base. Natives are small
// integers used by the game itself; globals are what the host sees. The
// band order and offsets are a save-compatibility contract and must not
// change.
package ids

import (
	"errors"
	"fmt"
)

// Base is the first global id owned by this game.
const Base int64 = 741000000

var (
	// ErrAlreadyGlobal is returned when a global id is passed as a native.
	ErrAlreadyGlobal = errors.New("ids: id is already global")
	// ErrNotGlobal is returned when a native id is passed as a global.
	ErrNotGlobal = errors.New("ids: id is not global")
	// ErrWrongBand is returned when a global id belongs to another band.
	ErrWrongBand = errors.New("ids: id belongs to another band")
	// ErrOutOfBand is returned when a native does not fit its band.
	ErrOutOfBand = errors.New("ids: native id does not fit band")
)

// Band is a contiguous slice of the global id space.
type Band struct {
	Name   string
	Offset int64
	Size   int64

	pack   func(native int) int64
	unpack func(local int64) int
	valid  func(native int) bool
}

// The bands, in contract order.
var (
	Cells      = Band{Name: "cells", Offset: 0, Size: 1024}
	ScoutFlies = Band{Name: "scout flies", Offset: 1024, Size: 1024, pack: packFly, unpack: unpackFly, valid: validFly}
	Specials   = Band{Name: "specials", Offset: 2048, Size: 2048}
	Caches     = Band{Name: "caches", Offset: 4096, Size: 28672}
	Orbs       = Band{Name: "orbs", Offset: 32768, Size: 32768}
	Traps      = Band{Name: "traps", Offset: 65536, Size: 32768}
	Filler     = Band{Name: "filler", Offset: 98304, Size: 1024}
)

// Bands returns every band in contract order.
func Bands() []Band {
	return []Band{Cells, ScoutFlies, Specials, Caches, Orbs, Traps, Filler}
}

// Range returns the half-open global range [lo, hi) of the band.
func (b Band) Range() (lo, hi int64) {
	return Base + b.Offset, Base + b.Offset + b.Size
}

// Contains reports whether a global id lies inside the band.
func (b Band) Contains(global int64) bool {
	lo, hi := b.Range()
	return global >= lo && global < hi
}

// ToGlobal converts a native id into the band's global id.
func (b Band) ToGlobal(native int) (int64, error) {
	if int64(native) >= Base {
		return 0, fmt.Errorf("%s %d: %w", b.Name, native, ErrAlreadyGlobal)
	}
	if native < 0 {
		return 0, fmt.Errorf("%s %d: %w", b.Name, native, ErrOutOfBand)
	}
	if b.valid != nil && !b.valid(native) {
		return 0, fmt.Errorf("%s %d: %w", b.Name, native, ErrOutOfBand)
	}
	local := int64(native)
	if b.pack != nil {
		local = b.pack(native)
	}
	if local >= b.Size {
		return 0, fmt.Errorf("%s %d: %w", b.Name, native, ErrOutOfBand)
	}
	return Base + b.Offset + local, nil
}

// ToNative converts a global id of this band back into its native id.
func (b Band) ToNative(global int64) (int, error) {
	if global < Base {
		return 0, fmt.Errorf("%s %d: %w", b.Name, global, ErrNotGlobal)
	}
	if !b.Contains(global) {
		return 0, fmt.Errorf("%s %d: %w", b.Name, global, ErrWrongBand)
	}
	local := global - Base - b.Offset
	if b.unpack != nil {
		return b.unpack(local), nil
	}
	return int(local), nil
}

// MustGlobal is like ToGlobal but panics on error. Use it only for static
// tables.
func (b Band) MustGlobal(native int) int64 {
	id, err := b.ToGlobal(native)
	if err != nil {
		panic(err)
	}
	return id
}

// MustNative is like ToNative but panics on error.
func (b Band) MustNative(global int64) int {
	n, err := b.ToNative(global)
	if err != nil {
		panic(err)
	}
	return n
}

// BandOf returns the band owning a global id.
func BandOf(global int64) (Band, bool) {
	for _, b := range Bands() {
		if b.Contains(global) {
			return b, true
		}
	}
	return Band{}, false
}

// Scout fly natives pack the fly index into the upper bits and the owning
// power cell into the lowest 7 bits: native = index<<16 | cell. The global
// form squeezes the index down by 9 bits so all 112 flies fit in 1024 ids.
const (
	flyCellMask = 0x7F
	flyMaxIndex = 7
)

// validFly rejects natives the packing would fold onto another fly: any
// bit between the cell and the index, or an index above flyMaxIndex.
func validFly(native int) bool {
	return native&0xFF80 == 0 && native>>16 <= flyMaxIndex
}

func packFly(native int) int64 {
	cell := native & flyCellMask
	return int64(((native - cell) >> 9) + cell)
}

func unpackFly(local int64) int {
	cell := int(local) & flyCellMask
	return ((int(local) - cell) << 9) + cell
}

// FlyNative builds a scout fly native id from its index and owning cell.
func FlyNative(index, cell int) int {
	return index<<16 | cell
}

// FlyCell returns the power cell a scout fly native belongs to.
func FlyCell(native int) int {
	return native & flyCellMask
}

// BundleStride is the number of orb bundle addresses reserved per level.
const BundleStride = 200

// Address returns the orb bundle address of a bundle within a level.
func Address(levelIndex, bundleIndex int) int {
	return levelIndex*BundleStride + bundleIndex
}

// FindAddress returns the address of the bundle that contains the given
// orb count, for the sync layer which only knows how many orbs the
// player has collected in a level.
func FindAddress(levelIndex, orbCount, bundleSize int) int {
	if bundleSize <= 0 {
		return Address(levelIndex, 0)
	}
	return Address(levelIndex, orbCount/bundleSize-1)
}
