package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/jaklogic/engine/ids"
	"github.com/nathoo/jaklogic/engine/tables"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

const fliesPerLevel = 7

// validate checks the compiled level tables for consistency. Id and name
// collisions are left to tables.Merge.
func validate(areas []tables.AreaTable) *ValidationError {
	ve := &ValidationError{}
	indices := map[int]string{}
	abbrevs := map[string]string{}
	orbs := 0

	for _, a := range areas {
		lv := a.Level
		orbs += lv.Orbs

		if lv.Abbrev == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: abbrev is required", lv.Name))
		} else if prev, dup := abbrevs[lv.Abbrev]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: abbrev %q already used by %q", lv.Name, lv.Abbrev, prev))
		} else {
			abbrevs[lv.Abbrev] = lv.Name
		}

		if prev, dup := indices[lv.Index]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: index %d already used by %q", lv.Name, lv.Index, prev))
		} else {
			indices[lv.Index] = lv.Name
		}
		if lv.Index < 0 || lv.Index >= tables.GlobalOrbIndex {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: index %d out of range", lv.Name, lv.Index))
		}
		if lv.Hub < 1 || lv.Hub > 3 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: hub %d must be 1, 2 or 3", lv.Name, lv.Hub))
		}
		if lv.Orbs < 0 || lv.Orbs > ids.BundleStride {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: orbs %d out of range", lv.Name, lv.Orbs))
		}

		validFlies(a, ve)
	}

	if len(areas) > 0 && orbs != tables.TotalOrbs {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("level orb totals sum to %d, want %d", orbs, tables.TotalOrbs))
	}
	return ve
}

// validFlies checks that every fly of a level belongs to its free-7 cell.
func validFlies(a tables.AreaTable, ve *ValidationError) {
	lv := a.Level
	if lv.FlyCell <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: fly_cell is required", lv.Name))
		return
	}
	if lv.CellName == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: free_cell name is required", lv.Name))
	}
	if _, dup := a.Cells[lv.FlyCell]; dup {
		ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: cell %d is the free-7 cell and must not be listed in cells", lv.Name, lv.FlyCell))
	}
	for native, name := range a.Flies {
		if ids.FlyCell(native) != lv.FlyCell {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q: scout fly %q (%d) belongs to cell %d, want %d",
				lv.Name, name, native, ids.FlyCell(native), lv.FlyCell))
		}
	}
	if len(a.Flies) != fliesPerLevel {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("level %q: %d scout flies, want %d", lv.Name, len(a.Flies), fliesPerLevel))
	}
}
