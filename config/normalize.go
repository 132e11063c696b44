package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Limits applied to the numeric options. Friendly maxima keep single player
// seeds completable and multiworld sessions short; hosts may lift them.
const (
	TotalOrbs     = 2000
	LevelOrbUnit  = 50
	TotalCells    = 101
	MaxCellCount  = 100
	CitizenTrades = 9
	OracleTrades  = 6

	friendlyFireCanyon   = 30
	friendlyMountainPass = 60
	friendlyLavaTube     = 90
	friendlyCitizen      = 120
	friendlyOracle       = 150
	absoluteCitizen      = 222
	absoluteOracle       = 333
	friendlyMinBundle    = 10
	friendlyMaxGlobal    = 200
)

var (
	globalBundleSizes = []int{1, 2, 4, 5, 8, 10, 16, 20, 25, 40, 50, 80, 100, 125, 200, 250, 400, 500, 1000, 2000}
	levelBundleSizes  = []int{1, 2, 5, 10, 25, 50}
)

// FieldError is one rejected option.
type FieldError struct {
	Field   string
	Message string
}

// Error lists every option Normalize rejected.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("config: %d invalid option(s): %s", len(e.Fields), strings.Join(parts, "; "))
}

func (e *Error) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Has reports whether a field was rejected.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Normalize checks the options and returns the copy the world is built
// from. With friendly set, the stricter host limits apply. When ordered
// cell counts are on the three connector counts are sorted ascending.
func Normalize(o Options, friendly bool) (Options, error) {
	e := &Error{}

	switch o.EnableOrbsanity {
	case "off", "per_level", "global":
	case "":
		o.EnableOrbsanity = "off"
	default:
		e.add("enable_orbsanity", "unknown mode %q", o.EnableOrbsanity)
	}

	checkBundle(e, "global_orbsanity_bundle_size", o.GlobalOrbsanityBundleSize, globalBundleSizes, TotalOrbs,
		friendly, func(n int) bool { return n >= friendlyMinBundle && n <= friendlyMaxGlobal })
	checkBundle(e, "level_orbsanity_bundle_size", o.LevelOrbsanityBundleSize, levelBundleSizes, LevelOrbUnit,
		friendly, func(n int) bool { return n >= friendlyMinBundle })

	cellMax := func(f int) int {
		if friendly {
			return f
		}
		return MaxCellCount
	}
	checkRange(e, "fire_canyon_cell_count", o.FireCanyonCellCount, 0, cellMax(friendlyFireCanyon))
	checkRange(e, "mountain_pass_cell_count", o.MountainPassCellCount, 0, cellMax(friendlyMountainPass))
	checkRange(e, "lava_tube_cell_count", o.LavaTubeCellCount, 0, cellMax(friendlyLavaTube))

	citizenMax, oracleMax := absoluteCitizen, absoluteOracle
	if friendly {
		citizenMax, oracleMax = friendlyCitizen, friendlyOracle
	}
	checkRange(e, "citizen_orb_trade_amount", o.CitizenOrbTradeAmount, 0, citizenMax)
	checkRange(e, "oracle_orb_trade_amount", o.OracleOrbTradeAmount, 0, oracleMax)
	if total := o.TradeTotal(); total > TotalOrbs {
		e.add("citizen_orb_trade_amount", "trades need %d orbs, more than the %d in the game", total, TotalOrbs)
	}

	checkRange(e, "filler_power_cells_replaced_with_traps", o.FillerPowerCellsReplacedWithTraps, 0, MaxCellCount)
	checkRange(e, "filler_orb_bundles_replaced_with_traps", o.FillerOrbBundlesReplacedWithTraps, 0, TotalOrbs)
	checkRange(e, "trap_effect_duration", o.TrapEffectDuration, 5, 60)
	for name, w := range o.TrapWeights {
		if w < 0 {
			e.add("trap_weights", "weight of %q is negative", name)
		}
	}

	if _, ok := Hubs(o.CompletionCondition); !ok {
		e.add("jak_completion_condition", "unknown condition %q", o.CompletionCondition)
	}
	checkRange(e, "completion_task_count", o.CompletionTaskCount, 1, TotalCells)

	if len(e.Fields) > 0 {
		return Options{}, e
	}

	if o.EnableOrderedCellCounts {
		counts := []int{o.FireCanyonCellCount, o.MountainPassCellCount, o.LavaTubeCellCount}
		slices.Sort(counts)
		o.FireCanyonCellCount, o.MountainPassCellCount, o.LavaTubeCellCount = counts[0], counts[1], counts[2]
	}
	if !o.EnableMoveRandomizer {
		// Punch for Klaww only applies when moves are shuffled.
		o.RequirePunchForKlaww = false
	}

	slog.Debug("options normalized",
		"completion", o.CompletionCondition,
		"orbsanity", o.EnableOrbsanity,
		"cells", []int{o.FireCanyonCellCount, o.MountainPassCellCount, o.LavaTubeCellCount},
		"trade_total", o.TradeTotal(),
		"friendly", friendly)
	return o, nil
}

func checkRange(e *Error, field string, v, lo, hi int) {
	if v < lo || v > hi {
		e.add(field, "%d not in %d..%d", v, lo, hi)
	}
}

func checkBundle(e *Error, field string, v int, allowed []int, total int, friendly bool, friendlyOK func(int) bool) {
	switch {
	case v <= 0 || total%v != 0:
		e.add(field, "%d does not divide %d", v, total)
	case !slices.Contains(allowed, v):
		e.add(field, "%d is not an offered bundle size", v)
	case friendly && !friendlyOK(v):
		e.add(field, "%d is outside the friendly limits", v)
	}
}

// TradeTotal is the number of orbs every citizen and oracle trade needs
// together.
func (o Options) TradeTotal() int {
	return CitizenTrades*o.CitizenOrbTradeAmount + OracleTrades*o.OracleOrbTradeAmount
}

// CellRequirement returns the highest power cell count a connector needs.
func (o Options) CellRequirement() int {
	return max(o.FireCanyonCellCount, o.MountainPassCellCount, o.LavaTubeCellCount)
}
