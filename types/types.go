// Package types defines the shared data structures for the jaklogic core.
// This package contains only type definitions, no logic and no methods.
package types

// Item categories.
const (
	CategoryCell    = "cell"
	CategoryFly     = "fly"
	CategorySpecial = "special"
	CategoryCache   = "cache"
	CategoryMove    = "move"
	CategoryOrb     = "orb"
	CategoryTrap    = "trap"
	CategoryFiller  = "filler"
)

// Item classifications, as reported to the host.
const (
	Progression = "progression"
	Useful      = "useful"
	Filler      = "filler"
	Trap        = "trap"
)

// Rule kinds. The zero Kind means "always".
const (
	RuleAlways  = "always"
	RuleHas     = "has"
	RuleHasAll  = "has_all"
	RuleHasAny  = "has_any"
	RuleCountOf = "count_of"
	RuleOrbs    = "orbs"
	RuleAnd     = "and"
	RuleOr      = "or"
	RuleNot     = "not"
)

// ItemDef is a grantable item.
type ItemDef struct {
	ID             int64
	Name           string
	Category       string
	Classification string
	Native         int
	Level          string // owning level, empty for global items
}

// LocationDef is a checkable location.
type LocationDef struct {
	ID       int64
	Name     string
	Category string
	Level    string
	Native   int
}

// LevelDef describes one level of the game world.
type LevelDef struct {
	Name     string
	Abbrev   string
	Index    int // orbsanity address index
	Orbs     int // documented orb total
	Hub      int // 1, 2 or 3
	FlyCell  int // native id of the "Free 7 Scout Flies" power cell
	FlyItem  string
	CellName string // display name of the free-7 cell location
}

// Rule is an immutable access predicate over a player's collection.
//
// Item is used by has (with Count, default 1). Items is used by has_all,
// has_any and count_of (with Count as the threshold). Orbs compares the
// orbs reachable in Level (empty for the whole world) against Count; when
// Prerequisite is non-zero that location must also be reachable.
// Operands is used by and, or and not.
type Rule struct {
	Kind         string
	Item         string
	Items        []string
	Count        int
	Level        string
	Prerequisite int64
	Operands     []Rule
}

// Intent is the parsed representation of an explorer command.
type Intent struct {
	Verb   string
	Object string
	Count  int
}

// Effect is a single atomic mutation of a collection.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after effects are applied or reachability changes.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single explorer step.
type Result struct {
	Effects []Effect
	Events  []Event
	Output  []string
}
