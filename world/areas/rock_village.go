package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

// Rock Village sub-areas other levels connect to.
const (
	PontoonBridge = "Pontoon Bridge"
	KlawwsCliff   = "Klaww's Cliff"
)

type rockVillage struct{}

func (rockVillage) Level() string { return "Rock Village" }
func (rockVillage) Hub() int      { return 2 }

func (rockVillage) Build(c *Context) ([]graph.RegionID, error) {
	opts := c.Options

	// Also covers the shore around the city; swimming and single jumps do.
	main := c.Region(MainArea, 23)
	c.Cells(main, c.Trade(0), 31, 32, 33, 34)
	c.Cells(main, c.Trade(c.Location(types.CategoryCell, 34)), 35)
	// Running with the nearby blue eco breaks these two.
	c.Flies(main, rules.Always(), 196684, 262220)
	c.Flies(main, c.CanFreeScoutFlies(), 76, 131148, 65612, 327756)
	c.Specials(main, rules.Always(), 33)

	rollJump := rules.HasAll(Roll, RollJump)
	cache := c.Region("Orb Cache", 20)
	c.Caches(cache, rules.When(!opts.RockVillageEarlyOrbCache, rollJump), 10945)

	// Yellow eco from the swamp breaks this box with no extra moves.
	bridge := c.Region(PontoonBridge, 2)
	c.Flies(bridge, rules.Always(), 393292)

	// Orbs off the pontoons' path.
	high := c.Region("Pontoon Bridge High Orbs", 5)

	cliff := c.Region(KlawwsCliff, 0)

	c.Connect(main, cache, rules.When(!opts.RockVillageEarlyOrbCache, rollJump))
	c.Connect(cache, main, rules.Always())

	pontoons := rules.When(!opts.RockVillagePontoonSkip, rules.Has(WarriorsPontoons))
	c.Connect(main, bridge, pontoons)
	c.Connect(bridge, main, pontoons)

	c.Connect(bridge, high, rules.Or(rules.Has(WarriorsPontoons), rules.Has(DoubleJump)))
	c.Connect(high, bridge, rules.Always())

	// Out of bounds twice around the boulder lands Jak in front of Klaww.
	c.Connect(bridge, cliff, rules.When(!opts.KlawwCliffClimb, rules.Or(
		rules.Has(DoubleJump),
		c.CrouchJumps(),
		rules.HasAll(Crouch, CrouchUppercut, JumpKick),
	)))
	c.Connect(cliff, bridge, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
