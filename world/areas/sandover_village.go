package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

type sandoverVillage struct{}

func (sandoverVillage) Level() string { return "Sandover Village" }
func (sandoverVillage) Hub() int      { return 1 }

func (sandoverVillage) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 26)
	c.Cells(main, rules.Always(), 10)
	c.Cells(main, c.Trade(0), 11, 12)
	c.Flies(main, c.CanFreeScoutFlies(), 262219, 327755, 131147, 65611, 196683)

	cache := c.Region("Orb Cache Cliff", 15)
	c.Caches(cache, rules.Always(), 10344)

	yakow := c.Region("Yakow Cliff", 3)
	c.Flies(yakow, c.CanFreeScoutFlies(), 75)

	oracle := c.Region("Oracle Platforms", 6)
	c.Cells(oracle, c.Trade(0), 13)
	c.Cells(oracle, c.Trade(c.Location(types.CategoryCell, 13)), 14)
	c.Flies(oracle, c.CanFreeScoutFlies(), 393291)

	// The cliff above the farmer needs a second jump, unless Jak climbs the
	// uneven rocks beside it.
	c.Connect(main, cache, rules.When(!c.Options.SandoverVillageCliffOrbCacheClimb,
		rules.Or(rules.Has(DoubleJump), c.CrouchJumps())))
	c.Connect(cache, main, rules.Always())

	c.Connect(main, yakow, c.HighJump())
	c.Connect(yakow, main, rules.Always())

	c.Connect(main, oracle, rules.Or(rules.HasAll(Roll, RollJump), rules.HasAll(DoubleJump, JumpKick)))
	c.Connect(oracle, main, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
