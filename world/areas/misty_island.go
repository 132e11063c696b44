package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type mistyIsland struct{}

func (mistyIsland) Level() string { return "Misty Island" }
func (mistyIsland) Hub() int      { return 1 }

func (mistyIsland) Build(c *Context) ([]graph.RegionID, error) {
	opts := c.Options
	flies := c.CanFreeScoutFlies()
	// Blue eco or explosive boxes break these fly boxes without attacks.
	attacklessFlies := rules.When(!opts.MistyIslandAttacklessScoutFlies, flies)

	main := c.Region(MainArea, 9)

	muse := c.Region("Muse Course", 21)
	c.Cells(muse, rules.Always(), 23)
	c.Flies(muse, attacklessFlies, 327708)

	zoomer := c.Region("Zoomer", 32)
	c.Cells(zoomer, rules.Always(), 27, 29)
	c.Flies(zoomer, rules.Always(), 393244)

	ship := c.Region("Ship", 10)
	c.Cells(ship, rules.Always(), 24)
	c.Flies(ship, flies, 131100)

	farSide := c.Region("Far Side", 16)

	farCliff := c.Region("Far Side Cliff", 5)
	c.Flies(farCliff, flies, 28)

	// Carrying blue eco to the cache needs the bone bridges broken.
	farCache := c.Region("Far Side Orb Cache", 15)
	c.Caches(farCache, rules.When(!opts.MistyIslandEarlyFarSideOrbCache, c.CanFight()), 11072)

	barrels := c.Region("Barrel Course", 10)
	c.Flies(barrels, attacklessFlies, 196636)

	// 14 orbs in boxes only the cannon breaks.
	cannon := c.Region("Cannon", 14)
	c.Cells(cannon, rules.When(!opts.AttacklessLurkerCannons, c.CanFight()), 26)

	upper := c.Region("Upper Arena Approach", 6)
	c.Flies(upper, attacklessFlies, 65564, 262172)

	lower := c.Region("Lower Arena Approach", 7)
	c.Cells(lower, rules.Always(), 30)

	arena := c.Region("Arena", 5)
	c.Cells(arena, rules.When(!opts.MistyIslandArenaFightSkip, c.CanFight()), 25)

	c.Connect(main, muse, rules.Always())
	c.Connect(main, zoomer, rules.Always())
	c.Connect(main, ship, rules.Always())
	c.Connect(main, lower, rules.Always())
	c.Connect(main, upper, c.CanFight())

	c.Connect(muse, main, rules.Always())
	// The zoomer pad is only low enough for a crouch jump.
	c.Connect(zoomer, main, c.CrouchJumps())

	c.Connect(ship, main, rules.Always())
	c.Connect(ship, farSide, rules.Always())
	c.Connect(ship, barrels, rules.Always())

	c.Connect(farSide, ship, rules.Always())
	c.Connect(farSide, arena, rules.Always())
	c.Connect(farSide, farCliff, rules.Or(rules.Has(JumpDive), c.CrouchJumps()))
	c.Connect(farSide, farCache, c.CanFight())

	c.Connect(farCliff, farSide, rules.Always())

	c.Connect(barrels, cannon, rules.Always())

	c.Connect(cannon, barrels, rules.Always())
	c.Connect(cannon, arena, rules.Always())
	c.Connect(cannon, upper, rules.Always())
	if opts.MistyIslandFarSideCliffSeesawSkip {
		c.Connect(cannon, farCliff, rules.Always())
	}

	c.Connect(upper, lower, rules.Always())
	c.Connect(upper, arena, rules.Always())

	c.Connect(lower, upper, c.CrouchJumps())
	c.Connect(lower, arena, c.CanFight())

	c.Connect(arena, lower, rules.Always())
	c.Connect(arena, farSide, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
