package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type sentinelBeach struct{}

func (sentinelBeach) Level() string { return "Sentinel Beach" }
func (sentinelBeach) Hub() int      { return 1 }

func (sentinelBeach) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 128)
	c.Cells(main, rules.Always(), 18, 21, 22)
	c.Flies(main, c.CanFreeScoutFlies(), 327700, 20, 65556, 262164, 393236)
	c.Caches(main, rules.Always(), 12634, 12635)

	pelican := c.Region("Pelican", 0)
	c.Cells(pelican, unless(c.Options.SentinelBeachAttacklessPelican, c.CanFight(), rules.Has(BlueEcoSwitch)), 16)

	egg := c.Region("Flut Flut Egg", 0)
	c.Cells(egg, rules.Always(), 17)
	c.Specials(egg, rules.Always(), 17)

	harvesters := c.Region("Eco Harvesters", 0)
	c.Cells(harvesters, rules.Always(), 15)

	greenRidge := c.Region("Ridge Near Green Vents", 5)
	c.Flies(greenRidge, c.CanFreeScoutFlies(), 131092)

	blueRidge := c.Region("Ridge Near Blue Vent", 5)
	c.Flies(blueRidge, c.CanFreeScoutFlies(), 196628)

	cannon := c.Region("Cannon Tower", 12)
	c.Cells(cannon, unless(c.Options.AttacklessLurkerCannons, c.CanFight(), rules.Always()), 19)

	c.Connect(main, pelican, rules.Always())
	c.Connect(main, egg, c.CanFight())
	c.Connect(main, harvesters, c.CanFight())
	c.Connect(main, greenRidge, c.HighJump())
	c.Connect(main, blueRidge, c.HighJump())

	// The blue eco launcher carries Jak to the tower once the vent is on.
	tower := rules.Has(BlueEcoSwitch)
	if c.Options.SentinelBeachCannonTowerClimb {
		tower = rules.Or(tower, rules.Has(DoubleJump), rules.Has(JumpKick))
	}
	c.Connect(main, cannon, tower)

	for _, r := range []graph.RegionID{pelican, egg, harvesters, greenRidge, blueRidge, cannon} {
		c.Connect(r, main, rules.Always())
	}

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
