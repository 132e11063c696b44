package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

// PlantBoss is the sub-area reached by defeating the dark eco plant.
const PlantBoss = "Temple (Plant Boss defeated)"

type forbiddenJungle struct{}

func (forbiddenJungle) Level() string { return "Forbidden Jungle" }
func (forbiddenJungle) Hub() int      { return 1 }

func (forbiddenJungle) Build(c *Context) ([]graph.RegionID, error) {
	opts := c.Options

	main := c.Region(MainArea, 25)
	// Reachable from the blue eco vent across the temple bridge.
	c.Flies(main, rules.Always(), 393223)

	machine := c.Region("Lurker Machine", 5)
	c.Cells(machine, c.CanFightOrRollJump(), 3)
	c.Cells(machine, rules.Always(), 9)
	c.Flies(machine, rules.Always(), 131079)

	river := c.Region("River", 42)
	c.Cells(river, rules.Always(), 5, 8)
	c.Flies(river, rules.Always(), 7, 196615)
	c.Specials(river, rules.Always(), 5)
	c.Caches(river, rules.Always(), 10369)

	// 12 orbs around the temple exit. The ones above it belong to the boss.
	exit := c.Region("Temple Exit", 12)
	c.Flies(exit, rules.When(!opts.ForbiddenJungleAttacklessSpiralStumpsFly, c.CanFreeScoutFlies()), 262151)

	exterior := c.Region("Temple Exterior", 10)
	c.Cells(exterior, rules.Always(), 4)
	c.Flies(exterior, rules.Always(), 327687, 65543)
	c.Specials(exterior, rules.Always(), 4)

	preBlue := c.Region("Temple Interior (Pre Blue Eco)", 17)
	c.Cells(preBlue, rules.Always(), 2)
	c.Specials(preBlue, rules.Always(), 2)

	postBlue := c.Region("Temple Interior (Post Blue Eco)", 29)

	// 5 orbs from the boss and 5 from leaving by the jump pad.
	boss := c.Region(PlantBoss, 10)
	c.Cells(boss, rules.Always(), 6)

	c.Connect(main, machine, rules.Always())
	c.Connect(main, river, rules.Always())
	c.Connect(main, exit, rules.Always())

	c.Connect(machine, main, rules.Always())
	c.Connect(machine, river, rules.Always())
	c.Connect(machine, exterior, rules.Always())

	c.Connect(river, main, rules.Always())
	c.Connect(river, machine, rules.Always())
	c.Connect(river, exit, rules.Always())
	c.Connect(river, exterior, rules.Always())

	c.Connect(exit, main, rules.Always())
	c.Connect(exit, river, rules.Always())
	c.Connect(exit, exterior, rules.Always())

	// A deload while falling past the elevator skips it.
	c.Connect(exterior, preBlue, unless(opts.ForbiddenJungleElevatorSkip, rules.Has(JungleElevator), rules.Has(JumpKick)))

	// A collision hole above the door leads to the boss.
	c.Connect(preBlue, postBlue, unless(opts.BoostedAndExtendedUppercuts,
		rules.Has(BlueEcoSwitch), rules.HasAll(Punch, PunchUppercut, JumpKick)))

	c.Connect(postBlue, boss, c.CanFight())
	c.Connect(boss, exit, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
