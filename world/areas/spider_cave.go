package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

type spiderCave struct{}

func (spiderCave) Level() string { return "Spider Cave" }
func (spiderCave) Hub() int      { return 3 }

func (spiderCave) Build(c *Context) ([]graph.RegionID, error) {
	flies := c.CanFreeScoutFlies()

	main := c.Region("Main Cave", 30)
	c.Cells(main, rules.Always(), 78)
	c.Flies(main, flies, 327765, 393301, 196693, 131157)

	// The crystals are spread over every cave; the cell is awarded once
	// the last one breaks.
	crystals := c.Virtual("Dark Crystals")
	c.Cells(crystals, rules.Always(), 79)

	dark := c.Region("Dark Cave", 50)
	c.Cells(dark, rules.Always(), 80)
	c.Flies(dark, flies, 262229)

	robot := c.Region("Robot Cave", 40)
	c.Flies(robot, flies, 85)

	scaffolding := c.Region("Robot Scaffolding", 30)
	c.Cells(scaffolding, rules.Always(), 81)
	c.Flies(scaffolding, flies, 65621)

	poles := c.Region("Pole Course", 15)
	c.Cells(poles, rules.Always(), 82)

	tunnel := c.Region("Spider Tunnel", 20)
	c.Cells(tunnel, rules.Always(), 83)

	platforms := c.Region("Precursor Platforms", 15)
	c.Cells(platforms, rules.Always(), 84)

	c.Connect(main, dark, c.HighJump())
	c.Connect(dark, main, rules.Always())
	c.Connect(main, robot, rules.Always())
	c.Connect(robot, main, rules.Always())
	c.Connect(robot, scaffolding, rules.Or(rules.Has(DoubleJump), rules.HasAll(Roll, RollJump)))
	c.Connect(scaffolding, robot, rules.Always())
	c.Connect(scaffolding, poles, rules.Or(rules.Has(DoubleJump), rules.Has(JumpKick)))
	c.Connect(poles, scaffolding, rules.Always())
	c.Connect(robot, tunnel, rules.Always())
	c.Connect(tunnel, robot, rules.Always())
	c.Connect(tunnel, platforms, c.HighJump())
	c.Connect(platforms, tunnel, rules.Always())

	// The last crystals sit at the top of the robot and deep in the dark cave.
	c.Connect(scaffolding, crystals, rules.Trade(0, c.Location(types.CategoryCell, 80)))

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
