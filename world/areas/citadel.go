package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

// Citadel sub-areas the goals point at.
const (
	FinalBoss = "Final Boss"
	FinalDoor = "Final Door"
)

// CellsForDoor is the number of power cells the door behind the final
// boss needs.
const CellsForDoor = 100

type citadel struct{}

func (citadel) Level() string { return "Gol and Maia's Citadel" }
func (citadel) Hub() int      { return 3 }

func (citadel) Build(c *Context) ([]graph.RegionID, error) {
	flies := c.CanFreeScoutFlies()

	main := c.Region(MainArea, 45)
	c.Flies(main, flies, 91, 65627, 196699)

	blue := c.Region("Blue Sage's Machine", 35)
	c.Cells(blue, rules.Always(), 71)
	c.Specials(blue, rules.Always(), 71)
	c.Flies(blue, flies, 262235)

	red := c.Region("Red Sage's Machine", 40)
	c.Cells(red, rules.Always(), 72)
	c.Specials(red, rules.Always(), 72)
	c.Flies(red, flies, 393307)

	yellow := c.Region("Yellow Sage's Machine", 40)
	c.Cells(yellow, rules.Always(), 73)
	c.Specials(yellow, rules.Always(), 73)
	c.Flies(yellow, flies, 131163)

	tower := c.Region("Rotating Tower", 40)
	c.Cells(tower, rules.Always(), 70)
	c.Specials(tower, rules.Always(), 70)
	c.Flies(tower, flies, 327771)

	boss := c.Region(FinalBoss, 0)
	door := c.Region(FinalDoor, 0)
	c.Graph.MarkTarget(boss)
	c.Graph.MarkTarget(door)

	// Jumping lurkers guard the blue machine's platforms.
	c.Connect(main, blue, rules.Or(rules.Has(DoubleJump), c.CrouchJumps(), rules.Has(JumpKick)))
	c.Connect(blue, main, rules.Always())
	c.Connect(main, red, c.CanFight())
	c.Connect(red, main, rules.Always())
	// The launch pads ask for the widest jump.
	c.Connect(main, yellow, rules.HasAny(DoubleJump, JumpKick))
	c.Connect(yellow, main, rules.Always())

	c.Connect(main, tower, rules.CountOf(3, FreedBlueSage, FreedRedSage, FreedYellowSage))
	c.Connect(tower, main, rules.Always())
	c.Connect(tower, boss, rules.Has(FreedGreenSage))
	c.Connect(boss, door, rules.HasCount(PowerCell, CellsForDoor))

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
