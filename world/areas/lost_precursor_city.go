package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type lostPrecursorCity struct{}

func (lostPrecursorCity) Level() string { return "Lost Precursor City" }
func (lostPrecursorCity) Hub() int      { return 2 }

func (lostPrecursorCity) Build(c *Context) ([]graph.RegionID, error) {
	flies := c.CanFreeScoutFlies()

	first := c.Region("First Room", 35)
	c.Cells(first, rules.Always(), 44)
	c.Flies(first, flies, 262193, 131121)

	vent := c.Region("First Room Orb Vent", 15)

	second := c.Region("Second Room", 40)
	c.Cells(second, rules.Always(), 45)
	c.Flies(second, flies, 393265, 196657, 49, 65585)

	quick := c.Region("Quick Platforms", 20)
	c.Cells(quick, rules.Always(), 48)
	c.Flies(quick, flies, 327729)

	center := c.Region("Center Of Complex", 20)
	c.Cells(center, rules.Always(), 51)

	helix := c.Region("Helix Room", 40)
	c.Cells(helix, rules.Always(), 46)
	c.Caches(helix, rules.Always(), 14838)

	capsule := c.Region("Capsule Chamber", 20)
	c.Cells(capsule, rules.Always(), 47)

	slide := c.Region("Sunken Slide", 10)
	c.Cells(slide, rules.When(!c.Options.LostPrecursorCitySingleJumpSlideTube,
		rules.Or(rules.Has(DoubleJump), c.CrouchJumps())), 50)

	c.Connect(first, vent, rules.Or(rules.Has(DoubleJump), c.CrouchJumps()))
	c.Connect(vent, first, rules.Always())
	c.Connect(first, second, rules.Always())
	c.Connect(second, first, rules.Always())
	c.Connect(second, quick, rules.Always())
	c.Connect(quick, center, rules.Always())
	c.Connect(center, second, rules.Always())
	c.Connect(center, helix, rules.Always())
	// The dark eco rises behind Jak all the way up the helix.
	c.Connect(helix, capsule, rules.Or(rules.Has(DoubleJump), rules.Has(JumpKick), c.CrouchJumps()))
	c.Connect(helix, center, rules.Always())
	c.Connect(capsule, slide, rules.Always())
	c.Connect(slide, first, rules.Always())

	c.LevelOrbsanity(first)
	return c.Created(), nil
}
