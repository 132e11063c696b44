package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

type snowyMountain struct{}

func (snowyMountain) Level() string { return "Snowy Mountain" }
func (snowyMountain) Hub() int      { return 3 }

func (snowyMountain) Build(c *Context) ([]graph.RegionID, error) {
	opts := c.Options
	flies := c.CanFreeScoutFlies()
	fight := c.CanFight()
	fancy := c.canMoveFancy()
	blockerJumps := c.canJumpBlockers()
	smallJump := rules.HasAny(CrouchJump, DoubleJump)
	flut := rules.When(!opts.SnowyMountainFlutFlutSkip, rules.Has(FlutFlut))

	main := c.Region(MainArea, 0)
	c.Flies(main, flies, 65)

	glacier := c.Virtual("Glacier Lurkers")
	c.Cells(glacier, fight, 61)

	// Only the 8 orbs sitting on the blockers.
	blockers := c.Region("Precursor Blockers", 8)
	c.Cells(blockers, fight, 66)

	canyon := c.Region("Snowball Canyon", 28)

	frozen := c.Region("Frozen Box Cave", 12)
	c.Cells(frozen, rules.Has(YellowEcoSwitch), 67)
	c.Flies(frozen, rules.Or(rules.Has(YellowEcoSwitch), flies), 327745)

	crates := c.Region("Frozen Box Cave Orb Crates", 8)

	// Includes 6 orbs on the twin elevator ramp.
	rink := c.Region("Ice Skating Rink", 20)
	c.Flies(rink, flies, 131137)

	course := c.Region("Flut Flut Course", 15)
	c.Cells(course, flut, 63)
	c.Specials(course, flut, 63)

	fortExterior := c.Region("Fort Exterior", 20)
	c.Flies(fortExterior, flies, 65601, 393281)

	bunnyStart := c.Region("Bunny Cave (Start)", 10)
	bunnyEnd := c.Region("Bunny Cave (End)", 3)
	c.Cells(bunnyEnd, rules.Always(), 64)

	switchCave := c.Region("Yellow Eco Switch Cave", 4)
	c.Cells(switchCave, rules.Always(), 60)
	c.Specials(switchCave, rules.Always(), 60)

	fort := c.Region("Fort Interior (Main)", 19)

	// Top of the watch tower, the fly by blue eco, then down past the caches.
	fortCaches := c.Region("Fort Interior (Caches)", 51)
	c.Flies(fortCaches, rules.Always(), 196673)
	c.Caches(fortCaches, rules.Always(), 23348, 23349, 23350)

	fortBase := c.Region("Fort Interior (Base)", 0)
	c.Flies(fortBase, flies, 262209)

	courseEnd := c.Region("Fort Interior (Course End)", 2)
	c.Cells(courseEnd, rules.Always(), 62)

	c.Connect(main, blockers, blockerJumps)
	c.Connect(main, glacier, fight)
	c.Connect(main, canyon, rules.Or(rules.Has(RollJump), fancy))

	c.Connect(canyon, main, rules.Always())
	c.Connect(canyon, bunnyStart, rules.Always())
	c.Connect(canyon, fortExterior, rules.Always())
	c.Connect(canyon, frozen, fancy)

	c.Connect(frozen, canyon, fancy)
	c.Connect(frozen, crates, rules.And(rules.Has(YellowEcoSwitch), fancy))
	c.Connect(frozen, rink, fancy)
	c.Connect(crates, frozen, rules.Always())

	c.Connect(rink, frozen, fancy)
	c.Connect(rink, course, flut)
	c.Connect(rink, fortExterior, rules.Always())

	c.Connect(fortExterior, rink, rules.HasAny(DoubleJump, JumpKick))
	c.Connect(fortExterior, canyon, rules.Always())
	c.Connect(fortExterior, fort, rules.Has(SnowyFortGate))
	c.Connect(fortExterior, bunnyStart, rules.Always())
	c.Connect(fortExterior, switchCave, blockerJumps)

	c.Connect(fort, fortCaches, smallJump)
	c.Connect(fort, fortBase, smallJump)
	c.Connect(fort, courseEnd, rules.HasAny(PunchUppercut, DoubleJump))

	c.Connect(course, fortExterior, rules.Always())

	// A grab-less ledge sits among the lurkers.
	c.Connect(bunnyStart, bunnyEnd, rules.And(fight, smallJump))

	c.Connect(fortCaches, fort, rules.Always())
	c.Connect(fortBase, fort, rules.Always())
	c.Connect(courseEnd, fort, rules.Always())
	c.Connect(switchCave, fortExterior, rules.Always())
	c.Connect(bunnyEnd, fortExterior, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}

// canMoveFancy holds with an uppercut spin or a triple jump.
func (c *Context) canMoveFancy() types.Rule {
	return rules.Or(rules.HasAll(PunchUppercut, JumpKick), rules.HasAll(DoubleJump, JumpKick))
}

func (c *Context) canJumpBlockers() types.Rule {
	return rules.HasAny(DoubleJump, CrouchJump, CrouchUppercut, PunchUppercut, JumpDive)
}
