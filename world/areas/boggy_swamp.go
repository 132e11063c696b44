package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type boggySwamp struct{}

func (boggySwamp) Level() string { return "Boggy Swamp" }
func (boggySwamp) Hub() int      { return 2 }

func (boggySwamp) Build(c *Context) ([]graph.RegionID, error) {
	opts := c.Options
	flies := c.CanFreeScoutFlies()

	entrance := c.Region("Entrance", 23)
	c.Cells(entrance, rules.Always(), 36)
	c.Flies(entrance, flies, 43)

	first := c.Region("First Tether", 35)
	c.Cells(first, rules.Always(), 39)
	c.Flies(first, flies, 393259)

	second := c.Region("Second Tether", 25)
	c.Cells(second, rules.Always(), 40)
	c.Flies(second, flies, 65579)

	ambushFight := rules.When(!opts.BoggySwampAttacklessAmbush, c.CanFight())
	ambush := c.Region("Lurker Ambush", 20)
	c.Cells(ambush, ambushFight, 38)

	third := c.Region("Third Tether", 30)
	c.Cells(third, rules.Always(), 41)
	c.Caches(third, rules.Always(), 14507)
	c.Flies(third, flies, 262187)

	pad := c.Region("Flut Flut Pad", 10)
	c.Flies(pad, flies, 327723)

	course := c.Region("Flut Flut Course", 20)
	c.Cells(course, rules.Always(), 37)
	c.Flies(course, flies, 131115)

	fourth := c.Region("Fourth Tether", 25)
	c.Cells(fourth, rules.Always(), 42)
	c.Flies(fourth, flies, 196651)

	tarPit := c.Region("Last Tar Pit", 12)

	c.Connect(entrance, first, rules.Always())
	c.Connect(first, entrance, rules.Always())
	c.Connect(first, second, rules.Always())
	c.Connect(second, first, rules.Always())
	c.Connect(second, ambush, rules.Always())
	c.Connect(ambush, second, rules.Always())
	c.Connect(ambush, third, ambushFight)
	c.Connect(third, ambush, rules.Always())
	c.Connect(third, pad, rules.Always())
	c.Connect(pad, third, rules.Always())
	c.Connect(pad, course, unless(opts.BoggySwampFlutFlutSkip, rules.Has(FlutFlut), rules.HasAll(DoubleJump, JumpKick)))
	c.Connect(course, pad, rules.Always())
	c.Connect(pad, fourth, rules.Always())
	c.Connect(fourth, pad, rules.Always())
	c.Connect(fourth, tarPit, rules.Always())
	c.Connect(tarPit, entrance, rules.Always())

	c.LevelOrbsanity(entrance)
	return c.Created(), nil
}
