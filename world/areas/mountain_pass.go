package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

// Race is the Mountain Pass sub-area that leads on to the crater.
const Race = "Race"

type mountainPass struct{}

func (mountainPass) Level() string { return "Mountain Pass" }
func (mountainPass) Hub() int      { return 3 }

func (mountainPass) Build(c *Context) ([]graph.RegionID, error) {
	opts := c.Options

	main := c.Region(MainArea, 0)
	c.Cells(main, rules.When(opts.RequirePunchForKlaww, rules.Has(Punch)), 86)

	race := c.Region(Race, 50)
	c.Cells(race, rules.Always(), 87)
	c.Flies(race, rules.Always(), 88, 65624, 131160, 196696, 262232, 327768, 393304)

	// The switch in the snow clears the rocks over the shortcut.
	shortcut := c.Region("Shortcut", 0)
	c.Cells(shortcut, rules.Always(), 110)

	c.Connect(main, race, rules.When(!opts.KlawwBoulderSkip, c.CanFight()))
	c.Connect(race, main, rules.Always())
	c.Connect(race, shortcut, rules.Has(YellowEcoSwitch))
	c.Connect(shortcut, race, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
