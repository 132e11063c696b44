package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

type volcanicCrater struct{}

func (volcanicCrater) Level() string { return "Volcanic Crater" }
func (volcanicCrater) Hub() int      { return 3 }

// Nothing in the crater is out of reach with running and jumping alone.
func (volcanicCrater) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 50)
	c.Cells(main, c.Trade(0), 96, 97, 98, 99, 100)
	c.Cells(main, c.Trade(c.Location(types.CategoryCell, 100)), 101)

	// Yellow eco carried from the spider cave and the goggles open this one.
	c.Cells(main, rules.Always(), 74)

	// No blue eco here, so every box is broken by hand.
	c.Flies(main, c.CanFreeScoutFlies(), 262221, 393293, 196685, 131149, 77, 65613, 327757)
	c.Specials(main, rules.Always(), 105)

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
