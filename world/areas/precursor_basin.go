package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

type precursorBasin struct{}

func (precursorBasin) Level() string { return "Precursor Basin" }
func (precursorBasin) Hub() int      { return 2 }

func (precursorBasin) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 200)
	c.Cells(main, rules.Always(), 52, 53, 54, 55, 56, 58)
	c.Flies(main, rules.Always(), 196665, 393273, 131129, 65593, 57, 262201, 327737)

	// The blue rings appear once the purple course is done.
	blue := c.Virtual("Blue Rings")
	c.Cells(blue, rules.Always(), 59)
	c.Connect(main, blue, rules.Trade(0, c.Location(types.CategoryCell, 58)))
	c.Connect(blue, main, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
