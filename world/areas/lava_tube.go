package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type lavaTube struct{}

func (lavaTube) Level() string { return "Lava Tube" }
func (lavaTube) Hub() int      { return 3 }

func (lavaTube) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 50)
	c.Cells(main, rules.Always(), 89)
	c.Flies(main, rules.Always(), 90, 65626, 327770, 262234, 131162, 196698, 393306)

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
