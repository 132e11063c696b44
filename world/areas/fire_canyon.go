package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type fireCanyon struct{}

func (fireCanyon) Level() string { return "Fire Canyon" }
func (fireCanyon) Hub() int      { return 2 }

// The canyon is one zoomer run; everything in it is picked up on the way.
func (fireCanyon) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 50)
	c.Cells(main, rules.Always(), 69)
	c.Flies(main, rules.Always(), 393284, 68, 65604, 196676, 131140, 262212, 327748)

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
