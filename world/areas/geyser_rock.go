package areas

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
)

type geyserRock struct{}

func (geyserRock) Level() string { return "Geyser Rock" }
func (geyserRock) Hub() int      { return 1 }

func (geyserRock) Build(c *Context) ([]graph.RegionID, error) {
	main := c.Region(MainArea, 50)
	c.Cells(main, rules.Always(), 92, 93)
	c.Flies(main, c.CanFreeScoutFlies(), 95, 327775, 393311, 65631, 262239, 131167, 196703)

	cliff := c.Region("Cliff", 0)
	c.Cells(cliff, rules.Always(), 94)

	c.Connect(main, cliff, rules.When(!c.Options.GeyserRockCliffClimb, c.HighJump()))
	c.Connect(cliff, main, rules.Always())

	c.LevelOrbsanity(main)
	return c.Created(), nil
}
