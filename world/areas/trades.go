package areas

import (
	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/engine/orbs"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/types"
)

// Citizen and oracle trades per hub: Sandover, Rock Village, the crater.
var (
	citizenTradesByHub = [...]int{1: 2, 2: 3, 3: 4}
	oracleTradesByHub  = [...]int{1: 2, 2: 2, 3: 2}
)

// TradeOrbs returns the orbs every trade in hubs 1..hub needs together.
// With all three hubs it is the options' full trade total.
func TradeOrbs(opts config.Options, hub int) int {
	citizen, oracle := 0, 0
	for h := 1; h <= hub && h < len(citizenTradesByHub); h++ {
		citizen += citizenTradesByHub[h]
		oracle += oracleTradesByHub[h]
	}
	return citizen*opts.CitizenOrbTradeAmount + oracle*opts.OracleOrbTradeAmount
}

// Trade returns the rule of an orb trade. Without orbsanity a trade needs
// enough reachable orbs to pay for every trade of the world. With
// orbsanity the orbs are items, so it needs enough bundles instead.
// prerequisite, when non-zero, is the trade that must come first.
func (c *Context) Trade(prerequisite int64) types.Rule {
	total := c.TradeOrbs
	if total == 0 {
		total = c.Options.TradeTotal()
	}
	size := c.Options.OrbsanityBundleSize()
	if size == 0 {
		return rules.Trade(total, prerequisite)
	}
	r := rules.HasCount(tables.BundleItemName(size), orbs.BundlesFor(total, size))
	if prerequisite != 0 {
		r = rules.And(r, rules.Trade(0, prerequisite))
	}
	return r
}
