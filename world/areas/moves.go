package areas

import (
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

// Move and special item names used by the area rules.
const (
	Crouch         = "Crouch"
	CrouchJump     = "Crouch Jump"
	CrouchUppercut = "Crouch Uppercut"
	Roll           = "Roll"
	RollJump       = "Roll Jump"
	DoubleJump     = "Double Jump"
	JumpDive       = "Jump Dive"
	JumpKick       = "Jump Kick"
	Punch          = "Punch"
	PunchUppercut  = "Punch Uppercut"
	Kick           = "Kick"

	PowerCell        = "Power Cell"
	FishermansBoat   = "Fisherman's Boat"
	JungleElevator   = "Jungle Elevator"
	BlueEcoSwitch    = "Blue Eco Switch"
	FlutFlut         = "Flut Flut"
	WarriorsPontoons = "Warrior's Pontoons"
	SnowyGondola     = "Snowy Mountain Gondola"
	YellowEcoSwitch  = "Yellow Eco Switch"
	SnowyFortGate    = "Snowy Fort Gate"
	FreedBlueSage    = "Freed The Blue Sage"
	FreedRedSage     = "Freed The Red Sage"
	FreedYellowSage  = "Freed The Yellow Sage"
	FreedGreenSage   = "Freed The Green Sage"
)

// CanFight holds when Jak has any attack.
func (c *Context) CanFight() types.Rule {
	return rules.HasAny(JumpDive, JumpKick, Punch, Kick)
}

// CanFightOrRollJump is CanFight, widened to Roll Jump attacks when that
// trick is on.
func (c *Context) CanFightOrRollJump() types.Rule {
	if !c.Options.AttackWithRollJump {
		return c.CanFight()
	}
	return rules.Or(c.CanFight(), rules.HasAll(Roll, RollJump))
}

// CanFreeScoutFlies holds when Jak can break a scout fly box.
func (c *Context) CanFreeScoutFlies() types.Rule {
	r := rules.Or(rules.Has(JumpDive), rules.HasAll(Crouch, CrouchUppercut))
	if c.Options.PunchUppercutScoutFlies {
		r = rules.Or(r, rules.HasAll(Punch, PunchUppercut))
	}
	return r
}

// CrouchJumps holds with Crouch and Crouch Jump.
func (c *Context) CrouchJumps() types.Rule {
	return rules.HasAll(Crouch, CrouchJump)
}

// Uppercuts holds with Crouch and Crouch Uppercut.
func (c *Context) Uppercuts() types.Rule {
	return rules.HasAll(Crouch, CrouchUppercut)
}

// HighJump holds with any way to gain extra height.
func (c *Context) HighJump() types.Rule {
	return rules.Or(rules.Has(DoubleJump), c.CrouchJumps(), c.Uppercuts())
}

// unless returns base, or base widened with alt when trick is on.
func unless(trick bool, base, alt types.Rule) types.Rule {
	if trick {
		return rules.Or(base, alt)
	}
	return base
}
