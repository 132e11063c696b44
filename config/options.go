// Package config loads the player options that shape a world and the
// host settings of the process.
package config

// Completion conditions.
const (
	CrossFireCanyon       = "cross_fire_canyon"
	DefeatDarkEcoPlant    = "defeat_dark_eco_plant"
	DefeatKlaww           = "defeat_klaww"
	CrossMountainPass     = "cross_mountain_pass"
	CrossLavaTube         = "cross_lava_tube"
	DefeatGolAndMaia      = "defeat_gol_and_maia"
	Open100CellDoor       = "open_100_cell_door"
	CompleteNumberOfTasks = "complete_number_of_tasks"
)

// completionHubs maps each completion condition to the last hub the world
// needs to contain.
var completionHubs = map[string]int{
	DefeatDarkEcoPlant:    1,
	CrossFireCanyon:       2,
	DefeatKlaww:           2,
	CrossMountainPass:     3,
	CrossLavaTube:         3,
	DefeatGolAndMaia:      3,
	Open100CellDoor:       3,
	CompleteNumberOfTasks: 3,
}

// Hubs returns how many hubs a completion condition needs, and false for
// an unknown condition.
func Hubs(condition string) (int, bool) {
	n, ok := completionHubs[condition]
	return n, ok
}

// Options is the full set of player choices.
type Options struct {
	EnableMoveRandomizer      bool   `yaml:"enable_move_randomizer" json:"enable_move_randomizer"`
	EnableOrbsanity           string `yaml:"enable_orbsanity" json:"enable_orbsanity"`
	GlobalOrbsanityBundleSize int    `yaml:"global_orbsanity_bundle_size" json:"global_orbsanity_bundle_size"`
	LevelOrbsanityBundleSize  int    `yaml:"level_orbsanity_bundle_size" json:"level_orbsanity_bundle_size"`

	FireCanyonCellCount     int  `yaml:"fire_canyon_cell_count" json:"fire_canyon_cell_count"`
	MountainPassCellCount   int  `yaml:"mountain_pass_cell_count" json:"mountain_pass_cell_count"`
	LavaTubeCellCount       int  `yaml:"lava_tube_cell_count" json:"lava_tube_cell_count"`
	EnableOrderedCellCounts bool `yaml:"enable_ordered_cell_counts" json:"enable_ordered_cell_counts"`
	RequirePunchForKlaww    bool `yaml:"require_punch_for_klaww" json:"require_punch_for_klaww"`

	CitizenOrbTradeAmount int `yaml:"citizen_orb_trade_amount" json:"citizen_orb_trade_amount"`
	OracleOrbTradeAmount  int `yaml:"oracle_orb_trade_amount" json:"oracle_orb_trade_amount"`

	FillerPowerCellsReplacedWithTraps int            `yaml:"filler_power_cells_replaced_with_traps" json:"filler_power_cells_replaced_with_traps"`
	FillerOrbBundlesReplacedWithTraps int            `yaml:"filler_orb_bundles_replaced_with_traps" json:"filler_orb_bundles_replaced_with_traps"`
	TrapEffectDuration                int            `yaml:"trap_effect_duration" json:"trap_effect_duration"`
	TrapWeights                       map[string]int `yaml:"trap_weights" json:"trap_weights"`

	CompletionCondition string `yaml:"jak_completion_condition" json:"jak_completion_condition"`
	CompletionTaskCount int    `yaml:"completion_task_count" json:"completion_task_count"`

	Tricks `yaml:",inline"`
}

// Tricks are toggles that let logic expect techniques beyond the intended
// route.
type Tricks struct {
	BoostedAndExtendedUppercuts              bool `yaml:"boosted_and_extended_uppercuts" json:"boosted_and_extended_uppercuts"`
	PunchUppercutScoutFlies                  bool `yaml:"punch_uppercut_scout_flies" json:"punch_uppercut_scout_flies"`
	AttackWithRollJump                       bool `yaml:"attack_with_roll_jump" json:"attack_with_roll_jump"`
	GeyserRockCliffClimb                     bool `yaml:"geyser_rock_cliff_climb" json:"geyser_rock_cliff_climb"`
	SandoverVillageCliffOrbCacheClimb        bool `yaml:"sandover_village_cliff_orb_cache_climb" json:"sandover_village_cliff_orb_cache_climb"`
	SentinelBeachAttacklessPelican           bool `yaml:"sentinel_beach_attackless_pelican" json:"sentinel_beach_attackless_pelican"`
	SentinelBeachCannonTowerClimb            bool `yaml:"sentinel_beach_cannon_tower_climb" json:"sentinel_beach_cannon_tower_climb"`
	ForbiddenJungleElevatorSkip              bool `yaml:"forbidden_jungle_elevator_skip" json:"forbidden_jungle_elevator_skip"`
	ForbiddenJungleAttacklessSpiralStumpsFly bool `yaml:"forbidden_jungle_attackless_spiral_stumps_scout_fly" json:"forbidden_jungle_attackless_spiral_stumps_scout_fly"`
	MistyIslandEarlyFarSideOrbCache          bool `yaml:"misty_island_early_far_side_orb_cache" json:"misty_island_early_far_side_orb_cache"`
	MistyIslandAttacklessScoutFlies          bool `yaml:"misty_island_attackless_scout_flies" json:"misty_island_attackless_scout_flies"`
	MistyIslandArenaFightSkip                bool `yaml:"misty_island_arena_fight_skip" json:"misty_island_arena_fight_skip"`
	MistyIslandFarSideCliffSeesawSkip        bool `yaml:"misty_island_far_side_cliff_seesaw_skip" json:"misty_island_far_side_cliff_seesaw_skip"`
	AttacklessLurkerCannons                  bool `yaml:"attackless_lurker_cannons" json:"attackless_lurker_cannons"`
	RockVillageEarlyOrbCache                 bool `yaml:"rock_village_early_orb_cache" json:"rock_village_early_orb_cache"`
	RockVillagePontoonSkip                   bool `yaml:"rock_village_pontoon_skip" json:"rock_village_pontoon_skip"`
	KlawwCliffClimb                          bool `yaml:"klaww_cliff_climb" json:"klaww_cliff_climb"`
	KlawwBoulderSkip                         bool `yaml:"klaww_boulder_skip" json:"klaww_boulder_skip"`
	BoggySwampAttacklessAmbush               bool `yaml:"boggy_swamp_attackless_ambush" json:"boggy_swamp_attackless_ambush"`
	BoggySwampFlutFlutSkip                   bool `yaml:"boggy_swamp_flut_flut_skip" json:"boggy_swamp_flut_flut_skip"`
	LostPrecursorCitySingleJumpSlideTube     bool `yaml:"lost_precursor_city_single_jump_slide_tube_climb" json:"lost_precursor_city_single_jump_slide_tube_climb"`
	SnowyMountainFlutFlutSkip                bool `yaml:"snowy_mountain_flut_flut_skip" json:"snowy_mountain_flut_flut_skip"`
}

// Defaults returns the default options.
func Defaults() Options {
	return Options{
		EnableOrbsanity:           "off",
		GlobalOrbsanityBundleSize: 20,
		LevelOrbsanityBundleSize:  25,
		FireCanyonCellCount:       20,
		MountainPassCellCount:     45,
		LavaTubeCellCount:         72,
		EnableOrderedCellCounts:   true,
		RequirePunchForKlaww:      true,
		CitizenOrbTradeAmount:     90,
		OracleOrbTradeAmount:      120,
		TrapEffectDuration:        30,
		CompletionCondition:       DefeatGolAndMaia,
		CompletionTaskCount:       75,
	}
}

// OrbsanityBundleSize returns the bundle size of the selected orbsanity
// mode, or 0 when orbsanity is off.
func (o Options) OrbsanityBundleSize() int {
	switch o.EnableOrbsanity {
	case "per_level":
		return o.LevelOrbsanityBundleSize
	case "global":
		return o.GlobalOrbsanityBundleSize
	}
	return 0
}
