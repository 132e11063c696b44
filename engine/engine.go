// Package engine provides the Step() orchestrator of the logic explorer.
// It wires together parsing, name resolution, effects, reachability and
// events into a single command.
package engine

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/engine/effects"
	"github.com/nathoo/jaklogic/engine/events"
	"github.com/nathoo/jaklogic/engine/goal"
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/orbs"
	"github.com/nathoo/jaklogic/engine/parser"
	"github.com/nathoo/jaklogic/engine/reach"
	"github.com/nathoo/jaklogic/engine/resolve"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/save"
	"github.com/nathoo/jaklogic/engine/state"
	"github.com/nathoo/jaklogic/types"
	"github.com/nathoo/jaklogic/world"
)

// maxListed bounds how many names a single output line lists.
const maxListed = 12

// Engine holds a built world and the explorer's mutable item state.
type Engine struct {
	World      *world.World
	Items      *state.Collection
	RNG        *RNG
	Handlers   []events.Handler
	Session    string
	CommandLog []string
	Turn       int

	// FriendlyOptions applies the friendly limits to options read back
	// from a save.
	FriendlyOptions bool

	regionNames []string
	locByName   map[string]int64
	locNames    []string
}

// New creates an engine over w. The player starts with the world's
// starting inventory.
func New(w *world.World, seed int64) *Engine {
	e := &Engine{
		World:   w,
		Items:   state.New(),
		RNG:     NewRNG(seed),
		Session: save.NewSession(),

		FriendlyOptions: true,
	}
	e.index()
	for _, name := range w.StartingInventory() {
		e.Items.Collect(name, w.Player, 1)
	}
	e.Handlers = []events.Handler{
		{
			EventType: events.GoalReached,
			Effects:   []types.Effect{{Type: effects.Say, Params: map[string]any{"text": "Goal reached: " + w.Goal.Describe(w.Graph) + "."}}},
		},
		{
			EventType: events.GoalLost,
			Effects:   []types.Effect{{Type: effects.Say, Params: map[string]any{"text": "The goal is out of reach again."}}},
		},
	}
	return e
}

// index builds the name tables the resolver searches.
func (e *Engine) index() {
	g := e.World.Graph
	e.regionNames = e.regionNames[:0]
	for _, r := range g.Regions() {
		e.regionNames = append(e.regionNames, r.Name)
	}
	e.locByName = map[string]int64{}
	e.locNames = e.locNames[:0]
	for _, id := range g.Locations() {
		name := e.World.Defs.Locations[id].Name
		e.locByName[name] = id
		e.locNames = append(e.locNames, name)
	}
	sort.Strings(e.locNames)
}

// Names returns the names the object of a canonical verb can resolve to.
// Verbs without an object return nil.
func (e *Engine) Names(verb string) []string {
	switch verb {
	case parser.Give, parser.Remove:
		return e.World.Defs.ItemNames()
	case parser.Reach:
		return e.regionNames
	case parser.Check:
		return e.locNames
	case parser.Rule:
		names := make([]string, 0, len(e.locNames)+len(e.regionNames))
		return append(append(names, e.locNames...), e.regionNames...)
	case parser.Orbs, parser.Regions, parser.Locations:
		var names []string
		for _, lv := range e.World.Defs.LevelsUpTo(e.World.Hub) {
			names = append(names, lv.Name)
		}
		return names
	}
	return nil
}

// Player returns the player the engine explores for.
func (e *Engine) Player() int { return e.World.Player }

// Sweep returns the reachability of the current items.
func (e *Engine) Sweep() *reach.Result {
	return e.World.Eval.Sweep(e.Items, e.Player())
}

// Step processes one explorer command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 1. Parse input.
	intent := parser.Parse(input)

	// 2. Empty input.
	if intent.Verb == "" {
		result.Output = append(result.Output, "What do you want to know?")
		return result
	}

	// 3. Log the command.
	e.CommandLog = append(e.CommandLog, input)
	e.Turn++

	// 4. Dispatch on the verb.
	var out []string
	var err error
	switch intent.Verb {
	case parser.Give, parser.Remove:
		return e.mutate(intent)
	case parser.Reset:
		return e.reset()
	case parser.Reach:
		out, err = e.cmdReach(intent.Object)
	case parser.Check:
		out, err = e.cmdCheck(intent.Object)
	case parser.Orbs:
		out, err = e.cmdOrbs(intent.Object)
	case parser.Goal:
		out = e.GoalLines()
	case parser.Regions:
		out, err = e.cmdRegions(intent.Object)
	case parser.Locations:
		out, err = e.cmdLocations(intent.Object)
	case parser.Inventory:
		out = e.cmdInventory()
	case parser.Rule:
		out, err = e.cmdRule(intent.Object)
	case parser.Pool:
		out = e.cmdPool()
	case parser.Help:
		out = HelpLines()
	default:
		out = []string{fmt.Sprintf("I don't know how to %q. Type help for commands.", intent.Verb)}
	}
	if err != nil {
		out = []string{err.Error()}
	}
	result.Output = append(result.Output, out...)
	return result
}

// mutate gives or removes items and reports what became reachable or
// unreachable.
func (e *Engine) mutate(intent types.Intent) types.Result {
	name, err := resolve.Name(intent.Object, e.World.Defs.ItemNames(), "item")
	if err != nil {
		return types.Result{Output: []string{err.Error()}}
	}
	count := intent.Count
	if count == 0 {
		count = 1
	}

	eff := effects.Give(name, count)
	if intent.Verb == parser.Remove {
		eff = effects.Take(name, count)
	}
	result, changed := e.apply([]types.Effect{eff})
	if !changed {
		result.Output = append(result.Output, fmt.Sprintf("You hold no %s.", name))
		return result
	}
	line := fmt.Sprintf("%s: %d.", name, e.Items.Count(name, e.Player()))
	result.Output = append([]string{line}, result.Output...)
	return result
}

// reset drops every item and hands back the starting inventory.
func (e *Engine) reset() types.Result {
	effs := []types.Effect{{Type: effects.Reset}}
	for _, name := range e.World.StartingInventory() {
		effs = append(effs, effects.Give(name, 1))
	}
	result, _ := e.apply(effs)
	result.Output = append([]string{"Inventory reset."}, result.Output...)
	return result
}

// apply runs effects against the items, then diffs reachability and
// dispatches the resulting events once. changed is false when the effects
// emitted no event, in which case nothing else runs.
func (e *Engine) apply(effs []types.Effect) (types.Result, bool) {
	player := e.Player()
	before := e.Sweep()
	wasDone := e.World.Goal.Satisfied(e.World.Eval, e.Items, player)

	evts, output := effects.Apply(e.Items, player, effs)
	result := types.Result{Output: output, Effects: effs, Events: evts}
	if len(evts) == 0 {
		return result, false
	}

	after := e.Sweep()
	diff := events.Diff(e.World.Graph, before, after)
	diff = append(diff, events.GoalChange(wasDone, e.World.Goal.Satisfied(e.World.Eval, e.Items, player))...)
	result.Events = append(result.Events, diff...)
	result.Output = append(result.Output, e.summarize(diff)...)

	// Handler effects are applied but their events are not dispatched again.
	if extra := events.Dispatch(append(evts, diff...), e.Handlers, e.Items, player); len(extra) > 0 {
		evts2, output2 := effects.Apply(e.Items, player, extra)
		result.Effects = append(result.Effects, extra...)
		result.Events = append(result.Events, evts2...)
		result.Output = append(result.Output, output2...)
	}
	return result, true
}

// summarize renders reachability events as a few lines.
func (e *Engine) summarize(evts []types.Event) []string {
	var gained, lost []string
	locGained, locLost := 0, 0
	for _, ev := range evts {
		switch ev.Type {
		case events.RegionUnlocked:
			gained = append(gained, ev.Data["region"].(string))
		case events.RegionLost:
			lost = append(lost, ev.Data["region"].(string))
		case events.LocationUnlocked:
			locGained++
		case events.LocationLost:
			locLost++
		}
	}
	var out []string
	if len(gained) > 0 {
		out = append(out, "Now reachable: "+listNames(gained)+".")
	}
	if len(lost) > 0 {
		out = append(out, "No longer reachable: "+listNames(lost)+".")
	}
	if locGained > 0 {
		out = append(out, fmt.Sprintf("%d more location(s) in logic.", locGained))
	}
	if locLost > 0 {
		out = append(out, fmt.Sprintf("%d location(s) dropped out of logic.", locLost))
	}
	if len(out) == 0 {
		out = append(out, "Nothing new is reachable.")
	}
	return out
}

func (e *Engine) resolveRegion(query string) (graph.RegionID, error) {
	name, err := resolve.Name(query, e.regionNames, "region")
	if err != nil {
		return 0, err
	}
	id, _ := e.World.Graph.Lookup(name)
	return id, nil
}

func (e *Engine) resolveLocation(query string) (int64, error) {
	if n, err := strconv.ParseInt(strings.TrimSpace(query), 10, 64); err == nil {
		if _, ok := e.World.Graph.LocationRegion(n); ok {
			return n, nil
		}
	}
	name, err := resolve.Name(query, e.locNames, "location")
	if err != nil {
		return 0, err
	}
	return e.locByName[name], nil
}

// resolveLevel maps a query to a built level name; "" means every level.
func (e *Engine) resolveLevel(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", nil
	}
	var names []string
	for _, lv := range e.World.Defs.LevelsUpTo(e.World.Hub) {
		names = append(names, lv.Name)
	}
	if lv, ok := e.World.Defs.LevelByAbbrev(query); ok && lv.Hub <= e.World.Hub {
		return lv.Name, nil
	}
	return resolve.Name(query, names, "level")
}

func (e *Engine) locName(id int64) string {
	if loc, ok := e.World.Defs.Locations[id]; ok {
		return loc.Name
	}
	return strconv.FormatInt(id, 10)
}

func (e *Engine) cmdReach(query string) ([]string, error) {
	if query == "" {
		return []string{"Reach which region?"}, nil
	}
	id, err := e.resolveRegion(query)
	if err != nil {
		return nil, err
	}
	g := e.World.Graph
	if e.Sweep().CanReachRegion(id) {
		return []string{g.Name(id) + " is reachable."}, nil
	}
	out := []string{g.Name(id) + " is not reachable."}
	return append(out, e.entrances(id)...), nil
}

// entrances lists the edges into a region with their rules.
func (e *Engine) entrances(id graph.RegionID) []string {
	g := e.World.Graph
	res := e.Sweep()
	var out []string
	for _, r := range g.Regions() {
		for _, edge := range g.Exits(r.ID) {
			if edge.To != id {
				continue
			}
			mark := " "
			if res.CanReachRegion(edge.From) {
				mark = "*"
			}
			out = append(out, fmt.Sprintf("  %s from %s: %s", mark, g.Name(edge.From), rules.Describe(edge.Rule, e.locName)))
		}
	}
	return out
}

func (e *Engine) cmdCheck(query string) ([]string, error) {
	if query == "" {
		return []string{"Check which location?"}, nil
	}
	id, err := e.resolveLocation(query)
	if err != nil {
		return nil, err
	}
	g := e.World.Graph
	region, _ := g.LocationRegion(id)
	status := "in logic"
	if !e.Sweep().CanReachLocation(id) {
		status = "out of logic"
	}
	return []string{
		fmt.Sprintf("%s (%d) is %s.", e.locName(id), id, status),
		fmt.Sprintf("  region: %s", g.Name(region)),
		fmt.Sprintf("  needs: %s", rules.Describe(g.LocationRule(id), e.locName)),
	}, nil
}

func (e *Engine) cmdOrbs(query string) ([]string, error) {
	level, err := e.resolveLevel(query)
	if err != nil {
		return nil, err
	}
	res := e.Sweep()
	if level == "" {
		return []string{fmt.Sprintf("Reachable orbs: %d of %d (trades need %d).",
			res.ReachableOrbs(""), orbs.Total(e.World.Graph), e.World.TradeOrbs)}, nil
	}
	return []string{fmt.Sprintf("Reachable orbs in %s: %d of %d.",
		level, res.ReachableOrbs(level), orbs.LevelTotal(e.World.Graph, level))}, nil
}

// GoalLines describes the goal and whether it is reachable.
func (e *Engine) GoalLines() []string {
	w := e.World
	out := []string{"Goal: " + w.Goal.Describe(w.Graph) + "."}
	if w.Goal.Kind == goal.CountLocations {
		out = append(out, fmt.Sprintf("Progress: %d of %d.", goal.Progress(w.Goal, e.Sweep()), w.Goal.Count))
	}
	if w.Completion(e.Items) {
		return append(out, "The goal is reachable.")
	}
	return append(out, "The goal is not reachable yet.")
}

func (e *Engine) cmdRegions(query string) ([]string, error) {
	level, err := e.resolveLevel(query)
	if err != nil {
		return nil, err
	}
	g := e.World.Graph
	res := e.Sweep()
	var reached, blocked []string
	for _, r := range g.Regions() {
		if level != "" && r.Level != level {
			continue
		}
		if res.CanReachRegion(r.ID) {
			reached = append(reached, r.Name)
		} else {
			blocked = append(blocked, r.Name)
		}
	}
	out := []string{fmt.Sprintf("Regions reachable: %d of %d.", len(reached), len(reached)+len(blocked))}
	if level != "" || len(blocked) <= maxListed {
		if len(blocked) > 0 {
			out = append(out, "Blocked: "+listNames(blocked)+".")
		}
	}
	return out, nil
}

func (e *Engine) cmdLocations(query string) ([]string, error) {
	level, err := e.resolveLevel(query)
	if err != nil {
		return nil, err
	}
	res := e.Sweep()
	var reached, blocked []string
	for _, id := range e.World.Graph.Locations() {
		loc := e.World.Defs.Locations[id]
		if level != "" && loc.Level != level {
			continue
		}
		if res.CanReachLocation(id) {
			reached = append(reached, loc.Name)
		} else {
			blocked = append(blocked, loc.Name)
		}
	}
	out := []string{fmt.Sprintf("Locations in logic: %d of %d.", len(reached), len(reached)+len(blocked))}
	if level != "" && len(blocked) > 0 {
		out = append(out, "Out of logic: "+listNames(blocked)+".")
	}
	return out, nil
}

func (e *Engine) cmdInventory() []string {
	items := e.Items.Items(e.Player())
	if len(items) == 0 {
		return []string{"You hold nothing."}
	}
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name
		if n := items[name]; n > 1 {
			parts[i] = fmt.Sprintf("%s x%d", name, n)
		}
	}
	return []string{"You hold: " + strings.Join(parts, ", ") + "."}
}

func (e *Engine) cmdRule(query string) ([]string, error) {
	if query == "" {
		return []string{"Rule of which location or region?"}, nil
	}
	if id, err := e.resolveLocation(query); err == nil {
		return []string{fmt.Sprintf("%s needs %s.", e.locName(id), rules.Describe(e.World.Graph.LocationRule(id), e.locName))}, nil
	} else if !isNotFound(err) {
		return nil, err
	}
	id, err := e.resolveRegion(query)
	if err != nil {
		return nil, err
	}
	out := []string{e.World.Graph.Name(id) + " is entered:"}
	lines := e.entrances(id)
	if len(lines) == 0 {
		lines = []string{"  from the start."}
	}
	return append(out, lines...), nil
}

func (e *Engine) cmdPool() []string {
	// Draw from a copy so repeated listings show the same traps.
	pool := e.World.ItemPool(RestoreRNG(e.RNG.Seed(), e.RNG.Position()))
	counts := map[string]int{}
	for _, name := range pool {
		counts[name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	out := []string{fmt.Sprintf("Item pool: %d items for %d locations.", len(pool), len(e.World.Graph.Locations()))}
	for i, name := range names {
		if i == maxListed {
			out = append(out, fmt.Sprintf("  ... and %d more kinds.", len(names)-maxListed))
			break
		}
		out = append(out, fmt.Sprintf("  %4d  %s", counts[name], name))
	}
	return out
}

// Snapshot captures the session for saving.
func (e *Engine) Snapshot() *save.SaveData {
	return &save.SaveData{
		Session:     e.Session,
		Player:      e.Player(),
		Options:     e.World.Options,
		Items:       save.Capture(e.Items, e.Player()),
		RNGSeed:     e.RNG.Seed(),
		RNGPosition: e.RNG.Position(),
		CommandLog:  append([]string(nil), e.CommandLog...),
	}
}

// Restore replaces the session with saved data. The saved options are
// normalized first, so a save cannot lift the limits the host enforces.
// The world is rebuilt when the options or player differ from the current
// ones.
func (e *Engine) Restore(sd *save.SaveData) error {
	opts, err := config.Normalize(sd.Options, e.FriendlyOptions)
	if err != nil {
		return fmt.Errorf("engine: saved options: %w", err)
	}
	w := e.World
	w.Eval.Forget(e.Items)
	if sd.Player != w.Player || !reflect.DeepEqual(opts, w.Options) {
		nw, err := world.Build(w.Defs, opts, sd.Player)
		if err != nil {
			return fmt.Errorf("engine: rebuild world: %w", err)
		}
		e.World = nw
		e.index()
	}
	e.Items = state.New()
	save.ApplySave(e.Items, sd)
	e.RNG = RestoreRNG(sd.RNGSeed, sd.RNGPosition)
	e.Session = sd.Session
	e.CommandLog = append([]string(nil), sd.CommandLog...)
	e.Turn = len(e.CommandLog)
	return nil
}

// HelpLines lists the explorer commands.
func HelpLines() []string {
	return []string{
		"Explorer commands:",
		"  give <item> [n]        - Add items (also: add, get)",
		"  remove <item> [n]      - Take items away (also: rm, drop)",
		"  reach <region>         - Is a region reachable, and from where",
		"  check <location>       - Is a location in logic, and what it needs",
		"  rule <location|region> - Show the access rule",
		"  orbs [level]           - Reachable precursor orbs",
		"  regions [level]        - Reachable regions",
		"  locations [level]      - Locations in logic",
		"  goal                   - The completion goal and its state",
		"  inventory (i)          - Items held",
		"  reset                  - Back to the starting inventory",
		"  pool                   - The item pool for these options",
	}
}

func listNames(names []string) string {
	if len(names) > maxListed {
		return strings.Join(names[:maxListed], ", ") + fmt.Sprintf(" and %d more", len(names)-maxListed)
	}
	return strings.Join(names, ", ")
}

func isNotFound(err error) bool {
	var nf *resolve.NotFoundError
	return errors.As(err, &nf)
}
