// Package state holds the mutable per-player item collections the access
// rules are evaluated against.
package state

import (
	"sort"
	"sync"
)

// Collection counts the items each player has collected. It is the host
// state the access rules query. Every mutation bumps Version so cached
// reachability results can be invalidated.
type Collection struct {
	mu      sync.RWMutex
	counts  map[int]map[string]int
	version uint64
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{counts: map[int]map[string]int{}}
}

// Collect adds n copies of an item to a player. n <= 0 is a no-op.
func (c *Collection) Collect(item string, player, n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.counts[player]
	if m == nil {
		m = map[string]int{}
		c.counts[player] = m
	}
	m[item] += n
	c.version++
}

// Remove takes up to n copies of an item away from a player and returns
// how many were removed.
func (c *Collection) Remove(item string, player, n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	held := c.counts[player][item]
	if n > held {
		n = held
	}
	if n <= 0 {
		return 0
	}
	if held == n {
		delete(c.counts[player], item)
	} else {
		c.counts[player][item] = held - n
	}
	c.version++
	return n
}

// Count returns how many copies of an item a player holds.
func (c *Collection) Count(item string, player int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[player][item]
}

// Has reports whether a player holds at least count copies of an item.
func (c *Collection) Has(item string, player, count int) bool {
	return c.Count(item, player) >= count
}

// HasAll reports whether a player holds every item.
func (c *Collection) HasAll(items []string, player int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range items {
		if c.counts[player][it] < 1 {
			return false
		}
	}
	return true
}

// HasAny reports whether a player holds at least one of the items.
func (c *Collection) HasAny(items []string, player int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range items {
		if c.counts[player][it] > 0 {
			return true
		}
	}
	return false
}

// HasCountOf reports whether a player holds at least n distinct items
// of the set. It stops as soon as the threshold is met.
func (c *Collection) HasCountOf(items []string, n, player int) bool {
	if n <= 0 {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	found := 0
	for _, it := range items {
		if c.counts[player][it] > 0 {
			found++
			if found >= n {
				return true
			}
		}
	}
	return false
}

// Version returns the mutation counter.
func (c *Collection) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Items returns a copy of a player's item counts.
func (c *Collection) Items(player int) map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int, len(c.counts[player]))
	for k, v := range c.counts[player] {
		out[k] = v
	}
	return out
}

// Names returns the names of the items a player holds, sorted.
func (c *Collection) Names(player int) []string {
	items := c.Items(player)
	out := make([]string, 0, len(items))
	for k := range items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the collection.
func (c *Collection) Clone() *Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := New()
	for p, m := range c.counts {
		cp := make(map[string]int, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out.counts[p] = cp
	}
	out.version = c.version
	return out
}

// Reset removes every item of a player.
func (c *Collection) Reset(player int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.counts[player]) == 0 {
		return
	}
	delete(c.counts, player)
	c.version++
}
