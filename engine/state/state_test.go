package state

import (
	"sync"
	"testing"
)

func TestCollect_Count(t *testing.T) {
	c := New()
	c.Collect("Power Cell", 1, 3)
	c.Collect("Power Cell", 1, 2)
	c.Collect("Power Cell", 2, 1)

	if got := c.Count("Power Cell", 1); got != 5 {
		t.Errorf("Count(player 1) = %d, want 5", got)
	}
	if got := c.Count("Power Cell", 2); got != 1 {
		t.Errorf("Count(player 2) = %d, want 1", got)
	}
	if got := c.Count("Punch", 1); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
}

func TestCollect_NonPositive(t *testing.T) {
	c := New()
	c.Collect("Punch", 1, 0)
	c.Collect("Punch", 1, -2)
	if c.Version() != 0 {
		t.Errorf("Version = %d after no-op collects, want 0", c.Version())
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Collect("Power Cell", 1, 3)

	if got := c.Remove("Power Cell", 1, 2); got != 2 {
		t.Errorf("Remove = %d, want 2", got)
	}
	if got := c.Remove("Power Cell", 1, 5); got != 1 {
		t.Errorf("Remove past zero = %d, want 1", got)
	}
	if got := c.Remove("Power Cell", 1, 1); got != 0 {
		t.Errorf("Remove from empty = %d, want 0", got)
	}
	if names := c.Names(1); len(names) != 0 {
		t.Errorf("Names after removing all = %v", names)
	}
}

func TestHas(t *testing.T) {
	c := New()
	c.Collect("Power Cell", 1, 19)

	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"below", 20, false},
		{"exact", 19, true},
		{"one", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Has("Power Cell", 1, tt.count); got != tt.want {
				t.Errorf("Has(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
	c.Collect("Power Cell", 1, 1)
	if !c.Has("Power Cell", 1, 20) {
		t.Error("Has(20) = false after the 20th cell")
	}
}

func TestHasAllAny(t *testing.T) {
	c := New()
	c.Collect("Punch", 1, 1)

	if c.HasAll([]string{"Punch", "Kick"}, 1) {
		t.Error("HasAll with one missing = true")
	}
	if !c.HasAll(nil, 1) {
		t.Error("HasAll(empty) = false, want true")
	}
	if !c.HasAny([]string{"Kick", "Punch"}, 1) {
		t.Error("HasAny = false")
	}
	if c.HasAny(nil, 1) {
		t.Error("HasAny(empty) = true, want false")
	}
}

func TestHasCountOf(t *testing.T) {
	c := New()
	sages := []string{"Freed The Blue Sage", "Freed The Red Sage", "Freed The Yellow Sage"}
	c.Collect(sages[0], 1, 1)
	c.Collect(sages[2], 1, 1)

	if !c.HasCountOf(sages, 2, 1) {
		t.Error("HasCountOf(2) = false")
	}
	if c.HasCountOf(sages, 3, 1) {
		t.Error("HasCountOf(3) = true")
	}
	if !c.HasCountOf(sages, 0, 1) {
		t.Error("HasCountOf(0) = false")
	}
}

func TestVersion(t *testing.T) {
	c := New()
	v0 := c.Version()
	c.Collect("Roll", 1, 1)
	v1 := c.Version()
	if v1 == v0 {
		t.Error("Collect did not bump version")
	}
	c.Remove("Roll", 1, 1)
	if c.Version() == v1 {
		t.Error("Remove did not bump version")
	}
}

func TestClone_Independent(t *testing.T) {
	c := New()
	c.Collect("Roll", 1, 1)
	cp := c.Clone()
	cp.Collect("Roll Jump", 1, 1)

	if c.Has("Roll Jump", 1, 1) {
		t.Error("clone mutation leaked into original")
	}
	if !cp.Has("Roll", 1, 1) {
		t.Error("clone lost original items")
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.Collect("Roll", 1, 1)
	c.Collect("Roll", 2, 1)
	c.Reset(1)
	if c.Has("Roll", 1, 1) || !c.Has("Roll", 2, 1) {
		t.Error("Reset touched the wrong player")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Collect("Power Cell", 1, 1)
				_ = c.Has("Power Cell", 1, 50)
			}
		}()
	}
	wg.Wait()
	if got := c.Count("Power Cell", 1); got != 800 {
		t.Errorf("Count = %d, want 800", got)
	}
}
