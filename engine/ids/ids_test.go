package ids

import (
	"errors"
	"testing"
)

func TestCells_RoundTrip(t *testing.T) {
	for _, native := range []int{0, 1, 92, 101, 1023} {
		global, err := Cells.ToGlobal(native)
		if err != nil {
			t.Fatalf("ToGlobal(%d): %v", native, err)
		}
		if global != Base+int64(native) {
			t.Errorf("ToGlobal(%d) = %d, want %d", native, global, Base+int64(native))
		}
		back, err := Cells.ToNative(global)
		if err != nil {
			t.Fatalf("ToNative(%d): %v", global, err)
		}
		if back != native {
			t.Errorf("round trip %d = %d", native, back)
		}
	}
}

func TestScoutFlies_PackedRoundTrip(t *testing.T) {
	// Every fly in the game: indices 0..6 on each free-7 cell.
	cells := []int{95, 75, 7, 20, 28, 68, 76, 57, 49, 43, 88, 77, 85, 65, 90, 91}
	seen := map[int64]int{}
	for _, cell := range cells {
		for idx := 0; idx < 7; idx++ {
			native := FlyNative(idx, cell)
			global, err := ScoutFlies.ToGlobal(native)
			if err != nil {
				t.Fatalf("ToGlobal(%d): %v", native, err)
			}
			if !ScoutFlies.Contains(global) {
				t.Errorf("fly %d mapped outside band: %d", native, global)
			}
			if prev, dup := seen[global]; dup {
				t.Errorf("flies %d and %d share global %d", prev, native, global)
			}
			seen[global] = native
			back := ScoutFlies.MustNative(global)
			if back != native {
				t.Errorf("round trip %d = %d", native, back)
			}
			if FlyCell(native) != cell {
				t.Errorf("FlyCell(%d) = %d, want %d", native, FlyCell(native), cell)
			}
		}
	}
}

func TestScoutFlies_RejectsAliasingNatives(t *testing.T) {
	valid := FlyNative(0, 95)
	if _, err := ScoutFlies.ToGlobal(valid); err != nil {
		t.Fatalf("ToGlobal(%d): %v", valid, err)
	}
	for _, native := range []int{
		valid | 1<<8,        // 351 would fold onto 95
		valid | 0x80,        // bit just above the cell
		valid | 1<<15,       // highest bit below the index
		FlyNative(8, 95),    // index past the last fly slot
		FlyNative(1023, 95), // index far out of range
	} {
		_, err := ScoutFlies.ToGlobal(native)
		if !errors.Is(err, ErrOutOfBand) {
			t.Errorf("ToGlobal(%d) error = %v, want ErrOutOfBand", native, err)
		}
	}
}

func TestScoutFlies_KnownValues(t *testing.T) {
	tests := []struct {
		native int
		want   int64
	}{
		{95, Base + 1024 + 95},
		{262219, Base + 1024 + 512 + 75},
		{393291, Base + 1024 + 768 + 75},
	}
	for _, tt := range tests {
		got, err := ScoutFlies.ToGlobal(tt.native)
		if err != nil {
			t.Fatalf("ToGlobal(%d): %v", tt.native, err)
		}
		if got != tt.want {
			t.Errorf("ToGlobal(%d) = %d, want %d", tt.native, got, tt.want)
		}
	}
}

func TestWrongDirection(t *testing.T) {
	if _, err := Cells.ToGlobal(int(Base) + 5); !errors.Is(err, ErrAlreadyGlobal) {
		t.Errorf("ToGlobal(global) err = %v, want ErrAlreadyGlobal", err)
	}
	if _, err := Specials.ToNative(5); !errors.Is(err, ErrNotGlobal) {
		t.Errorf("ToNative(native) err = %v, want ErrNotGlobal", err)
	}
	if _, err := Specials.ToNative(Cells.MustGlobal(5)); !errors.Is(err, ErrWrongBand) {
		t.Errorf("ToNative(other band) err = %v, want ErrWrongBand", err)
	}
	if _, err := Cells.ToGlobal(5000); !errors.Is(err, ErrOutOfBand) {
		t.Errorf("ToGlobal(5000) err = %v, want ErrOutOfBand", err)
	}
}

func TestMustGlobal_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGlobal on a global id did not panic")
		}
	}()
	Caches.MustGlobal(int(Base))
}

func TestBands_Disjoint(t *testing.T) {
	bands := Bands()
	for i := range bands {
		alo, ahi := bands[i].Range()
		for j := i + 1; j < len(bands); j++ {
			blo, bhi := bands[j].Range()
			if alo < bhi && blo < ahi {
				t.Errorf("bands %s and %s overlap", bands[i].Name, bands[j].Name)
			}
		}
	}
}

func TestBandOf(t *testing.T) {
	b, ok := BandOf(Caches.MustGlobal(10344))
	if !ok || b.Name != Caches.Name {
		t.Errorf("BandOf(cache) = %q, %v", b.Name, ok)
	}
	if _, ok := BandOf(5); ok {
		t.Error("BandOf(5) should not find a band")
	}
}

func TestAddress(t *testing.T) {
	if got := Address(3, 4); got != 604 {
		t.Errorf("Address(3, 4) = %d, want 604", got)
	}
	if got := Address(16, 99); got != 3299 {
		t.Errorf("Address(16, 99) = %d, want 3299", got)
	}
	if got := FindAddress(4, 50, 25); got != Address(4, 1) {
		t.Errorf("FindAddress(4, 50, 25) = %d, want %d", got, Address(4, 1))
	}
	// The highest per-level address must stay below the global scope.
	if Address(15, BundleStride-1) >= Address(16, 0) {
		t.Error("level addresses overlap the global scope")
	}
	if _, err := Orbs.ToGlobal(Address(16, 1999)); err != nil {
		t.Errorf("global bundle 2000 does not fit the orb band: %v", err)
	}
}
