package skirmish

import "testing"

func TestBoardPlaceAndZoneLookup(t *testing.T) {
	b := NewBoard()
	rat := ScrapRat().(*UnitCard)
	hound := GutterHound().(*UnitCard)

	if err := b.Place(rat, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := b.Place(hound, 2); err != ErrZoneOccupied {
		t.Fatalf("Place into occupied zone: err = %v, want ErrZoneOccupied", err)
	}
	if err := b.Place(hound, BoardSize); err != ErrInvalidZone {
		t.Fatalf("Place out of range: err = %v, want ErrInvalidZone", err)
	}

	if got := b.Zone(rat); got != 2 {
		t.Fatalf("Zone(rat) = %d, want 2", got)
	}
	if got := b.Zone(hound); got != -1 {
		t.Fatalf("Zone(hound) = %d, want -1", got)
	}
	if got := b.UnitAt(2); got != rat {
		t.Fatalf("UnitAt(2) = %v, want rat", got)
	}
	if got := b.UnitAt(0); got != nil {
		t.Fatalf("UnitAt(0) = %v, want nil", got)
	}
}

func TestBoardFreeZoneSkipsOccupied(t *testing.T) {
	b := NewBoard()
	for zone := 0; zone < BoardSize; zone++ {
		if got := b.FreeZone(); got != zone {
			t.Fatalf("FreeZone = %d, want %d", got, zone)
		}
		if err := b.Place(ScrapRat().(*UnitCard), zone); err != nil {
			t.Fatalf("Place zone %d: %v", zone, err)
		}
	}
	if got := b.FreeZone(); got != -1 {
		t.Fatalf("FreeZone on full board = %d, want -1", got)
	}
	if got := b.Count(); got != BoardSize {
		t.Fatalf("Count = %d, want %d", got, BoardSize)
	}
}

func TestBoardRemoveAndClear(t *testing.T) {
	b := NewBoard()
	rat := ScrapRat().(*UnitCard)
	hound := GutterHound().(*UnitCard)
	b.Place(rat, 0)
	b.Place(hound, 3)

	b.Remove(rat)
	if got := b.Count(); got != 1 {
		t.Fatalf("Count after remove = %d, want 1", got)
	}
	// Removing a unit that is not on the board is a no-op.
	b.Remove(rat)
	if got := b.Count(); got != 1 {
		t.Fatalf("Count after double remove = %d, want 1", got)
	}

	units := b.Units()
	if len(units) != 1 || units[0] != hound {
		t.Fatalf("Units = %v, want [hound]", units)
	}

	b.Clear()
	if got := b.Count(); got != 0 {
		t.Fatalf("Count after clear = %d, want 0", got)
	}
}
