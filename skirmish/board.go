package skirmish

import "errors"

// BoardSize is the number of unit zones per hero.
const BoardSize = 4

var (
	ErrInvalidZone  = errors.New("zone index out of range")
	ErrZoneOccupied = errors.New("zone is already occupied")
)

// Board holds one hero's units in fixed zones.
type Board struct {
	zones [BoardSize]*UnitCard
}

func NewBoard() *Board {
	return &Board{}
}

// FreeZone returns the index of the first empty zone, or -1.
func (b *Board) FreeZone() int {
	for i, z := range b.zones {
		if z == nil {
			return i
		}
	}
	return -1
}

// Place puts a unit in the given zone.
func (b *Board) Place(u *UnitCard, zone int) error {
	if zone < 0 || zone >= BoardSize {
		return ErrInvalidZone
	}
	if b.zones[zone] != nil {
		return ErrZoneOccupied
	}
	b.zones[zone] = u
	return nil
}

// Remove clears the unit's zone. Unknown units are ignored.
func (b *Board) Remove(u *UnitCard) {
	for i, z := range b.zones {
		if z == u {
			b.zones[i] = nil
			return
		}
	}
}

// UnitAt returns the unit in the given zone, nil when empty or out of range.
func (b *Board) UnitAt(zone int) *UnitCard {
	if zone < 0 || zone >= BoardSize {
		return nil
	}
	return b.zones[zone]
}

// Zone returns the zone index of a unit on this board, or -1.
func (b *Board) Zone(u *UnitCard) int {
	for i, z := range b.zones {
		if z == u {
			return i
		}
	}
	return -1
}

// Units returns all units in zone order.
func (b *Board) Units() []*UnitCard {
	var result []*UnitCard
	for _, z := range b.zones {
		if z != nil {
			result = append(result, z)
		}
	}
	return result
}

// Count returns the number of occupied zones.
func (b *Board) Count() int {
	count := 0
	for _, z := range b.zones {
		if z != nil {
			count++
		}
	}
	return count
}

// Clear empties all zones.
func (b *Board) Clear() {
	b.zones = [BoardSize]*UnitCard{}
}
