package core

// ValueStore holds a card's integer-keyed base values plus an independent
// modifier overlay. A key absent from either map reads as 0; a modifier of 0
// and an absent modifier are equivalent and both mean "not runtime-modified".
type ValueStore struct {
	values    map[int]int
	modifiers map[int]int
}

// NewValueStore creates an empty store.
func NewValueStore() ValueStore {
	return ValueStore{
		values:    make(map[int]int),
		modifiers: make(map[int]int),
	}
}

// GetValue returns the base value for key, 0 if unset.
func (vs *ValueStore) GetValue(key int) int {
	return vs.values[key]
}

// SetValue inserts or updates the base value for key.
func (vs *ValueStore) SetValue(key, value int) {
	if vs.values == nil {
		vs.values = make(map[int]int)
	}
	vs.values[key] = value
}

// IsValueModified reports whether key currently carries a nonzero modifier.
func (vs *ValueStore) IsValueModified(key int) bool {
	_, ok := vs.modifiers[key]
	return ok
}

// GetModifiedValue returns base value + modifier for key.
func (vs *ValueStore) GetModifiedValue(key int) int {
	return vs.values[key] + vs.modifiers[key]
}

// SetValueModifier sets the runtime modifier for key. Setting it to exactly 0
// clears the modifier, so 0 and "never modified" are indistinguishable.
func (vs *ValueStore) SetValueModifier(key, delta int) {
	if delta == 0 {
		delete(vs.modifiers, key)
		return
	}
	if vs.modifiers == nil {
		vs.modifiers = make(map[int]int)
	}
	vs.modifiers[key] = delta
}

// clone returns an independent deep copy of the store.
func (vs *ValueStore) clone() ValueStore {
	cp := NewValueStore()
	for k, v := range vs.values {
		cp.values[k] = v
	}
	for k, v := range vs.modifiers {
		cp.modifiers[k] = v
	}
	return cp
}
