package core

import "errors"

// Invalid-state and invalid-argument conditions. Everything else that can be
// "missing" (empty deck, out-of-range hand index, no active player) is a
// normal nil/false result, not an error.
var (
	ErrNilCard            = errors.New("card is nil")
	ErrNilPlayer          = errors.New("player is nil")
	ErrNoDeck             = errors.New("player has no deck")
	ErrNoHand             = errors.New("player has no hand")
	ErrCopyNotImplemented = errors.New("CreateCopy not implemented")
	ErrPlayerNotInMatch   = errors.New("player is not part of this match")
)
