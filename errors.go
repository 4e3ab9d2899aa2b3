package cubeguess

import "errors"

// Sentinel errors for the cubeguess package.
var (
	// Parsing errors
	ErrUnknownColor = errors.New("cubeguess: unknown color")
	ErrUnknownFace  = errors.New("cubeguess: unknown face")

	// State errors
	ErrInvalidState      = errors.New("cubeguess: invalid cube state")
	ErrAwaitingNextRound = errors.New("cubeguess: awaiting next round")
	ErrSessionClosed     = errors.New("cubeguess: session closed")
	ErrNotStarted        = errors.New("cubeguess: session not started")

	// Presentation errors
	ErrPresentation = errors.New("cubeguess: presentation failed to initialize")
)
