package game

import "errors"

var (
	// ErrNotLoaded is returned by board operations before a dataset loads.
	ErrNotLoaded = errors.New("dataset not loaded")
	// ErrNoSelection is returned when an answer is checked with nothing chosen.
	ErrNoSelection = errors.New("select an answer first")
	// ErrUnknownClue is returned for slot identifiers that hold no clue.
	ErrUnknownClue = errors.New("unknown clue")
	// ErrAlreadyAnswered is returned when a clue is scored twice.
	ErrAlreadyAnswered = errors.New("clue already answered")
)
