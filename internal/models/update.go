package models

import (
	"fmt"
	"time"
)

// UpdateState is a step of the ingestion pipeline.
type UpdateState string

const (
	// UpdateStateIdle - no update has run yet
	UpdateStateIdle UpdateState = "idle"
	// UpdateStateFetching - downloading the registry payload
	UpdateStateFetching UpdateState = "fetching"
	// UpdateStateParsing - converting the payload into records
	UpdateStateParsing UpdateState = "parsing"
	// UpdateStateBuilding - resolving keys and filling the new store
	UpdateStateBuilding UpdateState = "building"
	// UpdateStatePersisting - replacing the store file
	UpdateStatePersisting UpdateState = "persisting"
	// UpdateStateDone - the new store is on disk
	UpdateStateDone UpdateState = "done"
	// UpdateStateFailed - the update stopped, the previous store is untouched
	UpdateStateFailed UpdateState = "failed"
)

func (s UpdateState) Value() string {
	return string(s)
}

// Terminal reports whether the pipeline stops in this state.
func (s UpdateState) Terminal() bool {
	return s == UpdateStateDone || s == UpdateStateFailed
}

// Running reports whether the pipeline is between idle and a terminal state.
func (s UpdateState) Running() bool {
	return s != UpdateStateIdle && !s.Terminal()
}

func ParseUpdateState(s string) (UpdateState, error) {
	switch UpdateState(s) {
	case UpdateStateIdle, UpdateStateFetching, UpdateStateParsing, UpdateStateBuilding,
		UpdateStatePersisting, UpdateStateDone, UpdateStateFailed:
		return UpdateState(s), nil
	default:
		return "", fmt.Errorf("invalid update state: %s", s)
	}
}

// Collision records a source row whose PLMN was already taken.
type Collision struct {
	PLMN string
	Key  string
}

// UpdateResult describes a completed ingestion run.
type UpdateResult struct {
	Source     string
	Format     string
	Rows       int
	Collisions []Collision
	Bytes      int64
	StartedAt  time.Time
	Duration   time.Duration
}

// UpdateStatus holds the current pipeline state and the outcome of the last run.
type UpdateStatus struct {
	State      UpdateState
	LastResult *UpdateResult
	Error      error
}
