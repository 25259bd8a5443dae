// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package audit provides the append-only, compliance-oriented audit trail.
package audit

import (
	"encoding/json"
	"time"
)

// Action classifies what an audit entry records. The set is closed;
// anything outside it is rejected before persistence.
type Action string

const (
	// ActionCreate records the creation of a domain object.
	ActionCreate Action = "CREATE"
	// ActionRead records a read or a diagnostic observation.
	ActionRead Action = "READ"
	// ActionUpdate records a mutation of an existing domain object.
	ActionUpdate Action = "UPDATE"
	// ActionDelete records a destructive operation. Entries with this
	// action require a non-blank reason.
	ActionDelete Action = "DELETE"
)

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete:
		return true
	}

	return false
}

// Entry is one immutable audit record. Its shape follows ALCOA+: every
// entry is attributable (UserID), contemporaneous (Timestamp assigned at
// creation), and complete (before/after snapshots, environment metadata).
type Entry struct {
	// ID is the unique identifier for this audit entry.
	ID string `json:"id"`
	// UserID is the identity the recorded action is attributed to.
	UserID string `json:"userId"`
	// Timestamp is when the entry was created, assigned by the store.
	Timestamp time.Time `json:"timestamp"`
	// Action is one of CREATE, READ, UPDATE, DELETE.
	Action Action `json:"actionType"`
	// Entity is the free-text domain tag the action applies to.
	Entity string `json:"entity"`
	// Details carries the typed contextual record for this entry.
	Details Details `json:"details,omitempty"`
	// Before is an opaque snapshot of state prior to the action.
	Before json.RawMessage `json:"before,omitempty"`
	// After is an opaque snapshot of state after the action.
	After json.RawMessage `json:"after,omitempty"`
	// Reason is the stated motive; required when Action is DELETE.
	Reason string `json:"reason,omitempty"`
	// CorrelationID groups entries recorded for one logical operation.
	CorrelationID string `json:"correlationId"`
	// Metadata holds environment facts (app version, client signature,
	// platform, hostname) merged with caller-supplied values.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// UnmarshalJSON re-materializes the typed details record via the
// (entity, actionType) registry; unknown combinations fall back to
// GenericDetails.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry

	aux := struct {
		*alias
		Details json.RawMessage `json:"details,omitempty"`
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.Details = decodeDetails(e.Entity, e.Action, aux.Details)

	return nil
}

// Options are the optional attributes of a logged action.
type Options struct {
	// Reason is the stated motive; required when the action is DELETE.
	Reason string
	// Before is an opaque snapshot of state prior to the action.
	Before json.RawMessage
	// After is an opaque snapshot of state after the action.
	After json.RawMessage
	// CorrelationID groups entries for one logical operation; generated
	// when absent.
	CorrelationID string
	// Metadata values override the environment defaults key by key.
	Metadata map[string]string
}

// Credentials is the username/password pair presented to authorize a
// destructive operation. Never persisted; only the derived signature
// payload is.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ClearResult reports the outcome of a signed log clear.
type ClearResult struct {
	// Cleared is the number of entries discarded.
	Cleared int `json:"cleared"`
	// Timestamp is when the clear took effect.
	Timestamp time.Time `json:"timestamp"`
}

// ErrorContext carries optional attribution for a recorded diagnostic.
type ErrorContext struct {
	// Name labels the fault class; defaults to the error's Go type.
	Name string
	// UserID attributes the diagnostic; defaults to "system".
	UserID string
	// Extra holds arbitrary context persisted with the diagnostic.
	Extra map[string]any
}
