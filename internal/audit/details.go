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

package audit

import (
	"encoding/json"

	"github.com/retr0h/audittrail/internal/signature"
)

// Details is the tagged union of per-entry contextual records. Known
// (entity, actionType) combinations carry a strongly-typed record; anything
// else falls back to GenericDetails so unrecognized entries survive a
// round trip untouched.
type Details interface {
	auditDetails()
}

// CalculationDetails records a completed calculation.
type CalculationDetails struct {
	// Expression is the evaluated input expression.
	Expression string `json:"expression"`
	// Result is the rendered result value.
	Result string `json:"result"`
	// Mode is the calculator mode the expression ran under.
	Mode string `json:"mode,omitempty"`
}

func (CalculationDetails) auditDetails() {}

// ConversionDetails records a completed unit conversion.
type ConversionDetails struct {
	// Category is the conversion domain (length, mass, ...).
	Category string `json:"category"`
	// FromUnit is the source unit.
	FromUnit string `json:"fromUnit"`
	// ToUnit is the target unit.
	ToUnit string `json:"toUnit"`
	// Input is the rendered source value.
	Input string `json:"input"`
	// Output is the rendered converted value.
	Output string `json:"output"`
}

func (ConversionDetails) auditDetails() {}

// LogClearDetails records a signed audit log clear. It carries the
// non-repudiation payload so the fact and justification of the clear stay
// traceable even though the cleared data is gone.
type LogClearDetails struct {
	// Signature is the non-repudiation payload that authorized the clear.
	Signature signature.Payload `json:"signature"`
	// EntriesCleared is the number of entries discarded.
	EntriesCleared int `json:"entriesCleared"`
}

func (LogClearDetails) auditDetails() {}

// DiagnosticDetails records a captured internal fault.
type DiagnosticDetails struct {
	// Name labels the fault class.
	Name string `json:"name"`
	// Message is the fault's message text.
	Message string `json:"message"`
	// Extra holds arbitrary context captured with the fault.
	Extra map[string]any `json:"extra,omitempty"`
}

func (DiagnosticDetails) auditDetails() {}

// GenericDetails is the opaque key/value fallback for combinations the
// registry does not know.
type GenericDetails map[string]any

func (GenericDetails) auditDetails() {}

// detailKey addresses one typed record in the registry.
type detailKey struct {
	entity string
	action Action
}

// detailRegistry maps known (entity, actionType) combinations to their
// typed record constructors.
var detailRegistry = map[detailKey]func() Details{
	{entity: "calculation", action: ActionCreate}: func() Details { return &CalculationDetails{} },
	{entity: "conversion", action: ActionCreate}:  func() Details { return &ConversionDetails{} },
	{entity: "audit", action: ActionDelete}:       func() Details { return &LogClearDetails{} },
	{entity: "diagnostic", action: ActionRead}:    func() Details { return &DiagnosticDetails{} },
}

// DecodeDetails decodes a raw details payload into the typed shape
// registered for (entity, action), falling back to GenericDetails for
// unregistered pairs or payloads that do not fit the registered type.
func DecodeDetails(
	entity string,
	action Action,
	raw json.RawMessage,
) Details {
	return decodeDetails(entity, action, raw)
}

// decodeDetails re-materializes a typed details record from its stored
// JSON form. Combinations the registry does not know, and payloads that
// do not decode into their registered type, fall back to GenericDetails.
func decodeDetails(
	entity string,
	action Action,
	raw json.RawMessage,
) Details {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if newFn, ok := detailRegistry[detailKey{entity: entity, action: action}]; ok {
		typed := newFn()
		if err := json.Unmarshal(raw, typed); err == nil {
			return deref(typed)
		}
	}

	var generic GenericDetails
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	return generic
}

// deref unwraps the registry's pointer records so stored and freshly
// built entries compare equal.
func deref(d Details) Details {
	switch v := d.(type) {
	case *CalculationDetails:
		return *v
	case *ConversionDetails:
		return *v
	case *LogClearDetails:
		return *v
	case *DiagnosticDetails:
		return *v
	default:
		return d
	}
}
