// Package errctx implements the typed error accumulator shared by every
// parser and validator in vista-sdk-go (spec §7): a parse or validation
// pass never stops at the first problem, it collects every problem found
// and tags each with the stage of the grammar that produced it.
package errctx

import (
	"fmt"
	"strings"
)

// State tags one stage of a parser or validator. Names mirror the
// LocalId grammar's own sections (spec §4.I) plus the structural errors
// shared by the location and path parsers.
type State string

const (
	StateNamingRule      State = "NamingRule"
	StateVisVersion      State = "VisVersion"
	StatePrimaryItem     State = "PrimaryItem"
	StateSecondaryItem   State = "SecondaryItem"
	StateMetaQuantity    State = "MetaQuantity"
	StateMetaContent     State = "MetaContent"
	StateMetaCalculation State = "MetaCalculation"
	StateMetaState       State = "MetaState"
	StateMetaCommand     State = "MetaCommand"
	StateMetaType        State = "MetaType"
	StateMetaPosition    State = "MetaPosition"
	StateMetaDetail      State = "MetaDetail"
	StateCompleteness    State = "Completeness"
	StateFormatting      State = "Formatting"

	StateLocationNullOrWhiteSpace State = "LocationNullOrWhiteSpace"
	StateLocationInvalid         State = "LocationInvalid"
	StateLocationInvalidCode     State = "LocationInvalidCode"
	StateLocationInvalidOrder    State = "LocationInvalidOrder"

	StateGmodPath State = "GmodPath"
)

// Entry is one accumulated problem.
type Entry struct {
	State   State
	Message string
}

// Errors accumulates zero or more Entry values. The zero value is ready
// to use. Errors itself implements error so it can be returned directly
// once non-empty.
type Errors struct {
	entries []Entry
}

// New returns an empty accumulator.
func New() *Errors { return &Errors{} }

// Add appends one entry.
func (e *Errors) Add(state State, message string) {
	e.entries = append(e.entries, Entry{State: state, Message: message})
}

// Addf appends one entry with a formatted message.
func (e *Errors) Addf(state State, format string, args ...any) {
	e.Add(state, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any entry was accumulated.
func (e *Errors) HasErrors() bool { return e != nil && len(e.entries) > 0 }

// Entries returns the accumulated entries in the order they were added.
func (e *Errors) Entries() []Entry {
	if e == nil {
		return nil
	}
	return e.entries
}

// HasState reports whether any entry carries the given state.
func (e *Errors) HasState(state State) bool {
	if e == nil {
		return false
	}
	for _, entry := range e.entries {
		if entry.State == state {
			return true
		}
	}
	return false
}

// Error renders every accumulated entry as "\t<state> - <message>" lines,
// satisfying the error interface and the printable format from spec §6.
func (e *Errors) Error() string {
	if e == nil || len(e.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, entry := range e.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('\t')
		b.WriteString(string(entry.State))
		b.WriteString(" - ")
		b.WriteString(entry.Message)
	}
	return b.String()
}
