package suftree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for precondition violations: programmer errors that
// must fail loudly rather than be silently recovered from.
var (
	ErrLCANotPrepared   = errors.New("suftree: lca queried before PrepareLCA")
	ErrUnknownSequence  = errors.New("suftree: unknown sequence id")
	ErrUnknownPosition  = errors.New("suftree: no leaf at that sequence position")
	ErrInvalidSpan      = errors.New("suftree: invalid span")
	ErrSequenceExists   = errors.New("suftree: sequence id already added")
	ErrStreamingBuilder = errors.New("suftree: AddSeq requires the ukkonen builder")
	ErrAborted          = errors.New("suftree: build aborted")
)

// InvariantError reports a broken core invariant detected during
// construction. Its presence always indicates a bug in the builder, never
// a caller mistake. Add rolls the failed build back, but a tree whose
// builder has breached an invariant should not be trusted further.
type InvariantError struct {
	// Builder names the builder that detected the breach.
	Builder string
	// Reason is a short, human-readable description of the invariant that
	// was violated.
	Reason string
	// Detail carries builder-specific context (node depths, symbols, ...).
	Detail string
}

func (e *InvariantError) Error() string {
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "suftree: invariant violated in %s builder: %s", e.Builder, e.Reason)
	if e.Detail != "" {
		sb.WriteString("\n  ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}
