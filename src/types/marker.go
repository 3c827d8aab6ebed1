// Package types provides core type definitions for the Data-Transform SDK.
package types

import "fmt"

// MarkerKind identifies the variant of a control marker.
// The kind alone is semantically meaningful to consumers; markers carry
// no behavior beyond identity and payload retrieval.
type MarkerKind int

const (
	// SendBack signals that the consumer should reflect or route the
	// marker's payload back to its origin.
	SendBack MarkerKind = iota

	// EndOfStream signals that no further chunks will arrive on this
	// logical stream.
	EndOfStream

	// StreamError carries an error payload describing a parse failure
	// encountered upstream. It flows through the normal take path so a
	// caller can treat malformed data as ordinary stream content.
	StreamError
)

// String returns a human-readable string representation of the MarkerKind.
func (k MarkerKind) String() string {
	switch k {
	case SendBack:
		return "SendBack"
	case EndOfStream:
		return "EndOfStream"
	case StreamError:
		return "StreamError"
	default:
		return fmt.Sprintf("MarkerKind(%d)", k)
	}
}

// IsValid validates that the kind is within the known variant set.
func (k MarkerKind) IsValid() bool {
	return k >= SendBack && k <= StreamError
}

// Marker is an inert, tagged control value that can be pushed into a
// transformer's buffer alongside raw chunks. Transformers pass markers
// through untouched; a marker is never merged with adjacent chunks and
// is never handed to a chunk handler.
//
// Markers are immutable after construction. A transformer family may
// introduce new kinds without altering the base protocol, since the
// take path treats every marker uniformly.
type Marker struct {
	// kind is the variant tag of this marker.
	kind MarkerKind

	// payload is the optional data carried by this marker.
	payload interface{}
}

// NewSendBack creates a SendBack marker carrying the given payload.
func NewSendBack(payload interface{}) *Marker {
	return &Marker{kind: SendBack, payload: payload}
}

// NewEndOfStream creates an EndOfStream marker with no payload.
func NewEndOfStream() *Marker {
	return &Marker{kind: EndOfStream}
}

// NewStreamError creates a StreamError marker carrying the given
// error payload.
func NewStreamError(payload interface{}) *Marker {
	return &Marker{kind: StreamError, payload: payload}
}

// Kind returns the variant tag of this marker.
func (m *Marker) Kind() MarkerKind {
	if m == nil {
		return MarkerKind(-1)
	}
	return m.kind
}

// Payload returns the payload supplied at construction, unchanged.
func (m *Marker) Payload() interface{} {
	if m == nil {
		return nil
	}
	return m.payload
}

// IsEndOfStream returns true if this marker signals end of stream.
func (m *Marker) IsEndOfStream() bool {
	return m != nil && m.kind == EndOfStream
}

// IsError returns true if this marker carries a parse failure.
func (m *Marker) IsError() bool {
	return m != nil && m.kind == StreamError
}
