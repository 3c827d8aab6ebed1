// Package types provides core type definitions for the Data-Transform SDK.
package types

import "fmt"

// ElementKind distinguishes ordinary data from control markers inside
// a transformer's buffer.
type ElementKind int

const (
	// DataElement holds an opaque chunk on the input side, or a parsed
	// item on the output side. The format is owned by the concrete
	// transformer; the base protocol never inspects it.
	DataElement ElementKind = iota

	// ControlElement holds a control marker. Markers bypass parsing and
	// are delivered singly, in arrival order relative to surrounding data.
	ControlElement
)

// String returns a human-readable string representation of the ElementKind.
func (k ElementKind) String() string {
	switch k {
	case DataElement:
		return "DataElement"
	case ControlElement:
		return "ControlElement"
	default:
		return fmt.Sprintf("ElementKind(%d)", k)
	}
}

// Element is the unit held by a transformer's buffer: either an opaque
// data value (a chunk or an item) or a control marker. It is a small
// tagged union; exactly one of the two sides is populated.
//
// Elements are values and are safe to copy. The zero Element is a
// DataElement with a nil value and is what take operations return
// alongside false when nothing is available.
type Element struct {
	// kind is the variant tag of this element.
	kind ElementKind

	// value is the chunk or item when kind is DataElement.
	value interface{}

	// marker is the control marker when kind is ControlElement.
	marker *Marker
}

// Data wraps a chunk or item as a buffer element.
func Data(v interface{}) Element {
	return Element{kind: DataElement, value: v}
}

// Control wraps a marker as a buffer element.
func Control(m *Marker) Element {
	return Element{kind: ControlElement, marker: m}
}

// Kind returns the variant tag of this element.
func (e Element) Kind() ElementKind {
	return e.kind
}

// IsControl returns true if this element carries a control marker.
func (e Element) IsControl() bool {
	return e.kind == ControlElement
}

// Value returns the chunk or item carried by a data element.
// It returns nil for control elements.
func (e Element) Value() interface{} {
	if e.kind != DataElement {
		return nil
	}
	return e.value
}

// Marker returns the control marker carried by a control element.
// It returns nil for data elements.
func (e Element) Marker() *Marker {
	if e.kind != ControlElement {
		return nil
	}
	return e.marker
}
