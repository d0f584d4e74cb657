package cascade

// Declaration is the interface for style payloads. Implementations hold a
// fixed set of recognized attributes, each of which may be unset.
//
// Package style contains implementations for shapes and box properties.
type Declaration interface {
	IsEmpty() bool                           // are all attributes unset?
	ParseAttribute(name, value string) error // set an attribute from its textual form
	ComplementWith(other Declaration)        // copy attributes of other which are unset here
	String() string                          // attribute block as text, e.g. "fill: red;"
}

// DeclarationFactory creates a new declaration with all attributes unset.
type DeclarationFactory func() Declaration
