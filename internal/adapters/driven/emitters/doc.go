// Package emitters holds the Dart rendering helpers shared by the emission
// backends: documentation comments, import derivation, and the wire
// conversion expressions used by hand-rolled fromJson/toJson code.
//
// Each backend lives in its own subpackage and implements
// driven.EmissionBackend; the resolution pipeline never depends on any of
// them directly.
package emitters
