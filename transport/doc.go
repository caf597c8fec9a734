// Package transport streams a relaxation session's live state to a UDP
// listener, for the external test harness described in spec.md (the
// core engine package never imports this one).
//
// Frames are length-prefixed binary messages: a 1-byte frame kind, a
// big-endian uint32 payload length, then the payload. Two frame kinds
// are defined: a point-cloud frame (interleaved x, y float64 pairs) and
// a triangle frame (flat uint32 vertex-index triples). Multi-byte fields
// are big-endian throughout, following the wire convention a UDP relay
// of numeric samples would use.
package transport
