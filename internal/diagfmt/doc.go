// Package diagfmt renders recorded compiler outputs.
//
// Text output is meant for terminals and may be colored. JSON and
// MessagePack output carry the same Document so tools can consume either.
package diagfmt
