// Package formatter renders decoded ticket data as the plain-text
// tables shown to end users.
//
// This package is organized into:
// - status.go: seat availability wording
// - text.go: ticket and transfer table rendering
//
// Output layout mirrors the upstream presentation exactly, including
// header lines and tab indentation of nested leg blocks.
package formatter
