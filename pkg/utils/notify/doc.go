// Package notify provides utilities for sending formatted notifications to CLI users.
//
// [WriteMessage] displays formatted messages with type-specific symbols and colors.
// Message types include success (✔), error (✗), warning (⚠), info (ℹ), and
// activity (►) messages.
package notify
