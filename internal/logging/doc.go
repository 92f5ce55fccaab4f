// Package logging provides a unified logging interface for the arithmetic
// engine. It abstracts the underlying logging implementation, allowing
// consistent logging across components while supporting multiple backends.
// The engine itself is silent by default (Nop); calibration and embedding
// programs opt in to the zerolog backend.
package logging
