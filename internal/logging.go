package internal

import (
	"io"
	"log"
)

// InitLogging points the standard logger at w with microsecond timestamps.
// The CLI passes stderr so stdout carries only the serialized route.
func InitLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
