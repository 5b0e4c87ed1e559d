package lpreader

// Leveled logging in the teacher's own style: a small set of level
// constants and a single gated printf-style function, rather than a
// structured-logging dependency (see DESIGN.md).

import (
	"fmt"
	"log"
	"os"
)

// Level selects which messages logf actually prints.
type Level int

const (
	LvlErr  Level = iota // pERR  - failures the caller should see by default
	LvlWarn              // pWARN - suspicious but non-fatal conditions
	LvlInfo              // pINFO - progress through the pipeline stages
	LvlDeb               // pDEB  - per-token/per-section detail
	LvlTrc               // pTRC  - everything, including loop iterations
)

func (l Level) String() string {
	switch l {
	case LvlErr:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDeb:
		return "DEBUG"
	case LvlTrc:
		return "TRACE"
	default:
		return "?"
	}
}

// LogLevel is the active threshold. Messages logged at a level above
// LogLevel are discarded. Defaults to LvlWarn so a library consumer does
// not get progress spam unless they opt in.
var LogLevel = LvlWarn

var stdLogger = log.New(os.Stderr, "lpreader: ", 0)

// logf prints format/args when level is at or below the current
// LogLevel, mirroring the teacher's "log(pINFO, ...)" call sites in
// psf.go/ifgpx.go.
func logf(level Level, format string, args ...interface{}) {
	if level > LogLevel {
		return
	}
	stdLogger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}
