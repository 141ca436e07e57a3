package approuter

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// DebugOutput receives diagnostic messages emitted while resolving presentations.
type DebugOutput func(message string)

var (
	// DebugNone discards all messages.
	DebugNone DebugOutput = func(string) {}

	// DebugPrint writes messages to stdout.
	DebugPrint DebugOutput = func(message string) { fmt.Println(message) }

	// DebugLog writes messages to the internal structured logger.
	DebugLog DebugOutput = func(message string) { internal.GetInternalLogger().Info(message) }
)

// ParseDebugOutput maps "none", "print" and "log" to a sink. Unknown names map to DebugLog.
func ParseDebugOutput(name string) DebugOutput {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "off":
		return DebugNone
	case "print", "stdout":
		return DebugPrint
	default:
		return DebugLog
	}
}
