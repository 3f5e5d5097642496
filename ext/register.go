// Package ext registers the CEL extension function namespaces (strings,
// base64, network, optional, timestamp/duration accessors) into an
// interpreter.Dispatcher, mirroring the teacher's one-file-per-namespace
// ext package layout without its protobuf-backed declaration machinery:
// there is no checker here, so each namespace is just a Register call.
package ext

import "github.com/celexpr/celc/interpreter"

// Namespace names accepted by compiler.Options.Extensions.
const (
	NSStrings = "strings"
	NSBase64 = "base64"
	NSNetwork = "network"
	NSOptional = "optional"
	NSTime = "time"
	NSMath = "math"
)

// All registers every extension namespace.
func All(d *interpreter.Dispatcher) {
	Strings(d)
	Base64(d)
	Network(d)
	Optional(d)
	Time(d)
	Math(d)
}

// Register enables only the namespaces named in enabled; an unrecognized
// name is ignored.
func Register(d *interpreter.Dispatcher, enabled []string) {
	for _, name := range enabled {
		switch name {
		case NSStrings:
			Strings(d)
		case NSBase64:
			Base64(d)
		case NSNetwork:
			Network(d)
		case NSOptional:
			Optional(d)
		case NSTime:
			Time(d)
		case NSMath:
			Math(d)
		}
	}
}
