package validation

import "strings"

// reservedHandles are names that would collide with profile route segments
// or general API surface if a user claimed them as a handle.
var reservedHandles = map[string]struct{}{
	"all":        {},
	"handle":     {},
	"user":       {},
	"experience": {},
	"education":  {},
	"api":        {},
	"admin":      {},
	"profile":    {},
	"profiles":   {},
	"posts":      {},
	"users":      {},
	"ws":         {},
	"swagger":    {},
	"metrics":    {},
	"health":     {},
	"login":      {},
	"logout":     {},
	"register":   {},
}

// handleReserved reports whether a handle is blocked. Comparison is
// case-insensitive since lookups by handle are.
func handleReserved(handle string) bool {
	_, ok := reservedHandles[strings.ToLower(handle)]
	return ok
}
