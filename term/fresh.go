package term

import (
	"strconv"
	"strings"
)

// FreshPrefix is reserved for generated variables. User-supplied identifiers
// must not start with it, which keeps generated names distinct from every
// variable appearing in a problem.
const FreshPrefix = "g"

// FreshVar derives the generated variable name for a solver column index.
// The name is a pure function of the index, so the same column always maps
// to the same name within a solve.
func FreshVar(i int) string {
	return FreshPrefix + strconv.Itoa(i)
}

// IsFresh reports whether the name is reserved for generated variables.
func IsFresh(name string) bool {
	return strings.HasPrefix(name, FreshPrefix)
}
