package evaluator

import "strings"

// forbiddenPatterns are substrings that mark a path as structurally
// illegal: walking between stops without a vehicle (F*F), repeated
// lot-to-lot car legs (C*C), repeated port hops (V*V), or dismounting
// a scooter only to keep walking (S*F). A scooter split's own "SF"
// replacement is deliberately written without a stop marker in
// evaluatePath so it never matches S*F.
var forbiddenPatterns = []string{"F*F", "C*C", "V*V", "S*F"}

func isForbidden(pattern string) bool {
	for _, f := range forbiddenPatterns {
		if strings.Contains(pattern, f) {
			return true
		}
	}
	return false
}
