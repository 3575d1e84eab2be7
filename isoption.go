package argh

import (
	"strconv"
	"strings"
)

// isNumber reports whether arg parses in full as a signed floating point
// number, covering "-1", "-0.4", "-1e6" and the like.
func isNumber(arg string) bool {
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// isOption - a token is an option iff it starts with a dash and is not a
// number, so negative numeric arguments stay positional.
func isOption(arg string) bool {
	if arg == "" || isNumber(arg) {
		return false
	}
	return arg[0] == '-'
}

// trimLeadingDashes strips any run of leading dashes, so "-x", "--x" and
// "---x" all name "x". Idempotent.
func trimLeadingDashes(name string) string {
	return strings.TrimLeft(name, "-")
}
