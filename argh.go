package argh

import (
	"strings"
	"unicode/utf8"
)

// Mode is a bit set of toggles controlling how ambiguous tokens are
// classified. The zero Mode gives the default behaviour.
type Mode uint

const (
	// An unregistered option followed by a plain token becomes a flag and
	// the token stays positional. This is the default.
	PreferFlagForUnregOption Mode = 1 << iota

	// An unregistered option followed by a plain token consumes it as a
	// parameter value.
	PreferParamForUnregOption

	// Disable splitting on '='; "--answer=42" becomes the flag "answer=42".
	NoSplitOnEqualsign

	// A single-dash multi-character token such as "-xvf" expands to the
	// flags "x", "v", "f", unless the whole name is registered.
	SingleDashIsMultiflag

	// Legacy policy: an unregistered option followed by a plain token is
	// recorded as a flag and as a parameter, and the token is still
	// classified on its own in the next iteration. Deliberate duplication,
	// for callers that ignore positionals and validate themselves.
	SlackParamForUnregOption
)

// Parser classifies an argument vector once and then answers lookups.
// Registration must happen before Parse; after Parse the instance is
// read-only and safe for concurrent lookups.
type Parser struct {
	registered map[string]struct{}
	parsed     bool

	posArgs []string
	flags   map[string]int
	params  map[string][]string
}

// New returns a Parser with the given parameter names pre-registered.
func New(names ...string) *Parser {
	p := &Parser{
		registered: make(map[string]struct{}),
		flags:      make(map[string]int),
		params:     make(map[string][]string),
	}
	p.AddParams(names...)
	return p
}

// Parse classifies args in one call and returns the parser, pre-registering
// names first. Pass a zero Mode for the defaults.
func Parse(args []string, mode Mode, names ...string) *Parser {
	p := New(names...)
	p.Parse(args, mode)
	return p
}

// AddParam registers name (leading dashes ignored) so that classification
// always consumes the following plain token as its value. Idempotent.
// Calling it after Parse has no effect.
func (p *Parser) AddParam(name string) {
	if p.parsed {
		return
	}
	name = trimLeadingDashes(name)
	if name == "" {
		return
	}
	p.registered[name] = struct{}{}
}

// AddParams registers each name as per AddParam.
func (p *Parser) AddParams(names ...string) {
	for _, name := range names {
		p.AddParam(name)
	}
}

func (p *Parser) isRegistered(name string) bool {
	_, ok := p.registered[name]
	return ok
}

// Parse classifies args left to right in a single pass with one token of
// lookahead. It never fails: ambiguous input is resolved by mode, not
// rejected. A nil or empty args is the degenerate case and yields three
// empty result sets.
func (p *Parser) Parse(args []string, mode Mode) {
	p.parsed = true
	p.posArgs = nil
	p.flags = make(map[string]int)
	p.params = make(map[string][]string)

	for i := 0; i < len(args); i++ {
		if !isOption(args[i]) {
			p.posArgs = append(p.posArgs, args[i])
			continue
		}

		name := trimLeadingDashes(args[i])

		if mode&NoSplitOnEqualsign == 0 {
			if eq := strings.IndexByte(name, '='); eq != -1 {
				p.params[name[:eq]] = append(p.params[name[:eq]], name[eq+1:])
				continue
			}
		}

		if mode&SingleDashIsMultiflag != 0 &&
			len(args[i])-len(name) == 1 &&
			!p.isRegistered(name) {
			// A registered final character falls through to the normal
			// lookahead path so it can still consume a value.
			tail := ""
			if last, size := utf8.DecodeLastRuneInString(name); size > 0 {
				if p.isRegistered(string(last)) {
					tail = name[len(name)-size:]
					name = name[:len(name)-size]
				}
			}
			for _, c := range name {
				p.flags[string(c)]++
			}
			if tail == "" {
				continue
			}
			name = tail
		}

		// A lone trailing option, or one followed by another option, is
		// always a flag.
		if i == len(args)-1 || isOption(args[i+1]) {
			p.flags[name]++
			continue
		}

		switch {
		case p.isRegistered(name):
			p.params[name] = append(p.params[name], args[i+1])
			i++
		case mode&PreferParamForUnregOption != 0:
			p.params[name] = append(p.params[name], args[i+1])
			i++
		case mode&SlackParamForUnregOption != 0:
			p.flags[name]++
			p.params[name] = append(p.params[name], args[i+1])
			// next token is not consumed, it will classify on its own
		default:
			p.flags[name]++
		}
	}
}
