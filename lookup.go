package argh

import "fmt"

// Flag reports whether any of the candidate names appeared as a flag.
// Leading dashes on candidates are ignored; an empty candidate never
// matches. Candidates are tried in the given order.
func (p *Parser) Flag(names ...string) bool {
	for _, name := range names {
		name = trimLeadingDashes(name)
		if name == "" {
			continue
		}
		if p.flags[name] > 0 {
			return true
		}
	}
	return false
}

// Pos returns the i-th positional argument in appearance order, or "" when
// i is out of range.
func (p *Parser) Pos(i int) string {
	if i < 0 || i >= len(p.posArgs) {
		return ""
	}
	return p.posArgs[i]
}

// PosValue returns the i-th positional argument as a Value.
func (p *Parser) PosValue(i int) Value {
	if i < 0 || i >= len(p.posArgs) {
		return missValue(fmt.Sprintf("positional %d", i))
	}
	return okValue(p.posArgs[i])
}

// PosOr is PosValue with a default: when i is out of range the returned
// Value holds def's string form instead of missing.
func (p *Parser) PosOr(i int, def interface{}) Value {
	if v := p.PosValue(i); v.OK() {
		return v
	}
	return okValue(fmt.Sprint(def))
}

// Param returns the value of the first candidate name present as a
// parameter, in the given order. Dashes on candidates are ignored and empty
// candidates are skipped. A name that appeared more than once yields its
// first value.
func (p *Parser) Param(names ...string) Value {
	for _, name := range names {
		name = trimLeadingDashes(name)
		if name == "" {
			continue
		}
		if vs := p.params[name]; len(vs) > 0 {
			return okValue(vs[0])
		}
	}
	return missValue(fmt.Sprintf("parameter %q", names))
}

// ParamOr is Param with a default: when no candidate is present the
// returned Value holds def's string form. A default that does not convert
// to the caller's type fails at Scan, not here.
func (p *Parser) ParamOr(def interface{}, names ...string) Value {
	if v := p.Param(names...); v.OK() {
		return v
	}
	return okValue(fmt.Sprint(def))
}

// PosArgs returns the positional arguments in appearance order. The slice
// is the parser's own; treat it as read-only.
func (p *Parser) PosArgs() []string {
	return p.posArgs
}

// Flags returns the flag multiset as name to occurrence count. Read-only.
func (p *Parser) Flags() map[string]int {
	return p.flags
}

// Params returns every parameter name with all values recorded for it, in
// insertion order per name. Read-only.
func (p *Parser) Params() map[string][]string {
	return p.params
}

// ParamValues returns all values recorded for name, oldest first, or nil.
func (p *Parser) ParamValues(name string) []string {
	name = trimLeadingDashes(name)
	if name == "" {
		return nil
	}
	return p.params[name]
}
