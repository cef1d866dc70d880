package profiles

// registry is the package-level knowledge base, keyed by profile code.
var registry map[string]*Characteristics

// order preserves the authored entry order for stable listings.
var order []string

func init() {
	registry = make(map[string]*Characteristics, len(seedProfiles))
	order = make([]string, 0, len(seedProfiles))
	for i := range seedProfiles {
		p := &seedProfiles[i]
		registry[p.Code] = p
		order = append(order, p.Code)
	}
}

// ByCode returns the characteristics for a profile code, or nil if the
// code is not in the knowledge base. There is no fallback here: callers
// that want combined-code-to-pure-letter degradation must apply it
// themselves (the scoring engine does).
func ByCode(code string) *Characteristics {
	return registry[code]
}

// AllCodes returns every known profile code in authored order.
func AllCodes() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// All returns every knowledge-base entry in authored order.
func All() []*Characteristics {
	out := make([]*Characteristics, 0, len(order))
	for _, code := range order {
		out = append(out, registry[code])
	}
	return out
}

// ByFocus returns all profiles with the given work-style focus.
func ByFocus(f Focus) []*Characteristics {
	var out []*Characteristics
	for _, code := range order {
		if p := registry[code]; p.WorkStyle.Focus == f {
			out = append(out, p)
		}
	}
	return out
}

// ByPace returns all profiles with the given work-style pace.
func ByPace(p Pace) []*Characteristics {
	var out []*Characteristics
	for _, code := range order {
		if e := registry[code]; e.WorkStyle.Pace == p {
			out = append(out, e)
		}
	}
	return out
}
