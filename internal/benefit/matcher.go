package benefit

// Eligible filters the catalog down to programs the given work profile
// qualifies for. Pure and idempotent: no I/O, stable catalog order, no
// re-ranking, so results can be cached and tested in isolation.
//
// A profile without a declared region or work type matches nothing — the
// absence of profile data is "nothing to show yet", not an error.
func Eligible(region, workType string, catalog []*Program) []*Program {
	if region == "" || workType == "" {
		return nil
	}

	var matched []*Program
	for _, program := range catalog {
		if program.Covers(region, workType) {
			matched = append(matched, program)
		}
	}
	return matched
}
