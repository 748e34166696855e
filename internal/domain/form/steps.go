package form

// StepMeta is the derived completeness record of one wizard step. It is
// recomputed from the values on every change and never stored.
type StepMeta struct {
	Step     int      `json:"step"`
	Required []string `json:"required_field_paths"`
	Missing  []string `json:"missing_field_paths"`
}

// RequiredMap declares, per step index, the field paths that step needs
// before it counts as complete. Steps absent from the map (a notes step,
// a review step) always report zero missing.
type RequiredMap map[int][]string

// ComputeStepMeta walks the required paths of every step against the
// values and reports what is missing. Missing is always a subset of
// Required.
func ComputeStepMeta(v Values, required RequiredMap, totalSteps int) []StepMeta {
	m := v.AsMap()
	out := make([]StepMeta, 0, totalSteps)
	for s := 1; s <= totalSteps; s++ {
		paths := required[s]
		meta := StepMeta{Step: s, Required: paths, Missing: []string{}}
		for _, p := range paths {
			if !Present(m, p) {
				meta.Missing = append(meta.Missing, p)
			}
		}
		out = append(out, meta)
	}
	return out
}

// Navigable reports whether the user may move to step n: any step up to
// one beyond the furthest visited, never further.
func Navigable(n, highestVisited int) bool {
	return n >= 1 && n <= highestVisited+1
}

// Complete reports whether step n has been visited and has no missing
// required fields.
func Complete(meta []StepMeta, n, highestVisited int) bool {
	if n > highestVisited {
		return false
	}
	for _, m := range meta {
		if m.Step == n {
			return len(m.Missing) == 0
		}
	}
	return false
}
