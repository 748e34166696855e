package form

// Draft is the persisted snapshot of an in-progress wizard session.
// It is written (debounced) on every change and read back once when a
// session starts. Timestamp is epoch milliseconds; drafts older than the
// expiry window are discarded on load.
type Draft struct {
	Values         Values `json:"values"`
	Step           int    `json:"step"`
	HighestVisited int    `json:"highest_visited_step"`
	Timestamp      int64  `json:"timestamp"`
}
