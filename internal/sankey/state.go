// Package sankey builds the drill-down flow graph over a cashflow
// view: left (incoming) nodes into a middle assets node into right
// (outgoing) nodes, with optional surplus and deficit nodes.
package sankey

// Side places a node in one of the three graph columns.
type Side string

const (
	SideLeft   Side = "L"
	SideMiddle Side = "M"
	SideRight  Side = "R"
)

// State is the per-session drill-down state. It has exactly one
// writer at a time: the session that owns it drives one click per
// rebuild, so the caller must not share an instance across sessions.
// Only ApplyClick and the explicit resets mutate it; rebuilding a
// model never does.
type State struct {
	LeftLevelDefault  int
	RightLevelDefault int
	LeftFocus         map[string]int
	RightFocus        map[string]int
	AllowNegativeDiff bool
	LastClickedSide   Side
	LastClickedRoot   string
}

// NewState creates a drill-down state with both sides at depth 1.
func NewState() *State {
	return &State{
		LeftLevelDefault:  1,
		RightLevelDefault: 1,
		LeftFocus:         make(map[string]int),
		RightFocus:        make(map[string]int),
	}
}

// ResetAll returns every root to its default depth and clears the
// last-clicked marker.
func (s *State) ResetAll() {
	s.LeftFocus = make(map[string]int)
	s.RightFocus = make(map[string]int)
	s.LastClickedSide = ""
	s.LastClickedRoot = ""
}

// ResetLastBranch reverts only the most recently clicked root to its
// default depth. No-op when nothing was clicked.
func (s *State) ResetLastBranch() {
	if s.LastClickedSide == "" || s.LastClickedRoot == "" {
		return
	}
	if s.LastClickedSide == SideLeft {
		delete(s.LeftFocus, s.LastClickedRoot)
	} else {
		delete(s.RightFocus, s.LastClickedRoot)
	}
}
