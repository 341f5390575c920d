package dto

// CreateSessionRequest configures a new sankey drill-down session.
// Zero levels fall back to depth 1.
type CreateSessionRequest struct {
	LeftLevelDefault  int  `json:"left_level_default"`
	RightLevelDefault int  `json:"right_level_default"`
	AllowNegativeDiff bool `json:"allow_negative_diff"`
}

// ClickRequest identifies a clicked sankey node by model index.
type ClickRequest struct {
	NodeIndex int `json:"node_index"`
}

// ResetRequest selects which drill-down state to reset.
type ResetRequest struct {
	// Scope is "all" or "last".
	Scope string `json:"scope"`
}
