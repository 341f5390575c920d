package sankey

// ApplyClick advances the drill-down depth for the root owning the
// clicked node and reports whether the state changed. Clicks on the
// middle, savings, or deficit nodes are no-ops. A click on a root
// already at its maximum observed depth does not advance but is still
// recorded as the last click, so ResetLastBranch can revert it.
func ApplyClick(state *State, model *Model, nodeIndex int) bool {
	key, ok := model.KeyByIndex[nodeIndex]
	if !ok {
		return false
	}
	side := model.SideByKey[key]
	root := model.RootByKey[key]
	if (side != SideLeft && side != SideRight) || root == "" {
		return false
	}

	focus := state.LeftFocus
	defaultLevel := state.LeftLevelDefault
	maxDepthByRoot := model.MaxDepthLeftByRoot
	if side == SideRight {
		focus = state.RightFocus
		defaultLevel = state.RightLevelDefault
		maxDepthByRoot = model.MaxDepthRightByRoot
	}

	currentLevel, ok := focus[root]
	if !ok {
		currentLevel = defaultLevel
	}
	maxDepth, ok := maxDepthByRoot[root]
	if !ok {
		maxDepth = currentLevel
	}

	state.LastClickedSide = side
	state.LastClickedRoot = root
	if currentLevel >= maxDepth {
		return false
	}

	focus[root] = currentLevel + 1
	return true
}
