package sankey

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerlens/internal/domain"
)

// Node key prefixes keep left and right nodes with identical display
// labels from colliding (two roots can both contain an "Other"
// segment).
const (
	leftPrefix   = "L:"
	middlePrefix = "M:"
	rightPrefix  = "R:"
)

// Fixed node labels. The middle node represents the tracked asset
// accounts the cashflow was computed against.
const (
	MiddleLabel  = "Actifs sélectionnés"
	SavingsLabel = "Épargne / Excédent"
	DeficitLabel = "Déficit"
)

// Keys for the fixed nodes.
const (
	MiddleKey  = middlePrefix + "ASSETS"
	SavingsKey = rightPrefix + "SAVINGS"
	DeficitKey = leftPrefix + "DEFICIT"
)

// Link is one edge of the flow graph; Value is non-negative.
type Link struct {
	Source int
	Target int
	Value  decimal.Decimal
}

// Model is the renderable graph with stable integer node indices in
// creation order, plus the lookup maps ApplyClick needs to decode a
// clicked index back into a side and root.
type Model struct {
	NodeLabels          []string
	NodeKeys            []string
	Links               []Link
	KeyByIndex          map[int]string
	SideByKey           map[string]Side
	RootByKey           map[string]string
	MaxDepthLeftByRoot  map[string]int
	MaxDepthRightByRoot map[string]int
}

// ParseAccountPath splits a full account name into trimmed, non-empty
// path segments.
func ParseAccountPath(accountFullName string) []string {
	var parts []string
	for _, part := range strings.Split(accountFullName, domain.AccountPathDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// LevelKey joins path segments up to depth n (1-based, clamped to the
// available length).
func LevelKey(parts []string, n int) string {
	if len(parts) == 0 {
		return ""
	}
	depth := max(1, min(n, len(parts)))
	return strings.Join(parts[:depth], domain.AccountPathDelimiter)
}

type group struct {
	key    string
	amount decimal.Decimal
	root   string
}

// groupItemsByLevel buckets items by their account path truncated to
// the per-root focus depth (default level when a root has no focus
// entry). It also reports the deepest path seen per root, which
// bounds how far that root can be drilled.
func groupItemsByLevel(
	items []domain.CashflowItem,
	focusByRoot map[string]int,
	defaultLevel int,
) ([]group, map[string]int) {
	var order []string
	totals := make(map[string]decimal.Decimal)
	rootByGroup := make(map[string]string)
	maxDepthByRoot := make(map[string]int)

	for _, item := range items {
		parts := ParseAccountPath(item.AccountFullName)
		if len(parts) == 0 {
			continue
		}
		root := parts[0]
		if len(parts) > maxDepthByRoot[root] {
			maxDepthByRoot[root] = len(parts)
		}
		requestedDepth, ok := focusByRoot[root]
		if !ok {
			requestedDepth = defaultLevel
		}
		key := LevelKey(parts, requestedDepth)
		if _, ok := totals[key]; !ok {
			order = append(order, key)
			rootByGroup[key] = root
		}
		totals[key] = totals[key].Add(item.Amount)
	}

	grouped := make([]group, 0, len(order))
	for _, key := range order {
		grouped = append(grouped, group{
			key:    key,
			amount: totals[key],
			root:   rootByGroup[key],
		})
	}
	return grouped, maxDepthByRoot
}

type modelBuilder struct {
	model      *Model
	indexByKey map[string]int
}

// addNode interns a node by key and returns its index. Re-adding an
// existing key returns the existing index unchanged.
func (b *modelBuilder) addNode(key, label string, side Side, root string) int {
	if idx, ok := b.indexByKey[key]; ok {
		return idx
	}
	idx := len(b.model.NodeKeys)
	b.model.NodeKeys = append(b.model.NodeKeys, key)
	b.model.NodeLabels = append(b.model.NodeLabels, label)
	b.model.KeyByIndex[idx] = key
	b.model.SideByKey[key] = side
	b.model.RootByKey[key] = root
	b.indexByKey[key] = idx
	return idx
}

// BuildModel turns a cashflow view plus drill-down state into a
// three-column flow graph. The state is read-only here; repeated
// calls with the same inputs produce the same model.
func BuildModel(view domain.CashflowView, state *State) *Model {
	incomingGrouped, maxDepthLeft := groupItemsByLevel(
		view.Incoming, state.LeftFocus, state.LeftLevelDefault)
	outgoingGrouped, maxDepthRight := groupItemsByLevel(
		view.Outgoing, state.RightFocus, state.RightLevelDefault)

	b := &modelBuilder{
		model: &Model{
			KeyByIndex:          make(map[int]string),
			SideByKey:           make(map[string]Side),
			RootByKey:           make(map[string]string),
			MaxDepthLeftByRoot:  maxDepthLeft,
			MaxDepthRightByRoot: maxDepthRight,
		},
		indexByKey: make(map[string]int),
	}

	leftIndexByGroup := make(map[string]int, len(incomingGrouped))
	for _, g := range incomingGrouped {
		leftIndexByGroup[g.key] = b.addNode(leftPrefix+g.key, g.key, SideLeft, g.root)
	}

	middleIndex := b.addNode(MiddleKey, MiddleLabel, SideMiddle, "")

	rightIndexByGroup := make(map[string]int, len(outgoingGrouped))
	for _, g := range outgoingGrouped {
		rightIndexByGroup[g.key] = b.addNode(rightPrefix+g.key, g.key, SideRight, g.root)
	}

	diff := view.Summary.Difference()
	savingsIndex := -1
	deficitIndex := -1
	if diff.IsPositive() {
		savingsIndex = b.addNode(SavingsKey, SavingsLabel, SideRight, "")
	}
	if diff.IsNegative() && state.AllowNegativeDiff {
		deficitIndex = b.addNode(DeficitKey, DeficitLabel, SideLeft, "")
	}

	for _, g := range incomingGrouped {
		b.model.Links = append(b.model.Links, Link{
			Source: leftIndexByGroup[g.key],
			Target: middleIndex,
			Value:  g.amount,
		})
	}
	for _, g := range outgoingGrouped {
		b.model.Links = append(b.model.Links, Link{
			Source: middleIndex,
			Target: rightIndexByGroup[g.key],
			Value:  g.amount,
		})
	}
	if savingsIndex >= 0 {
		b.model.Links = append(b.model.Links, Link{
			Source: middleIndex,
			Target: savingsIndex,
			Value:  diff,
		})
	}
	if deficitIndex >= 0 {
		b.model.Links = append(b.model.Links, Link{
			Source: deficitIndex,
			Target: middleIndex,
			Value:  diff.Abs(),
		})
	}

	return b.model
}
