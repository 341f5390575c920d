package dto

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/sankey"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DiagnosticResponse is one skipped or suspect row surfaced to the
// client.
type DiagnosticResponse struct {
	Reason      string `json:"reason"`
	CommodityID string `json:"commodity_id,omitempty"`
	Mnemonic    string `json:"mnemonic,omitempty"`
	AccountType string `json:"account_type,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// DiagnosticsFromDomain converts diagnostics for a response.
func DiagnosticsFromDomain(diags []domain.Diagnostic) []DiagnosticResponse {
	return lo.Map(diags, func(d domain.Diagnostic, _ int) DiagnosticResponse {
		return DiagnosticResponse{
			Reason:      string(d.Reason),
			CommodityID: d.CommodityID,
			Mnemonic:    d.Mnemonic,
			AccountType: d.AccountType,
			Detail:      d.Detail,
		}
	})
}

// NetWorthResponse represents a net worth summary.
type NetWorthResponse struct {
	AssetTotal     decimal.Decimal      `json:"asset_total"`
	LiabilityTotal decimal.Decimal      `json:"liability_total"`
	NetWorth       decimal.Decimal      `json:"net_worth"`
	CurrencyCode   string               `json:"currency_code"`
	Diagnostics    []DiagnosticResponse `json:"diagnostics,omitempty"`
}

// NetWorthFromDomain converts a domain summary to a response.
func NetWorthFromDomain(summary domain.NetWorthSummary, diags []domain.Diagnostic) NetWorthResponse {
	return NetWorthResponse{
		AssetTotal:     summary.AssetTotal,
		LiabilityTotal: summary.LiabilityTotal,
		NetWorth:       summary.NetWorth,
		CurrencyCode:   summary.CurrencyCode,
		Diagnostics:    DiagnosticsFromDomain(diags),
	}
}

// AssetCategoryResponse is one category line of the breakdown.
type AssetCategoryResponse struct {
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	ParentCategory string          `json:"parent_category,omitempty"`
}

// AssetBreakdownResponse represents the asset category breakdown.
type AssetBreakdownResponse struct {
	CurrencyCode string                  `json:"currency_code"`
	Categories   []AssetCategoryResponse `json:"categories"`
	Diagnostics  []DiagnosticResponse    `json:"diagnostics,omitempty"`
}

// AssetBreakdownFromDomain converts a domain breakdown to a response.
func AssetBreakdownFromDomain(breakdown domain.AssetCategoryBreakdown, diags []domain.Diagnostic) AssetBreakdownResponse {
	return AssetBreakdownResponse{
		CurrencyCode: breakdown.CurrencyCode,
		Categories: lo.Map(breakdown.Categories, func(c domain.AssetCategoryAmount, _ int) AssetCategoryResponse {
			return AssetCategoryResponse{
				Category:       c.Category,
				Amount:         c.Amount,
				ParentCategory: c.ParentCategory,
			}
		}),
		Diagnostics: DiagnosticsFromDomain(diags),
	}
}

// CashflowItemResponse is one per-account cashflow line.
type CashflowItemResponse struct {
	AccountFullName string          `json:"account_full_name"`
	Amount          decimal.Decimal `json:"amount"`
	TopParentName   string          `json:"top_parent_name,omitempty"`
}

// CashflowResponse represents a cashflow view.
type CashflowResponse struct {
	TotalIn      decimal.Decimal        `json:"total_in"`
	TotalOut     decimal.Decimal        `json:"total_out"`
	Difference   decimal.Decimal        `json:"difference"`
	CurrencyCode string                 `json:"currency_code"`
	Incoming     []CashflowItemResponse `json:"incoming"`
	Outgoing     []CashflowItemResponse `json:"outgoing"`
}

// CashflowFromDomain converts a domain view to a response.
func CashflowFromDomain(view domain.CashflowView) CashflowResponse {
	toItems := func(items []domain.CashflowItem) []CashflowItemResponse {
		return lo.Map(items, func(item domain.CashflowItem, _ int) CashflowItemResponse {
			return CashflowItemResponse{
				AccountFullName: item.AccountFullName,
				Amount:          item.Amount,
				TopParentName:   item.TopParentName,
			}
		})
	}

	return CashflowResponse{
		TotalIn:      view.Summary.TotalIn,
		TotalOut:     view.Summary.TotalOut,
		Difference:   view.Summary.Difference(),
		CurrencyCode: view.Summary.CurrencyCode,
		Incoming:     toItems(view.Incoming),
		Outgoing:     toItems(view.Outgoing),
	}
}

// SankeyNodeResponse is one renderable node with its fixed position.
type SankeyNodeResponse struct {
	Index int     `json:"index"`
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Side  string  `json:"side"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// SankeyLinkResponse is one flow edge.
type SankeyLinkResponse struct {
	Source int             `json:"source"`
	Target int             `json:"target"`
	Value  decimal.Decimal `json:"value"`
}

// SankeyModelResponse is the renderable sankey graph.
type SankeyModelResponse struct {
	Nodes []SankeyNodeResponse `json:"nodes"`
	Links []SankeyLinkResponse `json:"links"`
}

// SankeyModelFromDomain converts a sankey model plus layout to a
// response.
func SankeyModelFromDomain(model *sankey.Model) SankeyModelResponse {
	positions := sankey.NodePositions(model)

	nodes := make([]SankeyNodeResponse, 0, len(model.NodeKeys))
	for i, key := range model.NodeKeys {
		nodes = append(nodes, SankeyNodeResponse{
			Index: i,
			Key:   key,
			Label: model.NodeLabels[i],
			Side:  string(model.SideByKey[key]),
			X:     positions[i].X,
			Y:     positions[i].Y,
		})
	}

	links := lo.Map(model.Links, func(link sankey.Link, _ int) SankeyLinkResponse {
		return SankeyLinkResponse{
			Source: link.Source,
			Target: link.Target,
			Value:  link.Value,
		}
	})

	return SankeyModelResponse{Nodes: nodes, Links: links}
}

// SessionResponse returns a created session's ID.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// ClickResponse reports whether a click changed the drill-down state.
type ClickResponse struct {
	Changed bool `json:"changed"`
}

// SyncResponse reports the outcome of an account sync run.
type SyncResponse struct {
	AccountsWritten int `json:"accounts_written"`
}
