package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/ledgerlens/internal/adapter/http/dto"
	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/infrastructure/metrics"
	"github.com/iho/ledgerlens/internal/usecase"
)

// NetWorthService defines the behavior needed for net worth reports.
type NetWorthService interface {
	Execute(ctx context.Context, input usecase.NetWorthInput) (domain.NetWorthSummary, []domain.Diagnostic, error)
}

// AssetBreakdownService defines the behavior needed for asset
// category reports.
type AssetBreakdownService interface {
	Execute(ctx context.Context, input usecase.AssetBreakdownInput) (domain.AssetCategoryBreakdown, []domain.Diagnostic, error)
}

// CashflowService defines the behavior needed for cashflow reports.
type CashflowService interface {
	Execute(ctx context.Context, input usecase.CashflowInput) (domain.CashflowView, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	netWorthUC NetWorthService
	assetsUC   AssetBreakdownService
	cashflowUC CashflowService
	metrics    *metrics.Metrics
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(netWorthUC NetWorthService, assetsUC AssetBreakdownService, cashflowUC CashflowService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{
		netWorthUC: netWorthUC,
		assetsUC:   assetsUC,
		cashflowUC: cashflowUC,
		metrics:    m,
	}
}

// NetWorth computes the net worth summary for a period.
func (h *ReportHandler) NetWorth(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()
	summary, diags, err := h.netWorthUC.Execute(r.Context(), usecase.NetWorthInput{
		Period:         period,
		TargetCurrency: r.URL.Query().Get("currency"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute net worth", err.Error())
		return
	}
	h.observeReport("networth", start, diags)

	writeJSON(w, http.StatusOK, dto.NetWorthFromDomain(summary, diags))
}

// Assets computes the asset category breakdown for a period.
func (h *ReportHandler) Assets(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()
	breakdown, diags, err := h.assetsUC.Execute(r.Context(), usecase.AssetBreakdownInput{
		Period:         period,
		TargetCurrency: r.URL.Query().Get("currency"),
		AssetRoot:      r.URL.Query().Get("root"),
		Level:          parseIntQuery(r, "level", 1),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute asset breakdown", err.Error())
		return
	}
	h.observeReport("assets", start, diags)

	writeJSON(w, http.StatusOK, dto.AssetBreakdownFromDomain(breakdown, diags))
}

// Cashflow computes incoming and outgoing totals for a period.
func (h *ReportHandler) Cashflow(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()
	view, err := h.cashflowUC.Execute(r.Context(), usecase.CashflowInput{
		Period:         period,
		TargetCurrency: r.URL.Query().Get("currency"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute cashflow", err.Error())
		return
	}
	h.observeReport("cashflow", start, nil)

	writeJSON(w, http.StatusOK, dto.CashflowFromDomain(view))
}

func (h *ReportHandler) observeReport(report string, start time.Time, diags []domain.Diagnostic) {
	if h.metrics == nil {
		return
	}
	h.metrics.ReportsComputed.WithLabelValues(report).Inc()
	h.metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	for _, d := range diags {
		h.metrics.RowsSkipped.WithLabelValues(report, string(d.Reason)).Inc()
	}
}
