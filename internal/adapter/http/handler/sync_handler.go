package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/ledgerlens/internal/adapter/http/dto"
	"github.com/iho/ledgerlens/internal/infrastructure/metrics"
)

// SyncService defines the behavior needed for account sync requests.
type SyncService interface {
	Execute(ctx context.Context) (int, error)
}

// SyncHandler handles analytics mirror refresh requests.
type SyncHandler struct {
	syncUC  SyncService
	metrics *metrics.Metrics
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncUC SyncService, m *metrics.Metrics) *SyncHandler {
	return &SyncHandler{syncUC: syncUC, metrics: m}
}

// Accounts rebuilds the analytics account mirror from the ledger.
func (h *SyncHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	count, err := h.syncUC.Execute(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "account sync failed", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.AccountsSynced.Add(float64(count))
		h.metrics.SyncDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusOK, dto.SyncResponse{AccountsWritten: count})
}
