package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/ledgerlens/internal/adapter/http/dto"
	"github.com/iho/ledgerlens/internal/adapter/http/session"
	"github.com/iho/ledgerlens/internal/infrastructure/metrics"
	"github.com/iho/ledgerlens/internal/sankey"
	"github.com/iho/ledgerlens/internal/usecase"
)

// SankeyHandler handles sankey drill-down HTTP requests. The model is
// rebuilt from the cashflow view on every request; only the drill-down
// state lives in the session store.
type SankeyHandler struct {
	cashflowUC CashflowService
	sessions   *session.Store
	metrics    *metrics.Metrics
}

// NewSankeyHandler creates a new SankeyHandler.
func NewSankeyHandler(cashflowUC CashflowService, sessions *session.Store, m *metrics.Metrics) *SankeyHandler {
	return &SankeyHandler{
		cashflowUC: cashflowUC,
		sessions:   sessions,
		metrics:    m,
	}
}

// CreateSession registers a new drill-down session.
func (h *SankeyHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
	}

	state := sankey.NewState()
	if req.LeftLevelDefault > 0 {
		state.LeftLevelDefault = req.LeftLevelDefault
	}
	if req.RightLevelDefault > 0 {
		state.RightLevelDefault = req.RightLevelDefault
	}
	state.AllowNegativeDiff = req.AllowNegativeDiff

	id := h.sessions.Create(state)
	h.observeSessions()

	writeJSON(w, http.StatusCreated, dto.SessionResponse{SessionID: id})
}

// Model builds the flow graph for the session's current drill-down
// state.
func (h *SankeyHandler) Model(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	view, err := h.cashflowUC.Execute(r.Context(), usecase.CashflowInput{
		Period:         period,
		TargetCurrency: r.URL.Query().Get("currency"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute cashflow", err.Error())
		return
	}

	var resp dto.SankeyModelResponse
	err = h.sessions.With(chi.URLParam(r, "id"), func(state *sankey.State) error {
		resp = dto.SankeyModelFromDomain(sankey.BuildModel(view, state))
		return nil
	})
	if err != nil {
		writeError(w, mapDomainError(err), "session lookup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Click applies a node click to the session state. The model the
// indices refer to is rebuilt from the same period the client
// rendered, so the request carries the period again.
func (h *SankeyHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req dto.ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	view, err := h.cashflowUC.Execute(r.Context(), usecase.CashflowInput{
		Period:         period,
		TargetCurrency: r.URL.Query().Get("currency"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute cashflow", err.Error())
		return
	}

	var changed bool
	err = h.sessions.With(chi.URLParam(r, "id"), func(state *sankey.State) error {
		model := sankey.BuildModel(view, state)
		changed = sankey.ApplyClick(state, model, req.NodeIndex)
		return nil
	})
	if err != nil {
		writeError(w, mapDomainError(err), "session lookup failed", err.Error())
		return
	}

	if h.metrics != nil {
		outcome := "noop"
		if changed {
			outcome = "advanced"
		}
		h.metrics.SankeyClicks.WithLabelValues(outcome).Inc()
	}

	writeJSON(w, http.StatusOK, dto.ClickResponse{Changed: changed})
}

// Reset reverts drill-down state, either everything or only the last
// clicked branch.
func (h *SankeyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Scope != "all" && req.Scope != "last" {
		writeError(w, http.StatusBadRequest, "invalid reset scope", "scope must be \"all\" or \"last\"")
		return
	}

	err := h.sessions.With(chi.URLParam(r, "id"), func(state *sankey.State) error {
		if req.Scope == "all" {
			state.ResetAll()
		} else {
			state.ResetLastBranch()
		}
		return nil
	})
	if err != nil {
		writeError(w, mapDomainError(err), "session lookup failed", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteSession removes a drill-down session.
func (h *SankeyHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(chi.URLParam(r, "id"))
	h.observeSessions()
	w.WriteHeader(http.StatusNoContent)
}

func (h *SankeyHandler) observeSessions() {
	if h.metrics != nil {
		h.metrics.SankeySessions.Set(float64(h.sessions.Len()))
	}
}
