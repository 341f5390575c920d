package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerlens/internal/adapter/http/session"
	"github.com/iho/ledgerlens/internal/domain"
)

func sankeyTestRouter(cashflow *stubCashflowService) (*chi.Mux, *session.Store) {
	sessions := session.NewStore(time.Hour)
	h := NewSankeyHandler(cashflow, sessions, nil)

	r := chi.NewRouter()
	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/{id}/model", h.Model)
	r.Post("/sessions/{id}/click", h.Click)
	r.Post("/sessions/{id}/reset", h.Reset)
	r.Delete("/sessions/{id}", h.DeleteSession)
	return r, sessions
}

func surplusView() domain.CashflowView {
	return domain.CashflowView{
		Summary: domain.CashflowSummary{
			TotalIn:      decimal.NewFromInt(120),
			TotalOut:     decimal.NewFromInt(100),
			CurrencyCode: "EUR",
		},
		Incoming: []domain.CashflowItem{
			{AccountFullName: "Revenus:Salaire", Amount: decimal.NewFromInt(120)},
		},
		Outgoing: []domain.CashflowItem{
			{AccountFullName: "Depenses:Courses", Amount: decimal.NewFromInt(40)},
			{AccountFullName: "Depenses:Loyer", Amount: decimal.NewFromInt(60)},
		},
	}
}

func createSession(t *testing.T, router *chi.Mux, body string) string {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/sessions", reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("expected a session id")
	}
	return resp.SessionID
}

type sankeyModelResp struct {
	Nodes []struct {
		Index int     `json:"index"`
		Key   string  `json:"key"`
		Label string  `json:"label"`
		Side  string  `json:"side"`
		X     float64 `json:"x"`
	} `json:"nodes"`
	Links []struct {
		Source int    `json:"source"`
		Target int    `json:"target"`
		Value  string `json:"value"`
	} `json:"links"`
}

func getModel(t *testing.T, router *chi.Mux, id string) sankeyModelResp {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/model", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("model status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp sankeyModelResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	return resp
}

func TestSankeyHandler_ModelRoundTrip(t *testing.T) {
	router, _ := sankeyTestRouter(&stubCashflowService{view: surplusView()})
	id := createSession(t, router, "")

	model := getModel(t, router, id)

	keys := make(map[string]int)
	for _, n := range model.Nodes {
		keys[n.Key] = n.Index
	}
	for _, want := range []string{"L:Revenus", "M:ASSETS", "R:Depenses", "R:SAVINGS"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("missing node %q in %v", want, keys)
		}
	}
	if len(model.Links) != 3 {
		t.Errorf("expected 3 links, got %d", len(model.Links))
	}
}

func TestSankeyHandler_ClickAdvancesDrillDown(t *testing.T) {
	router, _ := sankeyTestRouter(&stubCashflowService{view: surplusView()})
	id := createSession(t, router, "")

	model := getModel(t, router, id)
	var depensesIdx = -1
	for _, n := range model.Nodes {
		if n.Key == "R:Depenses" {
			depensesIdx = n.Index
		}
	}
	if depensesIdx < 0 {
		t.Fatal("R:Depenses node not found")
	}

	body, _ := json.Marshal(map[string]int{"node_index": depensesIdx})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/click", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("click status = %d: %s", rec.Code, rec.Body.String())
	}
	var clickResp struct {
		Changed bool `json:"changed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &clickResp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !clickResp.Changed {
		t.Fatal("expected the click to change state")
	}

	// The next model shows the expanded branch.
	model = getModel(t, router, id)
	found := false
	for _, n := range model.Nodes {
		if n.Key == "R:Depenses:Loyer" {
			found = true
		}
	}
	if !found {
		t.Error("expected expanded Depenses nodes after click")
	}
}

func TestSankeyHandler_ResetRestoresDefaults(t *testing.T) {
	router, _ := sankeyTestRouter(&stubCashflowService{view: surplusView()})
	id := createSession(t, router, "")

	model := getModel(t, router, id)
	for _, n := range model.Nodes {
		if n.Key == "R:Depenses" {
			body, _ := json.Marshal(map[string]int{"node_index": n.Index})
			req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/click", strings.NewReader(string(body)))
			router.ServeHTTP(httptest.NewRecorder(), req)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/reset", strings.NewReader(`{"scope":"all"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reset status = %d: %s", rec.Code, rec.Body.String())
	}

	model = getModel(t, router, id)
	for _, n := range model.Nodes {
		if n.Key == "R:Depenses:Loyer" {
			t.Error("drill-down should have been reset")
		}
	}
}

func TestSankeyHandler_ResetRejectsUnknownScope(t *testing.T) {
	router, _ := sankeyTestRouter(&stubCashflowService{view: surplusView()})
	id := createSession(t, router, "")

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/reset", strings.NewReader(`{"scope":"everything"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSankeyHandler_UnknownSession(t *testing.T) {
	router, _ := sankeyTestRouter(&stubCashflowService{view: surplusView()})

	req := httptest.NewRequest(http.MethodGet, "/sessions/nope/model", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSankeyHandler_DeleteSession(t *testing.T) {
	router, sessions := sankeyTestRouter(&stubCashflowService{view: surplusView()})
	id := createSession(t, router, "")

	req := httptest.NewRequest(http.MethodDelete, "/sessions/"+id, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if sessions.Len() != 0 {
		t.Errorf("sessions len = %d, want 0", sessions.Len())
	}
}

func TestSankeyHandler_SessionOptions(t *testing.T) {
	view := domain.CashflowView{
		Summary: domain.CashflowSummary{
			TotalIn:      decimal.NewFromInt(50),
			TotalOut:     decimal.NewFromInt(80),
			CurrencyCode: "EUR",
		},
		Incoming: []domain.CashflowItem{
			{AccountFullName: "Revenus:Salaire", Amount: decimal.NewFromInt(50)},
		},
		Outgoing: []domain.CashflowItem{
			{AccountFullName: "Depenses:Loyer", Amount: decimal.NewFromInt(80)},
		},
	}
	router, _ := sankeyTestRouter(&stubCashflowService{view: view})
	id := createSession(t, router, `{"allow_negative_diff":true,"right_level_default":2}`)

	model := getModel(t, router, id)

	keys := make(map[string]bool)
	for _, n := range model.Nodes {
		keys[n.Key] = true
	}
	if !keys["L:DEFICIT"] {
		t.Error("expected the deficit node when allow_negative_diff is set")
	}
	if !keys["R:Depenses:Loyer"] {
		t.Error("expected right side grouped at depth 2")
	}
}
