// Package httpapi exposes the rule layer and the drafter over HTTP.
package httpapi

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/lawmaster-kr/lawmaster/internal/casefile"
	"github.com/lawmaster-kr/lawmaster/internal/docstore"
	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/jurisdiction"
	"github.com/lawmaster-kr/lawmaster/internal/litigation"
	"github.com/lawmaster-kr/lawmaster/internal/scenario"
)

type Server struct {
	drafter *draft.Drafter
	store   *docstore.Store
}

// NewServer wires the handlers. Both drafter and store may be nil; the
// affected endpoints then answer 503.
func NewServer(drafter *draft.Drafter, store *docstore.Store) http.Handler {
	s := &Server{drafter: drafter, store: store}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/court/resolve", s.handleCourtResolve)
	mux.HandleFunc("/v1/scenario/classify", s.handleScenarioClassify)
	mux.HandleFunc("/v1/costs", s.handleCosts)
	mux.HandleFunc("/v1/timeline", s.handleTimeline)
	mux.HandleFunc("/v1/draft", s.handleDraft)
	mux.HandleFunc("/v1/cases", s.handleCases)
	mux.HandleFunc("/v1/cases/", s.handleCaseByID)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	return blob, nil
}

func decodeJSONBytes(blob []byte, dst any) error {
	return json.Unmarshal(blob, dst)
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleCourtResolve(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Address  string `json:"address"`
		Category string `json:"category"`
	}
	if err := decodeJSONBytes(blob, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"court": jurisdiction.Resolve(req.Address, req.Category),
	})
}

func (s *Server) handleScenarioClassify(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Facts string `json:"facts"`
	}
	if err := decodeJSONBytes(blob, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	def := scenario.Classify(req.Facts)
	writeJSON(w, http.StatusOK, map[string]any{
		"kind":  string(def.Kind),
		"label": def.Label,
	})
}

func (s *Server) handleCosts(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Amount string `json:"amount"`
	}
	if err := decodeJSONBytes(blob, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, litigation.ComputeCostsInput(req.Amount))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Amount string `json:"amount"`
		Start  string `json:"start"`
	}
	if err := decodeJSONBytes(blob, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start := time.Now()
	if strings.TrimSpace(req.Start) != "" {
		parsed, err := time.Parse("2006-01-02", req.Start)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start must be YYYY-MM-DD")
			return
		}
		start = parsed
	}
	steps, costs := litigation.ProjectTimeline(litigation.ParseAmount(req.Amount), start)
	writeJSON(w, http.StatusOK, map[string]any{
		"steps": steps,
		"costs": costs,
	})
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.drafter == nil {
		writeError(w, http.StatusServiceUnavailable, "drafting model not configured")
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Menu      string `json:"menu"`
		Address   string `json:"address"`
		Court     string `json:"court"`
		Plaintiff string `json:"plaintiff"`
		Defendant string `json:"defendant"`
		Amount    string `json:"amount"`
		Facts     string `json:"facts"`
		Evidence  string `json:"evidence"`
		CaseID    string `json:"case_id"`
	}
	if err := decodeJSONBytes(blob, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.drafter.Document(r.Context(), draft.Request{
		Menu:      req.Menu,
		Address:   req.Address,
		Court:     req.Court,
		Plaintiff: req.Plaintiff,
		Defendant: req.Defendant,
		Amount:    req.Amount,
		Facts:     req.Facts,
		Evidence:  req.Evidence,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	draftID := ""
	if s.store != nil {
		id, err := s.store.SaveDraft(req.CaseID, res)
		if err != nil {
			log.Printf("lawmaster draft_persist_error case_id=%s err=%v", req.CaseID, err)
		} else {
			draftID = id
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"draft_id": draftID,
		"result":   res,
	})
}

func (s *Server) handleCases(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "case store not configured")
		return
	}
	switch r.Method {
	case http.MethodGet:
		cases, err := s.store.ListCases()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"cases": cases})
	case http.MethodPost:
		blob, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var req struct {
			CaseID string          `json:"case_id"`
			Record casefile.Record `json:"record"`
		}
		if err := decodeJSONBytes(blob, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, err := s.store.SaveCase(req.CaseID, req.Record)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"case_id": id})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCaseByID(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "case store not configured")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/cases/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "case id required")
		return
	}
	c, err := s.store.GetCase(id)
	if errors.Is(err, docstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "case not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	drafts, err := s.store.ListDrafts(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"case": c, "drafts": drafts})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":             true,
		"drafting_ready": s.drafter != nil,
		"store_ready":    s.store != nil,
	})
}
