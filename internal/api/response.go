package api

import (
	"encoding/json"
	"net/http"

	"github.com/tracecase/trace/internal/ledger"
	"github.com/tracecase/trace/internal/responsibility"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type caseView struct {
	CaseID      string      `json:"caseId"`
	Amount      json.Number `json:"amount"`
	AssignedDCA string      `json:"assignedDCA"`
	Status      string      `json:"status"`
}

type eventView struct {
	Day         int          `json:"day"`
	Actor       ledger.Actor `json:"actor"`
	Action      string       `json:"action"`
	HasEvidence bool         `json:"hasEvidence"`
	Breach      bool         `json:"breach"`
}

type caseResponse struct {
	Case   caseView    `json:"case"`
	Ledger []eventView `json:"ledger"`
}

type caseSummary struct {
	caseView
	Events int `json:"events"`
}

type responsibilityResponse struct {
	responsibility.Timeline
	Periods []responsibility.Period `json:"periods,omitempty"`
}

type explanationResponse struct {
	Explanation string `json:"explanation"`
	GeneratedAt string `json:"generatedAt"`
}

func newCaseView(c *ledger.Case) caseView {
	return caseView{
		CaseID:      c.ID(),
		Amount:      json.Number(c.Amount().String()),
		AssignedDCA: c.AssignedDCA(),
		Status:      c.Status(),
	}
}

func newCaseResponse(c *ledger.Case) caseResponse {
	evs := c.Events()
	out := caseResponse{Case: newCaseView(c), Ledger: make([]eventView, 0, len(evs))}
	for _, ev := range evs {
		out.Ledger = append(out.Ledger, eventView{
			Day:         ev.Day,
			Actor:       ev.Actor,
			Action:      ev.Description,
			HasEvidence: ev.HasEvidence,
			Breach:      ev.Breach,
		})
	}
	return out
}
