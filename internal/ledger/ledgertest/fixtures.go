// Package ledgertest provides case fixtures shared by tests.
package ledgertest

import (
	"github.com/shopspring/decimal"

	"github.com/tracecase/trace/internal/ledger"
)

// CanonicalID is the id of the 45-day reference case.
const CanonicalID = "FDX-2025-087432"

// CanonicalEvents returns the reference ledger in its recorded order.
func CanonicalEvents() []ledger.ActionEvent {
	return []ledger.ActionEvent{
		{Day: 1, Actor: ledger.ActorDCA, Description: "Initial debtor contact attempt", HasEvidence: true},
		{Day: 1, Actor: ledger.ActorDCA, Description: "Requested account documentation from FedEx", HasEvidence: true},
		{Day: 8, Actor: ledger.ActorFedEx, Description: "Provided partial account history (7 days late)", HasEvidence: true, Breach: true},
		{Day: 8, Actor: ledger.ActorDCA, Description: "Initiated payment plan negotiation with debtor", HasEvidence: true},
		{Day: 15, Actor: ledger.ActorCustomer, Description: "Customer requested invoice clarification"},
		{Day: 30, Actor: ledger.ActorDCA, Description: "Follow-up payment plan offer sent", HasEvidence: true},
		{Day: 35, Actor: ledger.ActorFedEx, Description: "Escalation request submitted to legal team", HasEvidence: true, Breach: true},
		{Day: 45, Actor: ledger.ActorFedEx, Description: "Case escalated - no resolution achieved", HasEvidence: true, Breach: true},
	}
}

// Canonical builds the 45-day reference case.
func Canonical() *ledger.Case {
	return Build(CanonicalEvents()...)
}

// Build wraps events in a case with fixed header fields.
func Build(events ...ledger.ActionEvent) *ledger.Case {
	return ledger.NewCase(CanonicalID, decimal.NewFromInt(125500), "CollectCorp Solutions", "", events)
}
