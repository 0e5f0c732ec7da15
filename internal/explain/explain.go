// Package explain renders the audit explanation of why a case failed.
// Output depends only on the case; timestamps are the caller's concern.
package explain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tracecase/trace/internal/ledger"
)

// maxCitedBreaches caps how many FedEx breach descriptions are quoted.
const maxCitedBreaches = 2

const (
	secondaryDelayClause = "Secondary delay caused by undocumented customer communications."
	sopClause            = "SOP Step 3 (timely document provision) and Step 5 (escalation triggers) were not met."
)

var printer = message.NewPrinter(language.English)

// Facts are the ledger filters the explanation is built from, each in
// ledger order.
type Facts struct {
	Breaches        []ledger.ActionEvent
	MissingEvidence []ledger.ActionEvent
	DCAActions      []ledger.ActionEvent
	FedExBreaches   []ledger.ActionEvent
}

// Derive computes Facts for c.
func Derive(c *ledger.Case) Facts {
	var f Facts
	for _, ev := range c.Events() {
		if ev.Breach {
			f.Breaches = append(f.Breaches, ev)
			if ev.Actor == ledger.ActorFedEx {
				f.FedExBreaches = append(f.FedExBreaches, ev)
			}
		}
		if !ev.HasEvidence {
			f.MissingEvidence = append(f.MissingEvidence, ev)
		}
		if ev.Actor == ledger.ActorDCA {
			f.DCAActions = append(f.DCAActions, ev)
		}
	}
	return f
}

// Explain returns the fixed-template explanation for c.
func Explain(c *ledger.Case) string {
	f := Derive(c)
	days := c.LastDay()

	clauses := []string{
		fmt.Sprintf("Case %s ($%s) escalated after %d days.", c.ID(), FormatAmount(c.Amount()), days),
	}

	if n := len(f.FedExBreaches); n > 0 {
		cited := f.FedExBreaches[:min(n, maxCitedBreaches)]
		descs := make([]string, 0, len(cited))
		for _, ev := range cited {
			descs = append(descs, ev.Description)
		}
		clauses = append(clauses, fmt.Sprintf("FedEx failed %d SLA milestones: %s.", n, strings.Join(descs, "; ")))
	}

	if len(f.MissingEvidence) > 0 {
		gap := f.MissingEvidence[0]
		clauses = append(clauses, fmt.Sprintf("Critical evidence gap on Day %d: %s.", gap.Day, gap.Description))
	}

	clauses = append(clauses, fmt.Sprintf("Of %d days, DCA %s completed %d documented actions.",
		days, c.AssignedDCA(), len(f.DCAActions)))

	if n := len(f.FedExBreaches); n > 0 {
		clauses = append(clauses, fmt.Sprintf("Primary delay caused by FedEx (%d SLA breaches).", n))
	}
	if len(f.MissingEvidence) > 0 {
		clauses = append(clauses, secondaryDelayClause)
	}
	clauses = append(clauses, sopClause)

	return strings.Join(clauses, " ")
}

// FormatAmount renders a monetary amount with two decimals and thousands
// separators, e.g. 125,500.00.
func FormatAmount(amount decimal.Decimal) string {
	return printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
