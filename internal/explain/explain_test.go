package explain_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tracecase/trace/internal/explain"
	"github.com/tracecase/trace/internal/ledger"
	"github.com/tracecase/trace/internal/ledger/ledgertest"
)

const sop = "SOP Step 3 (timely document provision) and Step 5 (escalation triggers) were not met."

func TestExplain_CanonicalCase(t *testing.T) {
	got := explain.Explain(ledgertest.Canonical())

	want := "Case FDX-2025-087432 ($125,500.00) escalated after 45 days. " +
		"FedEx failed 3 SLA milestones: Provided partial account history (7 days late); Escalation request submitted to legal team. " +
		"Critical evidence gap on Day 15: Customer requested invoice clarification. " +
		"Of 45 days, DCA CollectCorp Solutions completed 4 documented actions. " +
		"Primary delay caused by FedEx (3 SLA breaches). " +
		"Secondary delay caused by undocumented customer communications. " +
		sop
	if got != want {
		t.Errorf("Explain mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestExplain_EmptyLedger(t *testing.T) {
	got := explain.Explain(ledgertest.Build())
	want := "Case FDX-2025-087432 ($125,500.00) escalated after 0 days. " +
		"Of 0 days, DCA CollectCorp Solutions completed 0 documented actions. " + sop
	if got != want {
		t.Errorf("Explain mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestExplain_SingleEvent(t *testing.T) {
	got := explain.Explain(ledgertest.Build(ledger.ActionEvent{
		Day: 0, Actor: ledger.ActorDCA, Description: "Assigned", HasEvidence: true,
	}))
	want := "Case FDX-2025-087432 ($125,500.00) escalated after 0 days. " +
		"Of 0 days, DCA CollectCorp Solutions completed 1 documented actions. " + sop
	if got != want {
		t.Errorf("Explain mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestExplain_ClauseTriggers(t *testing.T) {
	cases := []struct {
		name    string
		events  []ledger.ActionEvent
		present []string
		absent  []string
	}{
		{
			name: "non-fedex breach only",
			events: []ledger.ActionEvent{
				{Day: 2, Actor: ledger.ActorDCA, Breach: true, HasEvidence: true},
			},
			absent: []string{"FedEx failed", "Primary delay", "evidence gap", "Secondary delay"},
		},
		{
			name: "single fedex breach",
			events: []ledger.ActionEvent{
				{Day: 4, Actor: ledger.ActorFedEx, Description: "Docs late", Breach: true, HasEvidence: true},
			},
			present: []string{"FedEx failed 1 SLA milestones: Docs late.", "Primary delay caused by FedEx (1 SLA breaches)."},
			absent:  []string{"evidence gap", "Secondary delay"},
		},
		{
			name: "missing evidence cites first gap",
			events: []ledger.ActionEvent{
				{Day: 9, Actor: ledger.ActorDCA, Description: "Second gap"},
				{Day: 3, Actor: ledger.ActorCustomer, Description: "First gap"},
			},
			present: []string{"Critical evidence gap on Day 3: First gap.", "Secondary delay caused by undocumented customer communications."},
			absent:  []string{"Second gap", "FedEx failed"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := explain.Explain(ledgertest.Build(tc.events...))
			for _, s := range tc.present {
				if !strings.Contains(got, s) {
					t.Errorf("expected %q in %q", s, got)
				}
			}
			for _, s := range tc.absent {
				if strings.Contains(got, s) {
					t.Errorf("did not expect %q in %q", s, got)
				}
			}
			if !strings.HasSuffix(got, sop) {
				t.Errorf("explanation must end with the SOP sentence: %q", got)
			}
		})
	}
}

func TestExplain_DeterministicAndOrderInsensitive(t *testing.T) {
	evs := ledgertest.CanonicalEvents()
	want := explain.Explain(ledgertest.Build(evs...))
	if again := explain.Explain(ledgertest.Build(evs...)); again != want {
		t.Fatalf("second run differs:\n%s\n%s", again, want)
	}

	shuffled := slices.Clone(evs)
	slices.Reverse(shuffled)
	if got := explain.Explain(ledgertest.Build(shuffled...)); got != want {
		t.Errorf("order-dependent output:\n got: %s\nwant: %s", got, want)
	}
}

func TestDerive(t *testing.T) {
	f := explain.Derive(ledgertest.Canonical())
	if len(f.Breaches) != 3 || len(f.FedExBreaches) != 3 {
		t.Errorf("breaches = %d, fedex = %d, want 3 and 3", len(f.Breaches), len(f.FedExBreaches))
	}
	if len(f.MissingEvidence) != 1 || f.MissingEvidence[0].Day != 15 {
		t.Errorf("missing evidence = %+v", f.MissingEvidence)
	}
	if len(f.DCAActions) != 4 {
		t.Errorf("dca actions = %d, want 4", len(f.DCAActions))
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":           "0.00",
		"999.5":       "999.50",
		"125500":      "125,500.00",
		"1234567.891": "1,234,567.89",
	}
	for in, want := range cases {
		if got := explain.FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatAmount(%s) = %q, want %q", in, got, want)
		}
	}
}
