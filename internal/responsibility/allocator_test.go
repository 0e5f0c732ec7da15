package responsibility_test

import (
	"slices"
	"testing"

	"github.com/tracecase/trace/internal/ledger"
	"github.com/tracecase/trace/internal/ledger/ledgertest"
	"github.com/tracecase/trace/internal/responsibility"
)

func TestAllocate_CanonicalCase(t *testing.T) {
	tl := responsibility.Allocate(ledgertest.Canonical())

	want := responsibility.Timeline{
		TotalDays: 45,
		Breakdown: responsibility.Breakdown{DCA: 20, FedEx: 10, Customer: 15},
	}
	if tl != want {
		t.Errorf("Allocate = %+v, want %+v", tl, want)
	}
}

func TestAllocate_Table(t *testing.T) {
	dca := ledger.ActorDCA
	fedex := ledger.ActorFedEx
	cust := ledger.ActorCustomer

	cases := []struct {
		name   string
		events []ledger.ActionEvent
		want   responsibility.Timeline
	}{
		{
			name: "empty ledger",
			want: responsibility.Timeline{},
		},
		{
			name:   "single event at day 0",
			events: []ledger.ActionEvent{{Day: 0, Actor: fedex, Breach: true}},
			want:   responsibility.Timeline{},
		},
		{
			name:   "single event later falls back to DCA",
			events: []ledger.ActionEvent{{Day: 5, Actor: cust}},
			want: responsibility.Timeline{
				TotalDays: 5,
				Breakdown: responsibility.Breakdown{DCA: 5},
			},
		},
		{
			name: "fedex without breach is neutral",
			events: []ledger.ActionEvent{
				{Day: 0, Actor: fedex},
				{Day: 10, Actor: dca},
			},
			want: responsibility.Timeline{
				TotalDays: 10,
				Breakdown: responsibility.Breakdown{DCA: 10},
			},
		},
		{
			name: "fedex breach owns its period",
			events: []ledger.ActionEvent{
				{Day: 0, Actor: fedex, Breach: true},
				{Day: 4, Actor: dca},
				{Day: 6, Actor: cust},
			},
			want: responsibility.Timeline{
				TotalDays: 6,
				Breakdown: responsibility.Breakdown{FedEx: 4, DCA: 2},
			},
		},
		{
			name: "customer accrues with and without evidence",
			events: []ledger.ActionEvent{
				{Day: 0, Actor: cust, HasEvidence: true},
				{Day: 3, Actor: cust, HasEvidence: false},
				{Day: 7, Actor: dca},
			},
			want: responsibility.Timeline{
				TotalDays: 7,
				Breakdown: responsibility.Breakdown{Customer: 7},
			},
		},
		{
			name: "dca breach still dca",
			events: []ledger.ActionEvent{
				{Day: 2, Actor: dca, Breach: true},
				{Day: 9, Actor: fedex},
			},
			want: responsibility.Timeline{
				TotalDays: 9,
				Breakdown: responsibility.Breakdown{DCA: 9},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := responsibility.Allocate(ledgertest.Build(tc.events...))
			if got != tc.want {
				t.Errorf("Allocate = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAllocate_ConservationAndNonNegative(t *testing.T) {
	ledgers := [][]ledger.ActionEvent{
		nil,
		ledgertest.CanonicalEvents(),
		{{Day: 3, Actor: ledger.ActorFedEx}},
		{{Day: 0, Actor: ledger.ActorCustomer}, {Day: 0, Actor: ledger.ActorFedEx, Breach: true}, {Day: 20, Actor: ledger.ActorFedEx}},
		{{Day: 50, Actor: ledger.ActorDCA}, {Day: 2, Actor: ledger.ActorFedEx, Breach: true}, {Day: 17, Actor: ledger.ActorCustomer}},
	}
	for i, evs := range ledgers {
		tl := responsibility.Allocate(ledgertest.Build(evs...))
		if tl.Breakdown.Sum() != tl.TotalDays {
			t.Errorf("ledger %d: sum %d != total %d", i, tl.Breakdown.Sum(), tl.TotalDays)
		}
		for _, a := range ledger.Actors() {
			if tl.Breakdown.Days(a) < 0 {
				t.Errorf("ledger %d: %s has negative days %d", i, a, tl.Breakdown.Days(a))
			}
		}
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	c := ledgertest.Canonical()
	first := responsibility.Allocate(c)
	for i := 0; i < 5; i++ {
		if got := responsibility.Allocate(c); got != first {
			t.Fatalf("run %d: %+v differs from %+v", i, got, first)
		}
	}
}

func TestAllocate_InsensitiveToInputOrder(t *testing.T) {
	evs := ledgertest.CanonicalEvents()
	want := responsibility.Allocate(ledgertest.Build(evs...))

	reversed := slices.Clone(evs)
	slices.Reverse(reversed)
	if got := responsibility.Allocate(ledgertest.Build(reversed...)); got != want {
		t.Errorf("reversed input: %+v, want %+v", got, want)
	}
}

func TestAllocate_BreachSensitivity(t *testing.T) {
	evs := ledgertest.CanonicalEvents()
	base := responsibility.Allocate(ledgertest.Build(evs...))

	// Day 35 escalation owns 35..45.
	evs[6].Breach = false
	got := responsibility.Allocate(ledgertest.Build(evs...))

	if got.Breakdown.FedEx != base.Breakdown.FedEx-10 {
		t.Errorf("FedEx = %d, want %d", got.Breakdown.FedEx, base.Breakdown.FedEx-10)
	}
	if got.Breakdown.DCA != base.Breakdown.DCA+10 {
		t.Errorf("DCA = %d, want %d", got.Breakdown.DCA, base.Breakdown.DCA+10)
	}
	if got.Breakdown.Sum() != got.TotalDays {
		t.Errorf("sum %d != total %d", got.Breakdown.Sum(), got.TotalDays)
	}
}

func TestPeriods(t *testing.T) {
	ps := responsibility.Periods(ledgertest.Canonical())
	if len(ps) != 8 {
		t.Fatalf("expected 8 periods, got %d", len(ps))
	}
	last := ps[len(ps)-1]
	if last.Len() != 0 || last.Start != 45 {
		t.Errorf("last period = %+v, want empty period at 45", last)
	}
	if ps[4].Owner != ledger.ActorCustomer || ps[4].Len() != 15 {
		t.Errorf("customer period = %+v, want 15 days owned by Customer", ps[4])
	}
	if ps[2].Owner != ledger.ActorFedEx || ps[2].Len() != 0 {
		t.Errorf("day 8 breach period = %+v, want empty FedEx period", ps[2])
	}
	for i, p := range ps {
		if p.Len() < 0 {
			t.Errorf("periods[%d] has negative length: %+v", i, p)
		}
	}
}
