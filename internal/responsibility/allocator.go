package responsibility

import "github.com/tracecase/trace/internal/ledger"

// Breakdown is the number of days owned by each actor.
type Breakdown struct {
	DCA      int `json:"DCA"`
	FedEx    int `json:"FedEx"`
	Customer int `json:"Customer"`
}

// Days returns the days owned by a. Unknown actors own nothing.
func (b Breakdown) Days(a ledger.Actor) int {
	switch a {
	case ledger.ActorDCA:
		return b.DCA
	case ledger.ActorFedEx:
		return b.FedEx
	case ledger.ActorCustomer:
		return b.Customer
	}
	return 0
}

// Sum is the total number of attributed days.
func (b Breakdown) Sum() int {
	return b.DCA + b.FedEx + b.Customer
}

// Timeline is the allocation result for one case.
type Timeline struct {
	TotalDays int       `json:"totalDays"`
	Breakdown Breakdown `json:"breakdown"`
}

// Period is the half-open day range [Start, End) opened by one ledger event.
// Owner is empty when the period is neutral operational time.
type Period struct {
	Start int          `json:"start"`
	End   int          `json:"end"`
	Actor ledger.Actor `json:"actor"`
	Owner ledger.Actor `json:"owner,omitempty"`
}

// Len returns the number of days in the period.
func (p Period) Len() int { return p.End - p.Start }

// Periods partitions the ledger into one period per event. The final event's
// period ends at the case's last day and is therefore always empty.
func Periods(c *ledger.Case) []Period {
	n := c.Len()
	total := c.LastDay()
	out := make([]Period, 0, n)
	for i := 0; i < n; i++ {
		ev := c.Event(i)
		end := total
		if i+1 < n {
			end = c.Event(i + 1).Day
		}
		out = append(out, Period{
			Start: ev.Day,
			End:   end,
			Actor: ev.Actor,
			Owner: owner(ev),
		})
	}
	return out
}

// owner applies the attribution rule table to a single event.
func owner(ev ledger.ActionEvent) ledger.Actor {
	switch ev.Actor {
	case ledger.ActorDCA:
		return ledger.ActorDCA
	case ledger.ActorFedEx:
		if ev.Breach {
			return ledger.ActorFedEx
		}
		return "" // neutral operational time
	case ledger.ActorCustomer:
		// Evidence does not change customer attribution yet; the branches are
		// kept apart pending a product decision on undocumented waits.
		if !ev.HasEvidence {
			return ledger.ActorCustomer
		}
		return ledger.ActorCustomer
	}
	return ""
}

// Allocate attributes every day of the case to DCA, FedEx or the customer.
// Days not owned by any period fall back to the DCA, so the breakdown always
// sums to TotalDays.
func Allocate(c *ledger.Case) Timeline {
	tl := Timeline{TotalDays: c.LastDay()}
	for _, p := range Periods(c) {
		switch p.Owner {
		case ledger.ActorDCA:
			tl.Breakdown.DCA += p.Len()
		case ledger.ActorFedEx:
			tl.Breakdown.FedEx += p.Len()
		case ledger.ActorCustomer:
			tl.Breakdown.Customer += p.Len()
		}
	}
	if accounted := tl.Breakdown.Sum(); accounted < tl.TotalDays {
		tl.Breakdown.DCA += tl.TotalDays - accounted
	}
	return tl
}
