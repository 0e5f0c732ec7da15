package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultStatus is shown for cases loaded without an explicit status.
const DefaultStatus = "Escalated"

// ActionEvent is a single ledger entry.
type ActionEvent struct {
	Day         int    // offset since case open
	Actor       Actor  // party that acted or is implicated
	Description string // display only
	HasEvidence bool
	Breach      bool // missed SLA commitment attributable to Actor
}

// Case is an overdue account together with its action ledger.
// It is immutable once built by NewCase and safe for concurrent readers.
type Case struct {
	id          string
	amount      decimal.Decimal
	assignedDCA string
	status      string
	events      []ActionEvent
}

// NewCase copies events and stable-sorts them by day, so events sharing a
// day keep their input order.
func NewCase(id string, amount decimal.Decimal, assignedDCA, status string, events []ActionEvent) *Case {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b ActionEvent) int {
		return a.Day - b.Day
	})
	if status == "" {
		status = DefaultStatus
	}
	return &Case{
		id:          id,
		amount:      amount,
		assignedDCA: assignedDCA,
		status:      status,
		events:      sorted,
	}
}

func (c *Case) ID() string { return c.id }
func (c *Case) Amount() decimal.Decimal { return c.amount }
func (c *Case) AssignedDCA() string { return c.assignedDCA }
func (c *Case) Status() string { return c.status }
func (c *Case) Len() int { return len(c.events) }
func (c *Case) Event(i int) ActionEvent { return c.events[i] }
func (c *Case) Events() []ActionEvent { return slices.Clone(c.events) }

// LastDay returns the day of the final ledger entry, or 0 for an empty ledger.
func (c *Case) LastDay() int {
	if len(c.events) == 0 {
		return 0
	}
	return c.events[len(c.events)-1].Day
}
