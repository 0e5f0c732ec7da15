package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tracecase/trace/internal/ledger"
)

// Validate checks the catalog for:
//   - Duplicate case IDs
//   - Required fields (version, id, amount, assigned_dca)
//   - Non-negative amounts and event days
//   - Actors outside DCA / FedEx / Customer
func Validate(cfg *CatalogConfig) error {
	if cfg.Version == "" {
		return fmt.Errorf("catalog: version is required")
	}
	seen := make(map[string]int) // id → index
	var errs []string

	for i, c := range cfg.Cases {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("cases[%d]: id is required", i))
			continue
		}
		loc := fmt.Sprintf("case %s", c.ID)
		if prev, ok := seen[c.ID]; ok {
			errs = append(errs, fmt.Sprintf("duplicate case id %q (cases[%d] and cases[%d])", c.ID, prev, i))
		} else {
			seen[c.ID] = i
		}
		if c.AssignedDCA == "" {
			errs = append(errs, fmt.Sprintf("%s: assigned_dca is required", loc))
		}
		if _, err := parseAmount(c.Amount); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s", loc, err))
		}
		validateEvents(c.Events, loc, &errs)
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateEvents(events []EventDef, parent string, errs *[]string) {
	for j, ev := range events {
		loc := fmt.Sprintf("%s.events[%d]", parent, j)
		if ev.Day < 0 {
			*errs = append(*errs, fmt.Sprintf("%s: day must be non-negative, got %d", loc, ev.Day))
		}
		if _, err := ledger.ParseActor(ev.Actor); err != nil {
			*errs = append(*errs, fmt.Sprintf("%s: %s", loc, err))
		}
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a decimal number", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must be non-negative, got %s", s)
	}
	return d, nil
}
