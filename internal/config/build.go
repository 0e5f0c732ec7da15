package config

import (
	"fmt"

	"github.com/tracecase/trace/internal/ledger"
)

// Cases converts a validated catalog into ledger cases, in file order.
func Cases(cfg *CatalogConfig) ([]*ledger.Case, error) {
	out := make([]*ledger.Case, 0, len(cfg.Cases))
	for _, c := range cfg.Cases {
		amount, err := parseAmount(c.Amount)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.ID, err)
		}
		events := make([]ledger.ActionEvent, 0, len(c.Events))
		for j, ev := range c.Events {
			actor, err := ledger.ParseActor(ev.Actor)
			if err != nil {
				return nil, fmt.Errorf("case %s: events[%d]: %w", c.ID, j, err)
			}
			events = append(events, ledger.ActionEvent{
				Day:         ev.Day,
				Actor:       actor,
				Description: ev.Action,
				HasEvidence: ev.HasEvidence,
				Breach:      ev.Breach,
			})
		}
		out = append(out, ledger.NewCase(c.ID, amount, c.AssignedDCA, c.Status, events))
	}
	return out, nil
}
