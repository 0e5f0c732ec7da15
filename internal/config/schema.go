package config

// CatalogConfig is the top-level YAML structure of a case catalog.
type CatalogConfig struct {
	Version string    `yaml:"version"`
	Cases   []CaseDef `yaml:"cases"`
}

// CaseDef describes one case and its ledger.
type CaseDef struct {
	ID          string     `yaml:"id"`
	Amount      string     `yaml:"amount"` // decimal string, e.g. "125500.00"
	AssignedDCA string     `yaml:"assigned_dca"`
	Status      string     `yaml:"status"` // empty = ledger.DefaultStatus
	Events      []EventDef `yaml:"events"`
}

// EventDef is a single ledger entry. Order in the file does not matter.
type EventDef struct {
	Day         int    `yaml:"day"`
	Actor       string `yaml:"actor"` // DCA | FedEx | Customer
	Action      string `yaml:"action"`
	HasEvidence bool   `yaml:"has_evidence"`
	Breach      bool   `yaml:"breach"`
}
