package model

// Totals are the running counters of a batch run.
type Totals struct {
	Checked int
	Found   int
}

// Checkpoint is the persisted progress of a batch run.
type Checkpoint struct {
	Address string `json:"address,omitempty"`
	TxCount int    `json:"num_transactions"`
	Checked int    `json:"checked_count"`
	Found   int    `json:"found_count"`
}

// Totals returns the counters stored in the checkpoint.
func (c Checkpoint) Totals() Totals {
	return Totals{Checked: c.Checked, Found: c.Found}
}
