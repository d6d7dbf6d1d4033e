package leverage

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the backup format: the persisted
// snapshot plus the export date, one indented JSON document.

// exported is the backup document.
type exported struct {
	ExportDate string `json:"exportDate"`
	Snapshot
}

// ExportFileName returns the default name of a backup made on 'now'.
func ExportFileName(now time.Time) string {
	return "leverage_backup_" + now.Format(time.DateOnly) + ".json"
}

// Export writes the backup of s to w.
func Export(w io.Writer, s Snapshot, now time.Time) error {
	doc := exported{ExportDate: now.UTC().Format(time.RFC3339), Snapshot: s}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// Import reads a backup from r and returns the snapshot to use instead of
// current.
//
// The document must contain both "assets" and "liabilities", otherwise
// ErrFormat is returned together with the unchanged current snapshot. A
// missing "incomeExpense" keeps the current one.
func Import(r io.Reader, current Snapshot) (Snapshot, error) {
	var doc struct {
		Assets        *[]Asset       `json:"assets"`
		Liabilities   *[]Liability   `json:"liabilities"`
		IncomeExpense *IncomeExpense `json:"incomeExpense"`
		Currency      string         `json:"currency"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return current, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if doc.Assets == nil || doc.Liabilities == nil {
		return current, fmt.Errorf("%w: assets and liabilities are required", ErrFormat)
	}

	n := current.clone()
	n.Assets = *doc.Assets
	n.Liabilities = *doc.Liabilities
	if doc.IncomeExpense != nil {
		n.IncomeExpense = *doc.IncomeExpense
	}
	if doc.Currency != "" {
		n.Currency = doc.Currency
	}
	if err := n.Validate(); err != nil {
		return current, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return n, nil
}
