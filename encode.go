package leverage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// this file persists the snapshot in a single local JSON file, the way the
// browser dashboard used its local storage.

// LastSavedFormat is the layout of Snapshot.LastSavedTime.
const LastSavedFormat = time.DateTime

// DecodeSnapshot decodes a persisted snapshot. Missing top level parts fall back
// to the default snapshot's.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var raw struct {
		Assets        *[]Asset       `json:"assets"`
		Liabilities   *[]Liability   `json:"liabilities"`
		IncomeExpense *IncomeExpense `json:"incomeExpense"`
		LastSavedTime string         `json:"lastSavedTime"`
		Currency      string         `json:"currency"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	s := Default()
	if raw.Assets != nil {
		s.Assets = *raw.Assets
	}
	if raw.Liabilities != nil {
		s.Liabilities = *raw.Liabilities
	}
	if raw.IncomeExpense != nil {
		s.IncomeExpense = *raw.IncomeExpense
	}
	s.LastSavedTime = raw.LastSavedTime
	s.Currency = raw.Currency
	return s, nil
}

// LoadSnapshot reads the snapshot persisted at path. A missing file is not an
// error: the default snapshot is returned instead.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Warn("snapshot does not exist, using the default one")
		return Default(), nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	s, err := DecodeSnapshot(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot %q: %w", path, err)
	}
	return s, nil
}

// SaveSnapshot stamps the snapshot with 'now' and writes it at path. The file
// is replaced atomically, a failure leaves the previous one in place.
func SaveSnapshot(path string, s Snapshot, now time.Time) (Snapshot, error) {
	s.LastSavedTime = now.Format(LastSavedFormat)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return s, fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".leverage-*.json")
	if err != nil {
		return s, fmt.Errorf("saving snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return s, fmt.Errorf("saving snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return s, fmt.Errorf("saving snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return s, fmt.Errorf("saving snapshot: %w", err)
	}
	log.WithField("path", path).Debug("snapshot saved")
	return s, nil
}

// Reset deletes the snapshot persisted at path and returns the default one.
func Reset(path string) (Snapshot, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, fmt.Errorf("resetting snapshot: %w", err)
	}
	return Default(), nil
}
