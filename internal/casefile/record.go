// Package casefile holds the flat case record a user builds up while
// preparing a filing, plus its save/load round trip.
package casefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is the portable case file. Field names match the historical save
// format so existing files keep loading.
type Record struct {
	Plaintiff string `json:"party_a"`
	Defendant string `json:"party_b"`
	Amount    string `json:"amt_in"`
	Facts     string `json:"facts_raw"`
	Court     string `json:"rec_court"`
	Evidence  string `json:"ev_raw"`
}

// Load reads a record from path. A missing file yields a zero record, not an
// error, so a fresh workspace starts empty.
func Load(path string) (Record, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(blob, &rec); err != nil {
		return Record{}, fmt.Errorf("parse case file: %w", err)
	}
	return rec, nil
}

// Save writes the record atomically (write temp, then rename).
func Save(path string, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	blob, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FormatEvidence numbers a newline-separated evidence list in the statutory
// exhibit style used by plaintiffs: 갑 제1호증, 갑 제2호증, ... Blank lines
// are skipped; an empty list renders as 없음.
func FormatEvidence(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "없음"
	}
	var b strings.Builder
	for i, item := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "갑 제%d호증 (%s)", i+1, item)
	}
	return b.String()
}
