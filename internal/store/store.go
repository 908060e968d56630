// Package store persists one JSON record per client and merges newly
// extracted months into it. Month entries are upserted by month key:
// re-running extraction over unchanged sources rewrites the record
// byte for byte.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/balanza-dev/balanza/internal/model"
)

// ErrYearNotInitialized is returned by UpsertMonth when an
// incremental update targets a year the client record does not carry.
// Incremental mode expects the year scaffold to pre-exist; fabricating
// one silently would hide a mis-targeted update.
var ErrYearNotInitialized = errors.New("year not initialized in client record")

// Service reads and writes client records under a single output
// directory.
type Service struct {
	dir string
}

// NewService creates a store rooted at dir.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// Path returns the record file for a client ID.
func (s *Service) Path(clientID string) string {
	return filepath.Join(s.dir, clientID+".json")
}

// Load reads a client record from disk.
func (s *Service) Load(clientID string) (*model.ClientRecord, error) {
	data, err := os.ReadFile(s.Path(clientID))
	if err != nil {
		return nil, fmt.Errorf("reading client record: %w", err)
	}
	var rec model.ClientRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing client record %s: %w", clientID, err)
	}
	if rec.Years == nil {
		rec.Years = make(map[string]model.YearRecord)
	}
	return &rec, nil
}

// Save writes a client record with the exact formatting the dashboard
// was built against: two-space indent, non-ASCII characters literal.
func (s *Service) Save(rec *model.ClientRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding client record %s: %w", rec.ClientID, err)
	}

	if err := os.WriteFile(s.Path(rec.ClientID), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing client record: %w", err)
	}
	return nil
}

// UpsertMonth merges one extracted month into an existing year of the
// record. Within each of the three lists, an entry with the same
// month key is replaced in place; a new month key is appended. The
// year must already exist in the record.
func UpsertMonth(rec *model.ClientRecord, year string, p model.MonthPeriodEntry, y model.MonthYTDEntry, b model.MonthBalanceEntry) error {
	if err := UpsertIncome(rec, year, p, y); err != nil {
		return err
	}
	return UpsertBalance(rec, year, b)
}

// UpsertIncome upserts only the income statement lists, for months
// where no balance sheet was located.
func UpsertIncome(rec *model.ClientRecord, year string, p model.MonthPeriodEntry, y model.MonthYTDEntry) error {
	yr, ok := rec.Years[year]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrYearNotInitialized, rec.ClientID, year)
	}
	yr.IncomeStatementPeriod = upsertPeriod(yr.IncomeStatementPeriod, p)
	yr.IncomeStatementYTD = upsertYTD(yr.IncomeStatementYTD, y)
	rec.Years[year] = yr
	return nil
}

// UpsertBalance upserts only the balance sheet list.
func UpsertBalance(rec *model.ClientRecord, year string, b model.MonthBalanceEntry) error {
	yr, ok := rec.Years[year]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrYearNotInitialized, rec.ClientID, year)
	}
	yr.BalanceSheet = upsertBalance(yr.BalanceSheet, b)
	rec.Years[year] = yr
	return nil
}

// InitYear ensures an empty year scaffold exists, for the full-rebuild
// flow that constructs records from scratch. Lists start empty, not
// nil, so an untouched list serializes as [] the way the dashboard
// expects.
func InitYear(rec *model.ClientRecord, year string) {
	if _, ok := rec.Years[year]; !ok {
		rec.Years[year] = model.YearRecord{
			IncomeStatementPeriod: []model.MonthPeriodEntry{},
			IncomeStatementYTD:    []model.MonthYTDEntry{},
			BalanceSheet:          []model.MonthBalanceEntry{},
		}
	}
}

func upsertPeriod(list []model.MonthPeriodEntry, e model.MonthPeriodEntry) []model.MonthPeriodEntry {
	for i := range list {
		if list[i].Month == e.Month {
			list[i] = e
			return list
		}
	}
	return append(list, e)
}

func upsertYTD(list []model.MonthYTDEntry, e model.MonthYTDEntry) []model.MonthYTDEntry {
	for i := range list {
		if list[i].Month == e.Month {
			list[i] = e
			return list
		}
	}
	return append(list, e)
}

func upsertBalance(list []model.MonthBalanceEntry, e model.MonthBalanceEntry) []model.MonthBalanceEntry {
	for i := range list {
		if list[i].Month == e.Month {
			list[i] = e
			return list
		}
	}
	return append(list, e)
}

// List returns the client IDs with a record file in the output dir,
// in lexicographic order.
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading output dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		ids = append(ids, e.Name()[:len(e.Name())-len(".json")])
	}
	return ids, nil
}
