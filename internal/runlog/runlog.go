// Package runlog keeps a CSV audit trail of extraction runs: one row
// per client/year/month unit, with the documents used and the
// outcome. The batch never depends on it succeeding.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the extraction log.
type Entry struct {
	Timestamp time.Time
	Client    string
	Year      string
	Month     string
	Document  string
	Status    string
}

// Header is the CSV header for extract-log.csv.
const Header = "timestamp,client,year,month,document,status"

const (
	numFields    = 6
	logFile      = "extract-log.csv"
	colTimestamp = 0
	colClient    = 1
	colYear      = 2
	colMonth     = 3
	colDocument  = 4
	colStatus    = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colClient] = e.Client
	row[colYear] = e.Year
	row[colMonth] = e.Month
	row[colDocument] = e.Document
	row[colStatus] = e.Status
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Client:    record[colClient],
		Year:      record[colYear],
		Month:     record[colMonth],
		Document:  record[colDocument],
		Status:    record[colStatus],
	}, nil
}

// Append writes entries to <logDir>/extract-log.csv, creating the
// file and header if needed.
func Append(logDir string, entries []Entry) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(logDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening extract log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <logDir>/extract-log.csv, or nil if
// the file does not exist.
func Read(logDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(logDir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening extract log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading extract log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
