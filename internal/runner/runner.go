// Package runner orchestrates the extraction pipeline over the whole
// client roster: locate documents, extract fields, reconcile periods,
// merge into the per-client store. Every per-unit failure degrades to
// a warning line and a counter; a batch always runs to completion.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/balanza-dev/balanza/internal/config"
	"github.com/balanza-dev/balanza/internal/extract"
	"github.com/balanza-dev/balanza/internal/locator"
	"github.com/balanza-dev/balanza/internal/model"
	"github.com/balanza-dev/balanza/internal/pdftext"
	"github.com/balanza-dev/balanza/internal/period"
	"github.com/balanza-dev/balanza/internal/runlog"
	"github.com/balanza-dev/balanza/internal/store"
)

// Summary accumulates the batch counters reported to the user.
type Summary struct {
	ClientsProcessed int
	ClientsFailed    int
	ClientsEmpty     int
	MonthsWithData   int
}

// Print writes the end-of-run report.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "clients processed: %d\n", s.ClientsProcessed)
	fmt.Fprintf(w, "clients failed:    %d\n", s.ClientsFailed)
	fmt.Fprintf(w, "clients empty:     %d\n", s.ClientsEmpty)
	fmt.Fprintf(w, "months with data:  %d\n", s.MonthsWithData)
}

// Runner drives the pipeline. The text reader is injectable so tests
// can run against plain-text fixtures instead of real PDFs.
type Runner struct {
	cfg    *config.Config
	store  *store.Service
	reader pdftext.Reader
	out    io.Writer
	now    func() time.Time
}

// New creates a Runner writing status lines to out.
func New(cfg *config.Config, st *store.Service, reader pdftext.Reader, out io.Writer) *Runner {
	return &Runner{cfg: cfg, store: st, reader: reader, out: out, now: time.Now}
}

// RunAll rebuilds every roster client's record from scratch and saves
// it. A missing client folder counts as a failure and the batch moves
// on; nothing aborts the run.
func (r *Runner) RunAll() Summary {
	var s Summary
	for _, cl := range r.cfg.Clients {
		months, err := r.RunClient(cl)
		if err != nil {
			fmt.Fprintf(r.out, "warning: %s: %v\n", cl.ID, err)
			s.ClientsFailed++
			continue
		}
		s.ClientsProcessed++
		if months == 0 {
			s.ClientsEmpty++
		}
		s.MonthsWithData += months
	}
	return s
}

// RunClient rebuilds one client's record from its archive tree and
// saves it. It returns the number of months that look like real data
// (revenue or expense above zero).
func (r *Runner) RunClient(cl config.Client) (int, error) {
	root := filepath.Join(r.cfg.SourceDir, cl.Folder)
	if _, err := os.Stat(root); err != nil {
		return 0, fmt.Errorf("client folder missing: %s", root)
	}

	fmt.Fprintf(r.out, "processing %s (%s)\n", cl.Name, cl.ID)

	rec := model.NewClientRecord(cl.ID, cl.Name, cl.LegalName)
	years, err := locator.Years(root)
	if err != nil {
		return 0, fmt.Errorf("scanning years: %w", err)
	}

	monthsWithData := 0
	var log []runlog.Entry
	for _, year := range years {
		for _, month := range period.Months {
			docs := locator.Locate(root, year, month)
			if docs.IncomeStatement == "" && docs.BalanceSheet == "" {
				continue
			}

			store.InitYear(rec, year)
			key := period.Key(year, month)
			fmt.Fprintf(r.out, "  %s\n", key)

			if docs.IncomeStatement != "" {
				p, y := extract.IncomeStatement(r.readText(docs.IncomeStatement), key)
				if err := store.UpsertIncome(rec, year, p, y); err != nil {
					return 0, err
				}
				if p.HasData() {
					monthsWithData++
				}
				log = append(log, r.logEntry(cl.ID, year, month, docs.IncomeStatement, "income statement"))
			}
			if docs.BalanceSheet != "" {
				b := extract.BalanceSheet(r.readText(docs.BalanceSheet), key)
				if err := store.UpsertBalance(rec, year, b); err != nil {
					return 0, err
				}
				log = append(log, r.logEntry(cl.ID, year, month, docs.BalanceSheet, "balance sheet"))
			}
			if docs.Annex != "" {
				// Annexes are located for the audit trail, not parsed.
				log = append(log, r.logEntry(cl.ID, year, month, docs.Annex, "annex located"))
			}
		}
	}

	if err := r.store.Save(rec); err != nil {
		return 0, err
	}
	r.appendLog(log)
	return monthsWithData, nil
}

// UpdateMonth merges a single client/year/month into an existing
// record on disk. Missing documents and an uninitialized year are
// warnings, not errors; the record is left untouched in both cases.
func (r *Runner) UpdateMonth(clientID, year, month string) error {
	cl, ok := r.cfg.FindClient(clientID)
	if !ok {
		return fmt.Errorf("unknown client id %q", clientID)
	}

	root := filepath.Join(r.cfg.SourceDir, cl.Folder)
	docs := locator.Locate(root, year, month)
	if docs.IncomeStatement == "" && docs.BalanceSheet == "" {
		fmt.Fprintf(r.out, "warning: no documents found for %s %s/%s\n", clientID, year, month)
		return nil
	}

	rec, err := r.store.Load(clientID)
	if err != nil {
		return err
	}

	key := period.Key(year, month)
	p := model.MonthPeriodEntry{Month: key}
	y := model.MonthYTDEntry{Month: key}
	b := model.MonthBalanceEntry{Month: key}

	if docs.IncomeStatement != "" {
		p, y = extract.IncomeStatement(r.readText(docs.IncomeStatement), key)
	}
	if docs.BalanceSheet != "" {
		b = extract.BalanceSheet(r.readText(docs.BalanceSheet), key)
	}

	if err := store.UpsertMonth(rec, year, p, y, b); err != nil {
		if errors.Is(err, store.ErrYearNotInitialized) {
			fmt.Fprintf(r.out, "warning: year %s not initialized in %s.json, update skipped\n", year, clientID)
			return nil
		}
		return err
	}

	if err := r.store.Save(rec); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "updated %s %s\n", clientID, key)
	return nil
}

// readText extracts a document's text. An unreadable document is
// logged and yields empty text, which extracts to an all-zero entry.
func (r *Runner) readText(path string) string {
	text, err := r.reader.ReadText(path)
	if err != nil {
		fmt.Fprintf(r.out, "warning: %v\n", err)
		return ""
	}
	return text
}

func (r *Runner) logEntry(client, year, month, doc, status string) runlog.Entry {
	return runlog.Entry{
		Timestamp: r.now(),
		Client:    client,
		Year:      year,
		Month:     month,
		Document:  filepath.Base(doc),
		Status:    status,
	}
}

// appendLog writes the audit rows. Log failures never affect the
// batch outcome.
func (r *Runner) appendLog(entries []runlog.Entry) {
	if r.cfg.LogDir == "" || len(entries) == 0 {
		return
	}
	if err := runlog.Append(r.cfg.LogDir, entries); err != nil {
		fmt.Fprintf(r.out, "warning: extract log: %v\n", err)
	}
}
