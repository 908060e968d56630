// Package locator finds the source PDFs for a client/year/month among
// the inconsistent folder and filename conventions used across client
// archives: statements dropped directly into the year folder, or
// tucked into month subfolders named anything from "01" to
// "1.ENERO 2024".
package locator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/balanza-dev/balanza/internal/fold"
	"github.com/balanza-dev/balanza/internal/period"
)

// Documents holds the located source files for one month. An empty
// path means the document was not found; callers must tolerate
// partial results.
type Documents struct {
	IncomeStatement string
	BalanceSheet    string
	Annex           string
}

// Empty reports whether nothing at all was located.
func (d Documents) Empty() bool {
	return d.IncomeStatement == "" && d.BalanceSheet == "" && d.Annex == ""
}

// Income statement glob cascade, most specific first. Tried in order;
// the first pattern with a hit wins.
var incomeGlobs = []string{
	"*EDO*RESULTADOS*.pdf",
	"*Estado*Resultados*.pdf",
	"*ESTADO*RESULTADOS*.pdf",
	"*resultados*.pdf",
}

var balanceGlobs = []string{
	"*balance*.pdf",
	"*BALANCE*.pdf",
}

// Years returns the valid year folders (exactly four digits) directly
// under clientRoot, in lexicographic order. Anything else is silently
// skipped.
func Years(clientRoot string) ([]string, error) {
	entries, err := os.ReadDir(clientRoot)
	if err != nil {
		return nil, err
	}
	var years []string
	for _, e := range entries {
		if e.IsDir() && period.IsYearFolder(e.Name()) {
			years = append(years, e.Name())
		}
	}
	return years, nil
}

// Locate finds the income statement, balance sheet and annex for a
// given year and zero-padded month under clientRoot. Direct files in
// the year folder are tried first, then month subfolders; per slot,
// the first strategy that yields a candidate wins. ReadDir returns
// entries sorted by name, so ties between candidates break
// lexicographically.
func Locate(clientRoot, year, month string) Documents {
	var docs Documents

	yearDir := filepath.Join(clientRoot, year)
	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return docs
	}

	// Strategy 1: PDFs directly under the year folder, month resolved
	// from the filename.
	for _, e := range entries {
		if e.IsDir() || !isPDF(e.Name()) {
			continue
		}
		m, ok := period.FromFilename(e.Name(), year)
		if !ok || m != month {
			continue
		}
		name := fold.Lower(e.Name())
		path := filepath.Join(yearDir, e.Name())
		switch {
		case docs.IncomeStatement == "" && containsAny(name, "resultados", "edo"):
			docs.IncomeStatement = path
		case docs.BalanceSheet == "" && containsAny(name, "balance", "posicion", "situacion"):
			docs.BalanceSheet = path
		case docs.Annex == "" && containsAny(name, "anexo", "catalogo"):
			docs.Annex = path
		}
	}

	// Strategy 2: a month subfolder (leading numeral or month-name
	// spelling) holding the statements.
	for _, e := range entries {
		if !e.IsDir() || !period.MatchesMonth(e.Name(), month) {
			continue
		}
		monthDir := filepath.Join(yearDir, e.Name())
		sub, err := os.ReadDir(monthDir)
		if err != nil {
			continue
		}
		if docs.IncomeStatement == "" {
			docs.IncomeStatement = firstMatch(monthDir, sub, incomeGlobs, "resultados", "edo")
		}
		if docs.BalanceSheet == "" {
			docs.BalanceSheet = firstMatch(monthDir, sub, balanceGlobs, "balance", "posicion")
		}
		if docs.Annex == "" {
			docs.Annex = firstMatch(monthDir, sub, nil, "anexo", "catalogo")
		}
		break
	}

	return docs
}

// firstMatch tries each glob pattern in order against the sorted
// directory entries and returns the first hit. When no pattern
// matches it falls back to a case- and accent-insensitive keyword
// scan.
func firstMatch(dir string, entries []os.DirEntry, globs []string, keywords ...string) string {
	for _, g := range globs {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if ok, _ := filepath.Match(g, e.Name()); ok {
				return filepath.Join(dir, e.Name())
			}
		}
	}
	for _, e := range entries {
		if e.IsDir() || !isPDF(e.Name()) {
			continue
		}
		if containsAny(fold.Lower(e.Name()), keywords...) {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
