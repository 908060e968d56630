// Package period resolves month identities out of the many folder and
// filename conventions used across client archives, and formats the
// "YYYY-MM" keys the client records are indexed by.
package period

import (
	"fmt"
	"regexp"
	"strings"
)

// Months in iteration order.
var Months = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

// variants maps a zero-padded month to the spellings seen in folder
// and file names across the client archives.
var variants = map[string][]string{
	"01": {"Ene", "Enero", "ENERO", "January"},
	"02": {"Feb", "Febrero", "FEBRERO", "February"},
	"03": {"Mar", "Marzo", "MARZO", "March"},
	"04": {"Abr", "Abril", "ABRIL", "April"},
	"05": {"May", "Mayo", "MAYO", "May"},
	"06": {"Jun", "Junio", "JUNIO", "June"},
	"07": {"Jul", "Julio", "JULIO", "July"},
	"08": {"Ago", "Agosto", "AGOSTO", "August"},
	"09": {"Sep", "Septiembre", "SEPTIEMBRE", "September"},
	"10": {"Oct", "Octubre", "OCTUBRE", "October"},
	"11": {"Nov", "Noviembre", "NOVIEMBRE", "November"},
	"12": {"Dic", "Diciembre", "DICIEMBRE", "December"},
}

var (
	yearFolderRe = regexp.MustCompile(`^\d{4}$`)
	folderNumRe  = regexp.MustCompile(`^(\d{1,2})`)
	// "12 2024 Estado de Resultados.pdf" style: month digits adjacent
	// to a 4-digit year.
	fileMonthYearRe = regexp.MustCompile(`(\d{1,2})\s*(\d{4})`)
	// "Estado de Resultados 01 Ene 2024.pdf" style: two digits next to
	// a Spanish month abbreviation.
	fileMonthAbbrevRe = regexp.MustCompile(`(\d{2})\s*(?:Ene|Feb|Mar|Abr|May|Jun|Jul|Ago|Sep|Oct|Nov|Dic)`)
)

// Key returns the canonical "YYYY-MM" month key.
func Key(year, month string) string {
	return fmt.Sprintf("%s-%s", year, month)
}

// IsYearFolder reports whether name is a valid year folder: exactly
// four ASCII digits, nothing else.
func IsYearFolder(name string) bool {
	return yearFolderRe.MatchString(name)
}

// Variants returns the known name spellings for a zero-padded month.
func Variants(month string) []string {
	return variants[month]
}

// FromFolder extracts a zero-padded month from a month subfolder name
// such as "01", "1.ENERO 2024" or "02.-Febrero". The leading one- or
// two-digit numeral decides; names without one return false.
func FromFolder(name string) (string, bool) {
	m := folderNumRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return pad(m[1]), true
}

// FromFilename extracts a zero-padded month from a direct PDF
// filename. The month token must sit adjacent to the given year, or
// adjacent to a month-name abbreviation.
func FromFilename(name, year string) (string, bool) {
	for _, m := range fileMonthYearRe.FindAllStringSubmatch(name, -1) {
		if m[2] == year {
			return pad(m[1]), true
		}
	}
	if m := fileMonthAbbrevRe.FindStringSubmatch(name); m != nil {
		return m[1], true
	}
	return "", false
}

// MatchesMonth reports whether a folder or file name refers to the
// given zero-padded month, either by numeric prefix or by containing
// one of the month's name spellings.
func MatchesMonth(name, month string) bool {
	if got, ok := FromFolder(name); ok && got == month {
		return true
	}
	for _, v := range variants[month] {
		if strings.Contains(name, v) {
			return true
		}
	}
	return false
}

func pad(m string) string {
	if len(m) == 1 {
		return "0" + m
	}
	return m
}
