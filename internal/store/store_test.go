package store

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-dev/balanza/internal/model"
)

func sampleEntries(month string, revenue int64) (model.MonthPeriodEntry, model.MonthYTDEntry, model.MonthBalanceEntry) {
	p := model.MonthPeriodEntry{Month: month, Revenue: decimal.NewFromInt(revenue)}
	p.Recompute()
	y := model.MonthYTDEntry{Month: month, Revenue: decimal.NewFromInt(revenue)}
	y.Recompute()
	b := model.MonthBalanceEntry{Month: month, Cash: decimal.NewFromInt(revenue / 2)}
	return p, y, b
}

func TestUpsertMonthAppendsAndReplaces(t *testing.T) {
	rec := model.NewClientRecord("fiduz", "FIDUZ", "FIDUZ S.A. de C.V.")
	InitYear(rec, "2024")

	p, y, b := sampleEntries("2024-01", 100)
	require.NoError(t, UpsertMonth(rec, "2024", p, y, b))

	p2, y2, b2 := sampleEntries("2024-02", 200)
	require.NoError(t, UpsertMonth(rec, "2024", p2, y2, b2))

	yr := rec.Years["2024"]
	require.Len(t, yr.IncomeStatementPeriod, 2)
	require.Len(t, yr.IncomeStatementYTD, 2)
	require.Len(t, yr.BalanceSheet, 2)

	// Second upsert for an existing month wins, without duplicating.
	p3, y3, b3 := sampleEntries("2024-01", 999)
	require.NoError(t, UpsertMonth(rec, "2024", p3, y3, b3))

	yr = rec.Years["2024"]
	require.Len(t, yr.IncomeStatementPeriod, 2)
	require.Len(t, yr.IncomeStatementYTD, 2)
	require.Len(t, yr.BalanceSheet, 2)
	assert.True(t, decimal.NewFromInt(999).Equal(yr.IncomeStatementPeriod[0].Revenue))
	assert.Equal(t, "2024-01", yr.IncomeStatementPeriod[0].Month)
}

func TestUpsertMonthYearNotInitialized(t *testing.T) {
	rec := model.NewClientRecord("fiduz", "FIDUZ", "FIDUZ S.A. de C.V.")

	p, y, b := sampleEntries("2024-01", 100)
	err := UpsertMonth(rec, "2024", p, y, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYearNotInitialized)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := NewService(t.TempDir())

	rec := model.NewClientRecord("luengas", "José Manuel Luengas", "José Manuel Luengas S.A. de C.V.")
	InitYear(rec, "2025")
	p, y, b := sampleEntries("2025-01", 1500)
	require.NoError(t, UpsertMonth(rec, "2025", p, y, b))
	require.NoError(t, svc.Save(rec))

	got, err := svc.Load("luengas")
	require.NoError(t, err)
	assert.Equal(t, "luengas", got.ClientID)
	assert.Equal(t, "José Manuel Luengas", got.ClientName)
	require.Contains(t, got.Years, "2025")
	require.Len(t, got.Years["2025"].IncomeStatementPeriod, 1)
	assert.True(t, decimal.NewFromInt(1500).Equal(got.Years["2025"].IncomeStatementPeriod[0].Revenue))
}

func TestSaveFormat(t *testing.T) {
	svc := NewService(t.TempDir())

	rec := model.NewClientRecord("luengas", "José Manuel Luengas", "José Manuel Luengas S.A. de C.V.")
	require.NoError(t, svc.Save(rec))

	data, err := os.ReadFile(svc.Path("luengas"))
	require.NoError(t, err)
	contents := string(data)

	// Non-ASCII stays literal and amounts are plain numbers.
	assert.Contains(t, contents, "José Manuel Luengas")
	assert.NotContains(t, contents, `\u00`)
	assert.Contains(t, contents, "  \"clienteId\": \"luengas\"")
}

func TestSaveIdempotent(t *testing.T) {
	svc := NewService(t.TempDir())

	rec := model.NewClientRecord("mrm", "MRM", "MRM Ingeniería Integral S. de R.L. MI")
	InitYear(rec, "2024")
	p, y, b := sampleEntries("2024-03", 300)
	require.NoError(t, UpsertMonth(rec, "2024", p, y, b))
	require.NoError(t, svc.Save(rec))

	first, err := os.ReadFile(svc.Path("mrm"))
	require.NoError(t, err)

	// Load, upsert the same month again, save: byte-identical.
	got, err := svc.Load("mrm")
	require.NoError(t, err)
	require.NoError(t, UpsertMonth(got, "2024", p, y, b))
	require.NoError(t, svc.Save(got))

	second, err := os.ReadFile(svc.Path("mrm"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSaveAmountsAsNumbers(t *testing.T) {
	svc := NewService(t.TempDir())

	rec := model.NewClientRecord("fiduz", "FIDUZ", "FIDUZ S.A. de C.V.")
	InitYear(rec, "2025")
	p := model.MonthPeriodEntry{Month: "2025-01", Revenue: decimal.RequireFromString("1234.5")}
	p.Recompute()
	require.NoError(t, UpsertMonth(rec, "2025", p, model.MonthYTDEntry{Month: "2025-01"}, model.MonthBalanceEntry{Month: "2025-01"}))
	require.NoError(t, svc.Save(rec))

	data, err := os.ReadFile(svc.Path("fiduz"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ingresos": 1234.5`)
	assert.NotContains(t, string(data), `"ingresos": "1234.5"`)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	ids, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, svc.Save(model.NewClientRecord("b", "B", "B S.A.")))
	require.NoError(t, svc.Save(model.NewClientRecord("a", "A", "A S.A.")))

	ids, err = svc.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestLoadMissing(t *testing.T) {
	svc := NewService(t.TempDir())
	_, err := svc.Load("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
