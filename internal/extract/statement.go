// Package extract pulls financial line items out of statement text
// using ordered label-pattern cascades. Extraction is best-effort:
// fields that do not match keep their zero default and nothing here
// ever returns an error.
package extract

import (
	"github.com/balanza-dev/balanza/internal/model"
)

// The statement totals print two numeric columns on one row: the
// period figure, an unrelated percentage, then the year-to-date
// figure. The leading patterns capture both columns in one match
// (group 1 = period, group 2 = YTD). The generic fallbacks only see a
// period column, so a fallback match leaves YTD at zero; we never
// fabricate a cumulative figure by copying the period value.
var (
	revenueRules = rules(
		`Total INGRESOS\s+([\d,\.]+)\s+[\d\.]+\s+([\d,\.]+)`,
		`(?i)Ingresos?\s+(?:por\s+)?(?:ventas?\s+)?\$?\s*([\d,\.]+)`,
		`(?i)Ventas?\s+\$?\s*([\d,\.]+)`,
	)
	costRules = rules(
		`Total COSTO\s+([\d,\.]+)\s+[\d\.]+\s+([\d,\.]+)`,
		`(?i)Costo\s+de\s+ventas?\s+\$?\s*([\d,\.]+)`,
		`(?i)Compras?\s+\$?\s*([\d,\.]+)`,
	)
	expenseRules = rules(
		`(?:GASTOS GENERALES|Total GASTOS)\s+([\d,\.]+)\s+[\d\.]+\s+([\d,\.]+)`,
		`(?i)Gastos?\s+de\s+operaci[oó]n\s+\$?\s*([\d,\.]+)`,
		`(?i)Gastos?\s+operativos?\s+\$?\s*([\d,\.]+)`,
	)
	finIncomeRules = rules(
		`(?i)Productos?\s+financieros?\s+\$?\s*([\(\)\d,\.\-]+)`,
	)
	finExpenseRules = rules(
		`(?i)Gastos?\s+financieros?\s+\$?\s*([\(\)\d,\.\-]+)`,
	)
)

// IncomeStatement extracts the period and YTD slices of an income
// statement from its concatenated page text. The net result is always
// recomputed from the three totals, overriding any printed "utilidad"
// line.
func IncomeStatement(text, monthKey string) (model.MonthPeriodEntry, model.MonthYTDEntry) {
	p := model.MonthPeriodEntry{Month: monthKey}
	y := model.MonthYTDEntry{Month: monthKey}

	revenueRules.apply(text, &p.Revenue, &y.Revenue)
	costRules.apply(text, &p.CostOfSales, &y.CostOfSales)
	expenseRules.apply(text, &p.OperatingExpense, &y.OperatingExpense)
	finIncomeRules.apply(text, &p.FinancialIncome, nil)
	finExpenseRules.apply(text, &p.FinancialExpense, nil)

	p.Recompute()
	y.Recompute()
	return p, y
}
