package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard reads every amount as a plain JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// ClientRecord is the per-client JSON document consumed by the
// reporting dashboard. JSON field names are fixed by the front end
// and must not change.
type ClientRecord struct {
	ClientID   string                `json:"clienteId"`
	ClientName string                `json:"clienteNombre"`
	LegalName  string                `json:"razonSocial"`
	Years      map[string]YearRecord `json:"years"`
}

// YearRecord holds the three month-keyed series for one fiscal year.
// Each list carries at most one entry per month key.
type YearRecord struct {
	IncomeStatementPeriod []MonthPeriodEntry  `json:"estadoResultadosPeriodo"`
	IncomeStatementYTD    []MonthYTDEntry     `json:"estadoResultadosYTD"`
	BalanceSheet          []MonthBalanceEntry `json:"balanceGeneral"`
}

// MonthPeriodEntry is a single-month income statement slice.
type MonthPeriodEntry struct {
	Month            string          `json:"mes"`
	Revenue          decimal.Decimal `json:"ingresos"`
	CostOfSales      decimal.Decimal `json:"compras"`
	OperatingExpense decimal.Decimal `json:"gastos"`
	FinancialIncome  decimal.Decimal `json:"prodFin"`
	FinancialExpense decimal.Decimal `json:"gastFin"`
	NetResult        decimal.Decimal `json:"utilidad"`
}

// MonthYTDEntry is the cumulative-to-date income statement slice as
// printed on the source document.
type MonthYTDEntry struct {
	Month            string          `json:"mes"`
	Revenue          decimal.Decimal `json:"ingresosYTD"`
	CostOfSales      decimal.Decimal `json:"comprasYTD"`
	OperatingExpense decimal.Decimal `json:"gastosYTD"`
	FinancialIncome  decimal.Decimal `json:"prodFinYTD"`
	FinancialExpense decimal.Decimal `json:"gastFinYTD"`
	NetResult        decimal.Decimal `json:"utilidadYTD"`
}

// MonthBalanceEntry is a point-in-time balance sheet snapshot.
// A zero value means "not present or not parsed", never an error.
type MonthBalanceEntry struct {
	Month              string          `json:"mes"`
	CurrentAssets      decimal.Decimal `json:"ac"`
	CurrentLiabilities decimal.Decimal `json:"pc"`
	Cash               decimal.Decimal `json:"bancos"`
	Investments        decimal.Decimal `json:"inversiones"`
	Receivables        decimal.Decimal `json:"clientes"`
	OtherReceivables   decimal.Decimal `json:"deudores"`
	Inventory          decimal.Decimal `json:"inventario"`
	SupplierAdvances   decimal.Decimal `json:"anticipoProv"`
	PrepaidExpenses    decimal.Decimal `json:"pagosAnt"`
	CustomerAdvances   decimal.Decimal `json:"anticipoCli"`
	Equity             decimal.Decimal `json:"capital"`
	YearEarnings       decimal.Decimal `json:"utilidadEj"`
	NonCurrentAssets   decimal.Decimal `json:"anc"`
	LongTermDebt       decimal.Decimal `json:"plc"`
}

// NewClientRecord creates an empty record for a roster entry.
func NewClientRecord(id, name, legalName string) *ClientRecord {
	return &ClientRecord{
		ClientID:   id,
		ClientName: name,
		LegalName:  legalName,
		Years:      make(map[string]YearRecord),
	}
}

// Recompute derives the net result from the three statement totals.
// The derived value always wins over any "utilidad" line scraped from
// the document, so the total stays consistent with its components.
// Financial income/expense are deliberately not folded in; that is
// the formula the dashboard was built against.
func (e *MonthPeriodEntry) Recompute() {
	e.NetResult = e.Revenue.Sub(e.CostOfSales).Sub(e.OperatingExpense)
}

// Recompute derives the YTD net result from the YTD totals.
func (e *MonthYTDEntry) Recompute() {
	e.NetResult = e.Revenue.Sub(e.CostOfSales).Sub(e.OperatingExpense)
}

// HasData reports whether the entry looks like a real extraction
// rather than an all-zero placeholder.
func (e MonthPeriodEntry) HasData() bool {
	return e.Revenue.IsPositive() || e.OperatingExpense.IsPositive()
}
