package extract

import (
	"github.com/balanza-dev/balanza/internal/model"
)

// Balance sheet cascades. The uppercase exact forms come from the
// trial-balance style reports; the mixed-case fallbacks cover the
// narrative-style layouts some accountants export.
var (
	cashRules = rules(
		`BANCOS\s+([\d,\.]+)`,
		`(?i)Bancos?\s+\$?\s*([\d,\.]+)`,
		`(?i)Efectivo\s+\$?\s*([\d,\.]+)`,
	)
	investmentRules = rules(
		`(?i)Inversiones?\s+temporales?\s+\$?\s*([\d,\.]+)`,
		`INVERSIONES\s+([\d,\.]+)`,
	)
	receivableRules = rules(
		`CLIENTES\s+([\d,\.]+)`,
		`(?i)Clientes?\s+\$?\s*([\d,\.]+)`,
		`(?i)Cuentas\s+por\s+cobrar\s+\$?\s*([\d,\.]+)`,
	)
	otherReceivableRules = rules(
		`DEUDORES DIVERSOS\s+([\d,\.]+)`,
		`(?i)Deudores?\s+diversos?\s+\$?\s*([\d,\.]+)`,
	)
	inventoryRules = rules(
		`(?i)Inventarios?\s+\$?\s*([\d,\.]+)`,
	)
	supplierAdvanceRules = rules(
		`(?i)Anticipos?\s+a\s+proveedores?\s+\$?\s*([\d,\.]+)`,
	)
	prepaidRules = rules(
		`(?i)Pagos?\s+anticipados?\s+\$?\s*([\d,\.]+)`,
	)
	customerAdvanceRules = rules(
		`(?i)Anticipos?\s+de\s+clientes?\s+\$?\s*([\d,\.]+)`,
	)
	currentAssetRules = rules(
		`Total ACTIVO CIRCULANTE\s+([\d,\.]+)`,
		`(?i)Activo\s+circulante\s+\$?\s*([\d,\.]+)`,
	)
	currentLiabilityRules = rules(
		`Total PASIVO CIRCULANTE\s+([\d,\.]+)`,
		`(?i)Pasivo\s+circulante\s+\$?\s*([\d,\.]+)`,
	)
	equityRules = rules(
		`(?i)Capital\s+contable\s+\$?\s*([\d,\.]+)`,
		`CAPITAL\s+([\d,\.]+)`,
	)
	yearEarningsRules = rules(
		`(?i)Utilidad\s+(?:\(P[ée]rdida\)\s+)?del\s+ejercicio\s+\$?\s*([\(\)\d,\.\-]+)`,
	)
	nonCurrentAssetRules = rules(
		`Total ACTIVO NO CIRCULANTE\s+([\d,\.]+)`,
		`(?i)Activo\s+no\s+circulante\s+\$?\s*([\d,\.]+)`,
		`(?i)Activo\s+fijo\s+\$?\s*([\d,\.]+)`,
	)
	longTermDebtRules = rules(
		`Total PASIVO LARGO PLAZO\s+([\d,\.]+)`,
		`(?i)Pasivo\s+a?\s*largo\s+plazo\s+\$?\s*([\d,\.]+)`,
	)
)

// BalanceSheet extracts the balance sheet line items from its
// concatenated page text. Unmatched items stay zero.
func BalanceSheet(text, monthKey string) model.MonthBalanceEntry {
	b := model.MonthBalanceEntry{Month: monthKey}

	cashRules.apply(text, &b.Cash, nil)
	investmentRules.apply(text, &b.Investments, nil)
	receivableRules.apply(text, &b.Receivables, nil)
	otherReceivableRules.apply(text, &b.OtherReceivables, nil)
	inventoryRules.apply(text, &b.Inventory, nil)
	supplierAdvanceRules.apply(text, &b.SupplierAdvances, nil)
	prepaidRules.apply(text, &b.PrepaidExpenses, nil)
	customerAdvanceRules.apply(text, &b.CustomerAdvances, nil)
	currentAssetRules.apply(text, &b.CurrentAssets, nil)
	currentLiabilityRules.apply(text, &b.CurrentLiabilities, nil)
	equityRules.apply(text, &b.Equity, nil)
	yearEarningsRules.apply(text, &b.YearEarnings, nil)
	nonCurrentAssetRules.apply(text, &b.NonCurrentAssets, nil)
	longTermDebtRules.apply(text, &b.LongTermDebt, nil)

	return b
}
