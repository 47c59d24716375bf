// Package canon defines the canonical chart of accounts and the
// normalization of raw extracted line items onto it.
package canon

// Account is one of the fixed financial statement line items the
// engine understands. Raw labels that resolve to no Account are dropped.
type Account string

const (
	// Income statement
	Revenue           Account = "revenue"
	COGS              Account = "cogs"
	GrossProfit       Account = "gross_profit"
	OperatingExpenses Account = "operating_expenses"
	EBITDA            Account = "ebitda"
	EBIT              Account = "ebit"
	InterestExpense   Account = "interest_expense"
	NetIncome         Account = "net_income"
	DepreciationAmort Account = "depreciation_amortization"

	// Balance sheet
	Cash                 Account = "cash"
	MarketableSecurities Account = "marketable_securities"
	AccountsReceivable   Account = "accounts_receivable"
	Inventory            Account = "inventory"
	CurrentAssets        Account = "current_assets"
	TotalAssets          Account = "total_assets"
	AccountsPayable      Account = "accounts_payable"
	ShortTermDebt        Account = "short_term_debt"
	LongTermDebt         Account = "long_term_debt"
	CurrentLiabilities   Account = "current_liabilities"
	TotalDebt            Account = "total_debt"
	TotalLiabilities     Account = "total_liabilities"
	ShareholdersEquity   Account = "shareholders_equity"

	// Cash flow statement
	CFO   Account = "cfo"
	CFI   Account = "cfi"
	CFF   Account = "cff"
	CapEx Account = "capex"
)

// Vocabulary is the closed set of recognized canonical accounts.
var Vocabulary = map[Account]bool{
	Revenue: true, COGS: true, GrossProfit: true, OperatingExpenses: true,
	EBITDA: true, EBIT: true, InterestExpense: true, NetIncome: true,
	DepreciationAmort: true,
	Cash:              true, MarketableSecurities: true, AccountsReceivable: true,
	Inventory: true, CurrentAssets: true, TotalAssets: true,
	AccountsPayable: true, ShortTermDebt: true, LongTermDebt: true,
	CurrentLiabilities: true, TotalDebt: true, TotalLiabilities: true,
	ShareholdersEquity: true,
	CFO:                true, CFI: true, CFF: true, CapEx: true,
}

// Canon holds the values of canonical accounts for one reporting period.
// A missing key means the value was not supplied (distinct from zero).
type Canon map[Account]float64

// Get returns a pointer to the value for a, or nil when absent.
func (c Canon) Get(a Account) *float64 {
	if c == nil {
		return nil
	}
	v, ok := c[a]
	if !ok {
		return nil
	}
	return &v
}

// Has reports whether a value was supplied for a.
func (c Canon) Has(a Account) bool {
	_, ok := c[a]
	return ok
}

// Merge overlays src onto dst key by key. Later values win; dst keys
// absent from src are untouched.
func Merge(dst, src Canon) {
	for k, v := range src {
		dst[k] = v
	}
}

// Clone returns an independent copy of c.
func (c Canon) Clone() Canon {
	out := make(Canon, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
