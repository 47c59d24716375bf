package canon

// aliases maps many raw label spellings (lower-cased, trimmed) onto one
// canonical account. Lookup is exact after case/whitespace normalization;
// no fuzzy matching is performed.
var aliases = map[string]Account{
	// revenue
	"revenue":           Revenue,
	"revenues":          Revenue,
	"total revenue":     Revenue,
	"total revenues":    Revenue,
	"net revenue":       Revenue,
	"net revenues":      Revenue,
	"sales":             Revenue,
	"net sales":         Revenue,
	"total sales":       Revenue,
	"turnover":          Revenue,
	"total income":      Revenue,
	"operating revenue": Revenue,

	// cogs
	"cogs":                COGS,
	"cost of goods sold":  COGS,
	"cost of sales":       COGS,
	"cost of revenue":     COGS,
	"cost of revenues":    COGS,
	"cost of services":    COGS,
	"direct costs":        COGS,
	"cost of merchandise": COGS,

	// gross profit
	"gross profit": GrossProfit,
	"gross margin": GrossProfit,
	"gross income": GrossProfit,

	// operating expenses
	"operating expenses":       OperatingExpenses,
	"total operating expenses": OperatingExpenses,
	"opex":                     OperatingExpenses,
	"sg&a":                     OperatingExpenses,
	"sga":                      OperatingExpenses,
	"selling general and administrative": OperatingExpenses,
	"selling, general and administrative": OperatingExpenses,
	"selling, general & administrative":   OperatingExpenses,

	// ebitda / ebit
	"ebitda":           EBITDA,
	"adjusted ebitda":  EBITDA,
	"ebit":             EBIT,
	"operating income": EBIT,
	"operating profit": EBIT,
	"income from operations": EBIT,

	// interest
	"interest expense":  InterestExpense,
	"interest expenses": InterestExpense,
	"interest paid":     InterestExpense,
	"finance costs":     InterestExpense,

	// net income
	"net income":   NetIncome,
	"net profit":   NetIncome,
	"net earnings": NetIncome,
	"net loss":     NetIncome,
	"profit for the year":   NetIncome,
	"profit after tax":      NetIncome,
	"net income (loss)":     NetIncome,
	"net profit after tax":  NetIncome,

	// d&a
	"depreciation":                  DepreciationAmort,
	"depreciation and amortization": DepreciationAmort,
	"depreciation & amortization":   DepreciationAmort,
	"d&a":                           DepreciationAmort,

	// cash
	"cash":                      Cash,
	"cash and cash equivalents": Cash,
	"cash & cash equivalents":   Cash,
	"cash and equivalents":      Cash,
	"cash at bank":              Cash,

	// marketable securities
	"marketable securities":  MarketableSecurities,
	"short term investments": MarketableSecurities,
	"short-term investments": MarketableSecurities,

	// accounts receivable
	"accounts receivable":        AccountsReceivable,
	"accounts receivable, net":   AccountsReceivable,
	"trade receivables":          AccountsReceivable,
	"receivables":                AccountsReceivable,
	"debtors":                    AccountsReceivable,
	"ar":                         AccountsReceivable,

	// inventory
	"inventory":    Inventory,
	"inventories":  Inventory,
	"stock":        Inventory,
	"merchandise inventory": Inventory,

	// current assets
	"current assets":       CurrentAssets,
	"total current assets": CurrentAssets,

	// total assets
	"total assets": TotalAssets,
	"assets":       TotalAssets,

	// accounts payable
	"accounts payable":      AccountsPayable,
	"trade payables":        AccountsPayable,
	"payables":              AccountsPayable,
	"creditors":             AccountsPayable,
	"ap":                    AccountsPayable,

	// debt
	"short term debt":             ShortTermDebt,
	"short-term debt":             ShortTermDebt,
	"short term borrowings":       ShortTermDebt,
	"short-term borrowings":       ShortTermDebt,
	"current portion of long term debt": ShortTermDebt,
	"long term debt":              LongTermDebt,
	"long-term debt":              LongTermDebt,
	"long term borrowings":        LongTermDebt,
	"long-term borrowings":        LongTermDebt,
	"total debt":                  TotalDebt,
	"total borrowings":            TotalDebt,
	"debt":                        TotalDebt,

	// current liabilities
	"current liabilities":       CurrentLiabilities,
	"total current liabilities": CurrentLiabilities,

	// total liabilities
	"total liabilities": TotalLiabilities,
	"liabilities":       TotalLiabilities,

	// equity
	"shareholders equity":        ShareholdersEquity,
	"shareholders' equity":       ShareholdersEquity,
	"stockholders equity":        ShareholdersEquity,
	"stockholders' equity":       ShareholdersEquity,
	"total equity":               ShareholdersEquity,
	"total shareholders equity":  ShareholdersEquity,
	"total shareholders' equity": ShareholdersEquity,
	"owner's equity":             ShareholdersEquity,
	"owners equity":              ShareholdersEquity,
	"equity":                     ShareholdersEquity,

	// cash flow
	"cfo": CFO,
	"cash from operations":                CFO,
	"cash flow from operations":           CFO,
	"net cash from operating activities":  CFO,
	"net cash provided by operating activities": CFO,
	"operating cash flow":                 CFO,
	"cfi": CFI,
	"cash from investing":                 CFI,
	"net cash used in investing activities":  CFI,
	"cff": CFF,
	"cash from financing":                 CFF,
	"net cash used in financing activities":  CFF,
	"capex":                 CapEx,
	"capital expenditures":  CapEx,
	"capital expenditure":   CapEx,
	"purchases of property and equipment": CapEx,
}

// Resolve maps a normalized (lower-cased, trimmed) raw label to its
// canonical account. ok is false for unrecognized labels.
func Resolve(label string) (Account, bool) {
	a, ok := aliases[label]
	return a, ok
}
