package importer

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column: negative expense, positive
	// income.
	amountSigned amountMode = iota
	// amountSplit means separate withdrawal and deposit columns.
	amountSplit
)

// Profile describes the column layout of a statement CSV. Supporting a
// new bank export is adding a Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DateFormats []string
	DescCol     string
	MethodCol   string // optional payment-method column
	AmountMode  amountMode
	AmountCol   string // amountSigned
	DebitCol    string // amountSplit
	CreditCol   string // amountSplit
}

// requiredCols returns the columns a header row must contain for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of formats to try. More specific profiles
// come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "bank statement",
		DateCol:     "Txn Date",
		DateFormats: []string{"02/01/2006", "02-01-2006"},
		DescCol:     "Narration",
		AmountMode:  amountSplit,
		DebitCol:    "Withdrawal Amt",
		CreditCol:   "Deposit Amt",
	},
	{
		Name:        "upi export",
		DateCol:     "Date",
		DateFormats: []string{"2006-01-02", "02/01/2006"},
		DescCol:     "Description",
		MethodCol:   "Paid Via",
		AmountMode:  amountSigned,
		AmountCol:   "Amount",
	},
	{
		Name:        "finla",
		DateCol:     "date",
		DateFormats: []string{"2006-01-02"},
		DescCol:     "description",
		MethodCol:   "payment_method",
		AmountMode:  amountSigned,
		AmountCol:   "amount",
	},
}
