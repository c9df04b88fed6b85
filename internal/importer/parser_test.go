package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/importer"
)

func TestParseBankStatement(t *testing.T) {
	// Split debit/credit columns, dd/mm/yyyy dates, decoration above the
	// header and a footer total below the data.
	input := strings.Join([]string{
		`Statement for A/C 1234,,,,`,
		`,,,,`,
		`Txn Date,Narration,Ref No,Withdrawal Amt,Deposit Amt`,
		`01/07/2025,UPI-SWIGGY-123,R1,250.00,`,
		`03/07/2025,SALARY JULY,R2,,"45,000.00"`,
		`,,Closing Balance,,44750.00`,
	}, "\n")

	rows, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)

	assert.Equal(t, date.MustParse("2025-07-01"), rows[0].Date)
	assert.Equal(t, int64(-25000), rows[0].Amount)
	assert.Equal(t, "UPI-SWIGGY-123", rows[0].Description)

	assert.Equal(t, date.MustParse("2025-07-03"), rows[1].Date)
	assert.Equal(t, int64(4500000), rows[1].Amount)
}

func TestParseUPIExport(t *testing.T) {
	input := strings.Join([]string{
		`Date,Description,Paid Via,Amount`,
		`2025-07-01,Swiggy order,gpay,-120.50`,
		`2025-07-02,Refund from Amazon,phonepe,99.00`,
	}, "\n")

	rows, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(-12050), rows[0].Amount)
	assert.Equal(t, "gpay", rows[0].PaymentMethod)
	assert.Equal(t, int64(9900), rows[1].Amount)
	assert.Equal(t, "phonepe", rows[1].PaymentMethod)
}

func TestParseNativeExport(t *testing.T) {
	input := strings.Join([]string{
		`date,amount,description,payment_method`,
		`2025-07-01,-50.00,tea shop,cash`,
	}, "\n")

	rows, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(-5000), rows[0].Amount)
	assert.Equal(t, "tea shop", rows[0].Description)
	assert.Equal(t, "cash", rows[0].PaymentMethod)
}

func TestParseUnknownFormat(t *testing.T) {
	input := "foo,bar\n1,2\n"

	_, err := importer.NewParser().Parse(strings.NewReader(input))

	assert.Error(t, err)
}

func TestParseBrokenAmountOnDataRow(t *testing.T) {
	input := strings.Join([]string{
		`Date,Description,Paid Via,Amount`,
		`2025-07-01,ok row,gpay,-10.00`,
		`2025-07-02,bad row,gpay,not-a-number`,
	}, "\n")

	_, err := importer.NewParser().Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestParseSkipsZeroAndEmptyAmounts(t *testing.T) {
	input := strings.Join([]string{
		`Date,Description,Paid Via,Amount`,
		`2025-07-01,pending,gpay,`,
		`2025-07-01,zero,gpay,0.00`,
		`2025-07-02,real,gpay,-10.00`,
	}, "\n")

	rows, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "real", rows[0].Description)
}

func TestParseUTF8BOM(t *testing.T) {
	input := "\xEF\xBB\xBF" + strings.Join([]string{
		`date,amount,description,payment_method`,
		`2025-07-01,-50.00,kaapi kadai,cash`,
	}, "\n")

	rows, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "kaapi kadai", rows[0].Description)
}

func TestParseLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
	input := strings.Join([]string{
		`date,amount,description,payment_method`,
		"2025-07-01,-50.00,caf\xE9 visit,card",
	}, "\n")

	rows, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "café visit", rows[0].Description)
}
