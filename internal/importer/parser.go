// Package importer parses uploaded statement CSVs into transaction rows.
// It auto-detects which export format is being used by matching column
// headers against known profiles, and normalizes encodings first.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/finla-app/finla/internal/date"
	enc "github.com/finla-app/finla/internal/encoding"
	"github.com/finla-app/finla/internal/money"
)

// Row is one parsed statement line. Amount is signed paise: negative
// expense, positive income.
type Row struct {
	Date          date.Date
	Amount        int64
	Description   string
	PaymentMethod string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a statement CSV and returns its rows in file order. Footer
// and decoration lines (no parseable date) are skipped; a data row with a
// date but a broken amount is an error, because silently dropping it
// would corrupt balances on import.
func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(records)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found")
	}

	return parseRows(profile, cols, records[headerIdx+1:], headerIdx+2)
}

// colIndex maps column names to their position in the header row.
type colIndex map[string]int

func detectProfile(records [][]string) (*Profile, colIndex, int) {
	for rowIdx, record := range records {
		cols := make(colIndex)

		for i, cell := range record {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, records [][]string, firstLine int) ([]Row, error) {
	var rows []Row

	for i, record := range records {
		rowNum := firstLine + i // 1-based file line

		day, ok := parseDate(p, record, cols[p.DateCol])
		if !ok {
			continue
		}

		amount, ok, err := parseAmount(p, cols, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if !ok {
			continue
		}

		row := Row{
			Date:        day,
			Amount:      amount,
			Description: cellValue(record, cols[p.DescCol]),
		}

		if p.MethodCol != "" {
			if idx, ok := cols[p.MethodCol]; ok {
				row.PaymentMethod = cellValue(record, idx)
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseDate(p *Profile, record []string, idx int) (date.Date, bool) {
	s := cellValue(record, idx)
	if s == "" {
		return date.Date{}, false
	}

	for _, layout := range p.DateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return date.New(t.Date()), true
		}
	}

	return date.Date{}, false
}

func parseAmount(p *Profile, cols colIndex, record []string) (int64, bool, error) {
	switch p.AmountMode {
	case amountSigned:
		s := cellValue(record, cols[p.AmountCol])
		if s == "" {
			return 0, false, nil
		}

		paise, err := money.ParsePaise(s)
		if err != nil {
			return 0, false, err
		}

		return paise, paise != 0, nil
	case amountSplit:
		if s := cellValue(record, cols[p.DebitCol]); s != "" {
			paise, err := money.ParsePaise(s)
			if err != nil {
				return 0, false, err
			}

			if paise != 0 {
				return -abs(paise), true, nil
			}
		}

		if s := cellValue(record, cols[p.CreditCol]); s != "" {
			paise, err := money.ParsePaise(s)
			if err != nil {
				return 0, false, err
			}

			if paise != 0 {
				return abs(paise), true, nil
			}
		}

		return 0, false, nil
	}

	return 0, false, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

func cellValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
