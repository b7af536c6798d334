// Package importer reads transaction CSV files for the classify command.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/model"
)

// Expected header: date,description,amount[,type[,category]].
const (
	colDate   = 0
	colDesc   = 1
	colAmount = 2
	colType   = 3
	colCat    = 4

	minFields = 3
)

// ParseFile reads a transaction CSV from disk.
func ParseFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads transactions from a CSV stream. The first row is treated as a
// header. Amounts may carry currency symbols and thousands separators;
// anything unparsable rejects the whole file with a row-numbered error.
func Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // type and category columns are optional

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseRow(rec []string) (model.Transaction, error) {
	if len(rec) < minFields {
		return model.Transaction{}, fmt.Errorf("want at least %d fields, got %d", minFields, len(rec))
	}

	raw := strings.TrimSpace(rec[colAmount])
	negative := strings.HasPrefix(raw, "-")
	amount, err := answers.ParseMoney(strings.TrimPrefix(raw, "-"), "amount")
	if err != nil {
		return model.Transaction{}, err
	}
	if negative {
		amount = amount.Neg()
	}

	txn := model.Transaction{
		Date:        strings.TrimSpace(rec[colDate]),
		Description: strings.TrimSpace(rec[colDesc]),
		Amount:      amount,
	}
	if len(rec) > colType {
		txn.Type = strings.TrimSpace(rec[colType])
	}
	if len(rec) > colCat {
		txn.Category = strings.TrimSpace(rec[colCat])
	}
	return txn, nil
}
