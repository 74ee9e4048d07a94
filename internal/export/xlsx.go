package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetName = "Transactions"

	dateTimeLayout = "2006-01-02 15:04:05"
)

var ErrNoTransactions = errors.New("no transactions to export")

var header = []any{
	"Transaction ID",
	"Reference",
	"QRPH Reference",
	"Amount",
	"Type",
	"Status",
	"Description",
	"Transaction Date",
	"Processed Date",
}

// Transactions renders txs as a single-sheet workbook, one row per transaction
// below the header row.
func Transactions(txs []entity.Transaction) ([]byte, error) {
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}

	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", SheetName)
	if err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	err = f.SetSheetRow(SheetName, "A1", &header)
	if err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, tx := range txs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []any{
			tx.TransactionID,
			tx.ReferenceID,
			tx.InstapayReference,
			tx.Amount.InexactFloat64(),
			string(tx.Type),
			string(tx.Status),
			tx.Error,
			formatTime(tx.CreatedAt),
			formatTime(derefTime(tx.PaidAt)),
		}

		err = f.SetSheetRow(SheetName, cell, &row)
		if err != nil {
			return nil, fmt.Errorf("write transaction %s: %w", tx.TransactionID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateTimeLayout)
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
