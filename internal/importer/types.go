// Package importer creates ledger entries from parsed bank workbooks.
package importer

import (
	"github.com/finance-center/backend/internal/models"
)

// ParsedLedger is the result of parsing one bank workbook.
type ParsedLedger struct {
	// Entries in file order. Fee rows are already merged into their
	// preceding entry and do not appear here.
	Entries []models.LedgerFields

	// DanglingFees counts fee rows that appeared before any entry of their
	// worksheet. Their amounts are dropped, matching the historical
	// behavior of the workbooks; the count is reported so the data loss is
	// visible instead of silent.
	DanglingFees int
}
