package v1

import (
	"time"

	"github.com/finance-center/backend/internal/models"
	"github.com/finance-center/backend/internal/types"
	"github.com/shopspring/decimal"
)

// openingBalanceReason is the reason text of the synthetic opening balance
// row prepended to annual statements.
const openingBalanceReason = "期初餘額"

// LedgerEntryEditable represents all user configurable parameters of a
// ledger entry
type LedgerEntryEditable struct {
	RemittanceDate *types.Date     `json:"remittanceDate" example:"2024-06-15"` // Booking date, empty for undated entries
	Department     string          `json:"department" example:"IT" default:""`  // Code of the requesting department
	Applicant      string          `json:"applicant" example:"王小明" default:""`
	Reason         string          `json:"reason" example:"差旅費" default:""`
	Income         decimal.Decimal `json:"income" example:"1000"`
	Expense        decimal.Decimal `json:"expense" example:"0"`
	Fee            decimal.Decimal `json:"fee" example:"30"`
}

func (editable LedgerEntryEditable) fields() models.LedgerFields {
	return models.LedgerFields{
		RemittanceDate: editable.RemittanceDate,
		Department:     editable.Department,
		Applicant:      editable.Applicant,
		Reason:         editable.Reason,
		Income:         editable.Income,
		Expense:        editable.Expense,
		Fee:            editable.Fee,
	}
}

// LedgerEntry is the API representation of a ledger entry.
//
// The ID is signed: the synthetic opening balance row of a statement has ID
// -1 and does not exist in the ledger.
type LedgerEntry struct {
	ID        int64     `json:"id" example:"17"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	LedgerEntryEditable
	NetAmount      decimal.Decimal  `json:"netAmount" example:"970"`                     // income - expense - fee, computed
	RunningBalance *decimal.Decimal `json:"runningBalance,omitempty" example:"12970.50"` // Balance after this entry, only set on statements
}

func newLedgerEntry(model models.LedgerEntry) LedgerEntry {
	return LedgerEntry{
		ID:        int64(model.ID),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		LedgerEntryEditable: LedgerEntryEditable{
			RemittanceDate: model.RemittanceDate,
			Department:     model.Department,
			Applicant:      model.Applicant,
			Reason:         model.Reason,
			Income:         model.Income,
			Expense:        model.Expense,
			Fee:            model.Fee,
		},
		NetAmount: model.NetAmount(),
	}
}

// newOpeningEntry builds the synthetic opening balance row for a statement.
// It is a presentation artifact: the amount is split into income or expense
// so that its own net amount equals the opening balance.
func newOpeningEntry(year int, openingBalance decimal.Decimal) LedgerEntry {
	date := types.NewDate(year, time.January, 1)

	income := decimal.Zero
	expense := decimal.Zero
	if openingBalance.IsNegative() {
		expense = openingBalance.Abs()
	} else {
		income = openingBalance
	}

	return LedgerEntry{
		ID: -1,
		LedgerEntryEditable: LedgerEntryEditable{
			RemittanceDate: &date,
			Reason:         openingBalanceReason,
			Income:         income,
			Expense:        expense,
			Fee:            decimal.Zero,
		},
		NetAmount:      openingBalance,
		RunningBalance: &openingBalance,
	}
}

type LedgerEntryResponse struct {
	Data  *LedgerEntry `json:"data"`                                                      // Data for the ledger entry
	Error *string      `json:"error" example:"there is no cash flow matching your query"` // The error, if any occurred
}

type LedgerEntryListResponse struct {
	Data  []LedgerEntry `json:"data"`  // List of ledger entries
	Error *string       `json:"error"` // The error, if any occurred
}

type LedgerYearsResponse struct {
	Data  []int   `json:"data" example:"2025,2024,2023"` // Years with at least one dated entry, newest first
	Error *string `json:"error"`                         // The error, if any occurred
}

// Statement is the annual account statement: all entries of one year with
// running balances, preceded by a synthetic opening balance row when the
// opening balance is not zero.
type Statement struct {
	Year           int             `json:"year" example:"2024"`
	OpeningBalance decimal.Decimal `json:"openingBalance" example:"12000.50"`
	Entries        []LedgerEntry   `json:"entries"`
}

type StatementResponse struct {
	Data  *Statement `json:"data"`  // The statement
	Error *string    `json:"error"` // The error, if any occurred
}

// ImportRequest names the workbook to import. The path is resolved on the
// server.
type ImportRequest struct {
	Path string `json:"path" binding:"required" example:"data/shanghai-bank.xlsx"`
}

// ImportResult reports the outcome of a workbook import.
type ImportResult struct {
	Created      int `json:"created" example:"312"`    // Number of ledger entries created
	DanglingFees int `json:"danglingFees" example:"0"` // Fee rows without a preceding entry, dropped
}

type ImportResponse struct {
	Data  *ImportResult `json:"data"`  // Result of the import
	Error *string       `json:"error"` // The error, if any occurred
}

// LedgerQueryFilter are the query parameters for ledger entry lists.
type LedgerQueryFilter struct {
	Department string `form:"department"` // Filter by department code
	From       string `form:"from"`       // Entries dated on or after this date (YYYY-MM-DD)
	To         string `form:"to"`         // Entries dated on or before this date (YYYY-MM-DD)
	Year       int    `form:"year"`       // Filter by calendar year of the remittance date
}
