package models

import (
	"strings"

	"github.com/finance-center/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankType identifies the bank a configured initial balance belongs to.
type BankType string

const (
	BankTypeShanghai          BankType = "ShanghaiBank"
	BankTypeTaiwanCooperative BankType = "TaiwanCooperativeBank"
)

// ParseBankType validates a bank type coming from user input.
func ParseBankType(s string) (BankType, error) {
	switch BankType(s) {
	case BankTypeShanghai:
		return BankTypeShanghai, nil
	case BankTypeTaiwanCooperative:
		return BankTypeTaiwanCooperative, nil
	}

	return "", ErrBankTypeInvalid
}

// LedgerFields are the user configurable fields shared by all ledger tables.
//
// The department is stored as the department code, not its display name, so
// that renaming a department does not break history.
type LedgerFields struct {
	RemittanceDate *types.Date     `json:"remittanceDate"`
	Department     string          `json:"department"`
	Applicant      string          `json:"applicant"`
	Reason         string          `json:"reason"`
	Income         decimal.Decimal `json:"income" gorm:"type:DECIMAL(18,2)"`
	Expense        decimal.Decimal `json:"expense" gorm:"type:DECIMAL(18,2)"`
	Fee            decimal.Decimal `json:"fee" gorm:"type:DECIMAL(18,2)"`
}

// NetAmount returns income - expense - fee.
//
// It is always derived from the three monetary columns and never stored.
func (f LedgerFields) NetAmount() decimal.Decimal {
	return f.Income.Sub(f.Expense).Sub(f.Fee)
}

// BeforeSave trims whitespace from all strings
func (f *LedgerFields) BeforeSave(_ *gorm.DB) error {
	f.Department = strings.TrimSpace(f.Department)
	f.Applicant = strings.TrimSpace(f.Applicant)
	f.Reason = strings.TrimSpace(f.Reason)

	return nil
}

// LedgerEntry is the common shape of a ledger row. The concrete ledgers are
// defined from it so that they share one underlying type and the generic
// helpers below can convert between them.
type LedgerEntry struct {
	Model
	LedgerFields
}

// CashFlow is one row of the departmental cash flow ledger.
type CashFlow LedgerEntry

// ShanghaiBankAccount is one row of the Shanghai Commercial & Savings Bank
// account ledger.
type ShanghaiBankAccount LedgerEntry

// TaiwanCooperativeBankAccount is one row of the Taiwan Cooperative Bank
// account ledger.
type TaiwanCooperativeBankAccount LedgerEntry

// LedgerModel is the type set of all ledger tables.
type LedgerModel interface {
	CashFlow | ShanghaiBankAccount | TaiwanCooperativeBankAccount
}

// NewLedgerEntry returns a ledger row of the requested table with the given
// fields.
func NewLedgerEntry[E LedgerModel](fields LedgerFields) E {
	return E(LedgerEntry{LedgerFields: fields})
}

// Entry converts a ledger row back to the common shape.
func Entry[E LedgerModel](e E) LedgerEntry {
	return LedgerEntry(e)
}
