package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankInitialBalance is the configured baseline a bank's running balances
// accumulate from. There is at most one row per bank.
type BankInitialBalance struct {
	Model
	BankType       BankType        `json:"bankType" gorm:"uniqueIndex:bank_initial_balance_bank_type" example:"ShanghaiBank"`
	InitialBalance decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(18,2)"`
	EffectiveYear  int             `json:"effectiveYear" example:"2023"` // The year the baseline starts counting from
}

// BankInitialBalanceFor returns the configured initial balance for a bank.
//
// A missing configuration is not an error: it returns nil and callers fall
// back to full-history balance computation.
func BankInitialBalanceFor(db *gorm.DB, bank BankType) (*BankInitialBalance, error) {
	var balances []BankInitialBalance

	err := db.Where(&BankInitialBalance{BankType: bank}).Limit(1).Find(&balances).Error
	if err != nil {
		return nil, err
	}

	if len(balances) == 0 {
		return nil, nil
	}

	return &balances[0], nil
}

// Save upserts the initial balance for the bank type set on the value: the
// existing row is updated if there is one, otherwise a new row is created.
func (b *BankInitialBalance) Save(db *gorm.DB) error {
	existing, err := BankInitialBalanceFor(db, b.BankType)
	if err != nil {
		return err
	}

	if existing == nil {
		return db.Create(b).Error
	}

	existing.InitialBalance = b.InitialBalance
	existing.EffectiveYear = b.EffectiveYear

	err = db.Model(existing).
		Select("InitialBalance", "EffectiveYear").
		Updates(existing).Error
	if err != nil {
		return err
	}

	*b = *existing
	return nil
}
