package v1

import (
	"github.com/finance-center/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BankInitialBalanceEditable represents all user configurable parameters of
// a bank's initial balance. The bank itself is part of the URL.
type BankInitialBalanceEditable struct {
	InitialBalance decimal.Decimal `json:"initialBalance" example:"1000000" default:"0"`
	EffectiveYear  int             `json:"effectiveYear" example:"2023" default:"0"` // The year the baseline starts counting from
}

func (editable BankInitialBalanceEditable) model(bank models.BankType) models.BankInitialBalance {
	return models.BankInitialBalance{
		BankType:       bank,
		InitialBalance: editable.InitialBalance,
		EffectiveYear:  editable.EffectiveYear,
	}
}

type BankInitialBalance struct {
	models.Model
	BankType models.BankType `json:"bankType" example:"ShanghaiBank"`
	BankInitialBalanceEditable
}

func newBankInitialBalance(model models.BankInitialBalance) BankInitialBalance {
	return BankInitialBalance{
		Model:    model.Model,
		BankType: model.BankType,
		BankInitialBalanceEditable: BankInitialBalanceEditable{
			InitialBalance: model.InitialBalance,
			EffectiveYear:  model.EffectiveYear,
		},
	}
}

type BankInitialBalanceResponse struct {
	Data  *BankInitialBalance `json:"data"`  // Data for the initial balance
	Error *string             `json:"error"` // The error, if any occurred
}

type BankInitialBalanceListResponse struct {
	Data  []BankInitialBalance `json:"data"`  // List of initial balances
	Error *string              `json:"error"` // The error, if any occurred
}
