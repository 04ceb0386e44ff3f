package models_test

import (
	"time"

	"github.com/finance-center/backend/internal/models"
	"github.com/finance-center/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) *types.Date {
	d := types.NewDate(year, month, day)
	return &d
}

func (suite *TestSuiteStandard) TestOpeningBalanceWithoutConfiguration() {
	// Without a configured initial balance, the opening balance is the sum
	// over the full history before the year
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2022, time.March, 1),
		Income:         decimal.NewFromInt(1000),
	})
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2023, time.July, 10),
		Expense:        decimal.NewFromInt(300),
		Fee:            decimal.NewFromInt(30),
	})
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.January, 5),
		Income:         decimal.NewFromInt(999),
	})

	opening, err := models.OpeningBalance[models.ShanghaiBankAccount](models.DB, models.BankTypeShanghai, 2024)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), opening.Equal(decimal.NewFromInt(670)), "opening balance is wrong: %s", opening)
}

func (suite *TestSuiteStandard) TestOpeningBalanceWithConfiguration() {
	balance := models.BankInitialBalance{
		BankType:       models.BankTypeShanghai,
		InitialBalance: decimal.NewFromInt(10000),
		EffectiveYear:  2023,
	}
	assert.Nil(suite.T(), balance.Save(models.DB))

	// Before the effective year: already part of the baseline, must not
	// count again
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2022, time.May, 5),
		Income:         decimal.NewFromInt(5000),
	})

	// Between effective year and requested year: counts
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2023, time.April, 1),
		Income:         decimal.NewFromInt(200),
		Fee:            decimal.NewFromInt(15),
	})

	// In the requested year: does not count towards the opening balance
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.February, 2),
		Income:         decimal.NewFromInt(777),
	})

	opening, err := models.OpeningBalance[models.ShanghaiBankAccount](models.DB, models.BankTypeShanghai, 2024)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), opening.Equal(decimal.NewFromInt(10185)), "opening balance is wrong: %s", opening)
}

func (suite *TestSuiteStandard) TestOpeningBalanceEmptyLedger() {
	opening, err := models.OpeningBalance[models.TaiwanCooperativeBankAccount](models.DB, models.BankTypeTaiwanCooperative, 2024)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), opening.IsZero(), "opening balance of an empty ledger must be zero, is %s", opening)
}

func (suite *TestSuiteStandard) TestOpeningBalanceIgnoresOtherBank() {
	// The ledgers are separate tables, a Taiwan Cooperative entry must not
	// leak into the Shanghai balance
	createTestEntry[models.TaiwanCooperativeBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2023, time.June, 6),
		Income:         decimal.NewFromInt(123456),
	})

	opening, err := models.OpeningBalance[models.ShanghaiBankAccount](models.DB, models.BankTypeShanghai, 2024)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), opening.IsZero())
}

func (suite *TestSuiteStandard) TestRunningBalances() {
	second := createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.March, 1),
		Expense:        decimal.NewFromInt(400),
	})
	first := createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.January, 15),
		Income:         decimal.NewFromInt(1000),
	})

	balances := models.RunningBalances(
		[]models.ShanghaiBankAccount{second, first},
		decimal.NewFromInt(100),
	)

	assert.True(suite.T(), balances[first.ID].Equal(decimal.NewFromInt(1100)), "balance after first entry is wrong: %s", balances[first.ID])
	assert.True(suite.T(), balances[second.ID].Equal(decimal.NewFromInt(700)), "balance after second entry is wrong: %s", balances[second.ID])
}

func (suite *TestSuiteStandard) TestRunningBalancesStableOnSameDate() {
	day := date(2024, time.May, 5)

	first := createTestEntry[models.CashFlow](suite, models.LedgerFields{
		RemittanceDate: day,
		Income:         decimal.NewFromInt(10),
	})
	second := createTestEntry[models.CashFlow](suite, models.LedgerFields{
		RemittanceDate: day,
		Income:         decimal.NewFromInt(20),
	})

	balances := models.RunningBalances(
		[]models.CashFlow{first, second},
		decimal.Zero,
	)

	// Same date: input order is kept
	assert.True(suite.T(), balances[first.ID].Equal(decimal.NewFromInt(10)))
	assert.True(suite.T(), balances[second.ID].Equal(decimal.NewFromInt(30)))
}

func (suite *TestSuiteStandard) TestLedgerEntriesForYear() {
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2023, time.December, 31),
		Income:         decimal.NewFromInt(1),
	})
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.June, 30),
		Income:         decimal.NewFromInt(2),
	})
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.January, 1),
		Income:         decimal.NewFromInt(3),
	})

	// Dateless rows never belong to a year
	createTestEntry[models.ShanghaiBankAccount](suite, models.LedgerFields{
		Income: decimal.NewFromInt(4),
	})

	entries, err := models.LedgerEntriesForYear[models.ShanghaiBankAccount](models.DB, 2024)
	assert.Nil(suite.T(), err)
	if assert.Len(suite.T(), entries, 2) {
		assert.Equal(suite.T(), 2024, entries[0].RemittanceDate.Year())
		assert.True(suite.T(), entries[0].Income.Equal(decimal.NewFromInt(3)), "entries are not ordered by date")
	}
}

func (suite *TestSuiteStandard) TestLedgerYears() {
	createTestEntry[models.CashFlow](suite, models.LedgerFields{
		RemittanceDate: date(2022, time.August, 8),
		Income:         decimal.NewFromInt(1),
	})
	createTestEntry[models.CashFlow](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.April, 4),
		Income:         decimal.NewFromInt(1),
	})
	createTestEntry[models.CashFlow](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.April, 5),
		Income:         decimal.NewFromInt(1),
	})
	createTestEntry[models.CashFlow](suite, models.LedgerFields{
		Income: decimal.NewFromInt(1),
	})

	years, err := models.LedgerYears[models.CashFlow](models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), []int{2024, 2022}, years)
}
