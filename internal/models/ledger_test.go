package models_test

import (
	"strings"
	"time"

	"github.com/finance-center/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLedgerEntryTrimWhitespace() {
	department := "\t IT   "
	applicant := " 王小明    "
	reason := "  差旅費 "

	entry := createTestEntry[models.CashFlow](suite, models.LedgerFields{
		RemittanceDate: date(2024, time.March, 3),
		Department:     department,
		Applicant:      applicant,
		Reason:         reason,
	})

	assert.Equal(suite.T(), strings.TrimSpace(department), entry.Department)
	assert.Equal(suite.T(), strings.TrimSpace(applicant), entry.Applicant)
	assert.Equal(suite.T(), strings.TrimSpace(reason), entry.Reason)
}

func (suite *TestSuiteStandard) TestNetAmount() {
	fields := models.LedgerFields{
		Income:  decimal.NewFromInt(1000),
		Expense: decimal.NewFromInt(250),
		Fee:     decimal.NewFromInt(15),
	}

	assert.True(suite.T(), fields.NetAmount().Equal(decimal.NewFromInt(735)))
}

func (suite *TestSuiteStandard) TestNetAmountZero() {
	assert.True(suite.T(), models.LedgerFields{}.NetAmount().IsZero())
}

func (suite *TestSuiteStandard) TestParseBankType() {
	tests := []struct {
		input string
		want  models.BankType
		err   error
	}{
		{"ShanghaiBank", models.BankTypeShanghai, nil},
		{"TaiwanCooperativeBank", models.BankTypeTaiwanCooperative, nil},
		{"shanghaibank", "", models.ErrBankTypeInvalid},
		{"", "", models.ErrBankTypeInvalid},
	}

	for _, tt := range tests {
		bank, err := models.ParseBankType(tt.input)
		assert.Equal(suite.T(), tt.want, bank, "input %q", tt.input)
		assert.Equal(suite.T(), tt.err, err, "input %q", tt.input)
	}
}

func (suite *TestSuiteStandard) TestLedgersAreSeparateTables() {
	createTestEntry[models.CashFlow](suite, models.LedgerFields{
		Income: decimal.NewFromInt(1),
	})

	var count int64
	assert.Nil(suite.T(), models.DB.Model(&models.ShanghaiBankAccount{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}
