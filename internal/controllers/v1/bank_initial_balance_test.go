package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/finance-center/backend/internal/controllers/v1"
	"github.com/finance-center/backend/internal/models"
	"github.com/finance-center/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBankInitialBalancePut() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/bank-initial-balances/ShanghaiBank", v1.BankInitialBalanceEditable{
		InitialBalance: decimal.NewFromInt(50000),
		EffectiveYear:  2023,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankInitialBalanceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.BankTypeShanghai, response.Data.BankType)
	assert.True(suite.T(), response.Data.InitialBalance.Equal(decimal.NewFromInt(50000)))

	// A second PUT updates the row instead of creating another one
	recorder = test.Request(suite.T(), http.MethodPut, "/v1/bank-initial-balances/ShanghaiBank", v1.BankInitialBalanceEditable{
		InitialBalance: decimal.NewFromInt(60000),
		EffectiveYear:  2024,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BankInitialBalance{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestBankInitialBalanceGet() {
	balance := models.BankInitialBalance{
		BankType:       models.BankTypeTaiwanCooperative,
		InitialBalance: decimal.NewFromInt(123),
		EffectiveYear:  2022,
	}
	suite.Require().Nil(balance.Save(models.DB))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/bank-initial-balances/TaiwanCooperativeBank", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankInitialBalanceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 2022, response.Data.EffectiveYear)
}

func (suite *TestSuiteStandard) TestBankInitialBalanceGetUnconfigured() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/bank-initial-balances/ShanghaiBank", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBankInitialBalanceInvalidBankType() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/bank-initial-balances/CitiBank", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPut, "/v1/bank-initial-balances/CitiBank", v1.BankInitialBalanceEditable{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBankInitialBalanceList() {
	shanghai := models.BankInitialBalance{BankType: models.BankTypeShanghai, InitialBalance: decimal.NewFromInt(1), EffectiveYear: 2023}
	suite.Require().Nil(shanghai.Save(models.DB))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/bank-initial-balances", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankInitialBalanceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestBankInitialBalancePatchDebounced() {
	restore := v1.SetAutosaveDelay(5 * time.Millisecond)
	defer restore()

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/bank-initial-balances/ShanghaiBank", v1.BankInitialBalanceEditable{
		InitialBalance: decimal.NewFromInt(100),
		EffectiveYear:  2023,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusAccepted)

	v1.WaitForAutosave("ShanghaiBank")

	config, err := models.BankInitialBalanceFor(models.DB, models.BankTypeShanghai)
	suite.Require().Nil(err)
	if assert.NotNil(suite.T(), config) {
		assert.True(suite.T(), config.InitialBalance.Equal(decimal.NewFromInt(100)))
	}
}

func (suite *TestSuiteStandard) TestBankInitialBalancePatchLastWriteWins() {
	restore := v1.SetAutosaveDelay(20 * time.Millisecond)
	defer restore()

	// Simulates typing: every keystroke fires a PATCH, only the final value
	// may be persisted
	for _, value := range []int64{1, 12, 123} {
		recorder := test.Request(suite.T(), http.MethodPatch, "/v1/bank-initial-balances/ShanghaiBank", v1.BankInitialBalanceEditable{
			InitialBalance: decimal.NewFromInt(value),
			EffectiveYear:  2023,
		})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusAccepted)
	}

	v1.WaitForAutosave("ShanghaiBank")

	config, err := models.BankInitialBalanceFor(models.DB, models.BankTypeShanghai)
	suite.Require().Nil(err)
	if assert.NotNil(suite.T(), config) {
		assert.True(suite.T(), config.InitialBalance.Equal(decimal.NewFromInt(123)), "saved balance is %s", config.InitialBalance)
	}

	// Only one save ran, so only one row exists
	var count int64
	suite.Require().Nil(models.DB.Model(&models.BankInitialBalance{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestBankInitialBalancePutCancelsPendingPatch() {
	restore := v1.SetAutosaveDelay(50 * time.Millisecond)
	defer restore()

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/bank-initial-balances/ShanghaiBank", v1.BankInitialBalanceEditable{
		InitialBalance: decimal.NewFromInt(1),
		EffectiveYear:  2023,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusAccepted)

	// The immediate save supersedes the scheduled one
	recorder = test.Request(suite.T(), http.MethodPut, "/v1/bank-initial-balances/ShanghaiBank", v1.BankInitialBalanceEditable{
		InitialBalance: decimal.NewFromInt(2),
		EffectiveYear:  2023,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	v1.WaitForAutosave("ShanghaiBank")

	config, err := models.BankInitialBalanceFor(models.DB, models.BankTypeShanghai)
	suite.Require().Nil(err)
	if assert.NotNil(suite.T(), config) {
		assert.True(suite.T(), config.InitialBalance.Equal(decimal.NewFromInt(2)))
	}
}
