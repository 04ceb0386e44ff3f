package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/finance-center/backend/internal/controllers/v1"
	"github.com/finance-center/backend/internal/models"
	"github.com/finance-center/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	year := time.Now().Year()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", v1.BudgetEditable{
		Year:           year,
		DepartmentCode: "IT",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), year, response.Data.Year)
	assert.Empty(suite.T(), response.Data.Items)
	assert.True(suite.T(), response.Data.TotalAmount.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetCreateDuplicate() {
	year := time.Now().Year()
	suite.createTestBudget(models.DepartmentBudget{Year: year, DepartmentCode: "IT"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", v1.BudgetEditable{
		Year:           year,
		DepartmentCode: "IT",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestBudgetCreateUnavailableYear() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", v1.BudgetEditable{
		Year:           time.Now().Year() - 5,
		DepartmentCode: "IT",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetList() {
	suite.createTestBudget(models.DepartmentBudget{Year: 2024, DepartmentCode: "IT"})
	suite.createTestBudget(models.DepartmentBudget{Year: 2025, DepartmentCode: "IT"})
	suite.createTestBudget(models.DepartmentBudget{Year: 2025, DepartmentCode: "HR"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	if assert.Len(suite.T(), response.Data, 3) {
		// Newest year first
		assert.Equal(suite.T(), 2025, response.Data[0].Year)
	}

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/budgets?year=2025", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/budgets?year=2025&departmentCode=HR", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetYearsEndpoint() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/years", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetYearsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	now := time.Now()
	assert.Contains(suite.T(), response.Data, now.Year())
	assert.Contains(suite.T(), response.Data, now.Year()-2)
	assert.Contains(suite.T(), response.Data, now.Year()+1)
}

func (suite *TestSuiteStandard) TestBudgetGetWithItems() {
	budget := suite.createTestBudget(models.DepartmentBudget{
		Year:           2025,
		DepartmentCode: "IT",
		Items: []models.BudgetItem{
			{ItemName: "教育訓練", Amount: decimal.NewFromInt(50000), SortOrder: 1},
			{ItemName: "差旅", Amount: decimal.NewFromInt(120000), SortOrder: 2},
		},
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets/%d", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.Items, 2)
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromInt(170000)), "total amount is wrong: %s", response.Data.TotalAmount)
}

func (suite *TestSuiteStandard) TestBudgetGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/1337", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetReplaceItems() {
	budget := suite.createTestBudget(models.DepartmentBudget{
		Year:           2025,
		DepartmentCode: "IT",
		Items: []models.BudgetItem{
			{ItemName: "A", Amount: decimal.NewFromInt(100)},
			{ItemName: "B", Amount: decimal.NewFromInt(200)},
		},
	})

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/v1/budgets/%d/items", budget.ID), []v1.BudgetItemEditable{
		{ItemName: "C", Amount: decimal.NewFromInt(300), SortOrder: 1},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	if assert.Len(suite.T(), response.Data.Items, 1) {
		assert.Equal(suite.T(), "C", response.Data.Items[0].ItemName)
	}
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestBudgetReplaceItemsNotFound() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/budgets/1337/items", []v1.BudgetItemEditable{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := suite.createTestBudget(models.DepartmentBudget{
		Year:           2025,
		DepartmentCode: "IT",
		Items: []models.BudgetItem{
			{ItemName: "A", Amount: decimal.NewFromInt(100)},
		},
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%d", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Line items are gone with the budget
	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetItem{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%d", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
