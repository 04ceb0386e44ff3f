package v1

import (
	"github.com/finance-center/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters of a budget
// header. The line items are managed through their own endpoint.
type BudgetEditable struct {
	Year           int    `json:"year" example:"2025" default:"0"`
	DepartmentCode string `json:"departmentCode" example:"IT" default:""`
}

func (editable BudgetEditable) model() models.DepartmentBudget {
	return models.DepartmentBudget{
		Year:           editable.Year,
		DepartmentCode: editable.DepartmentCode,
	}
}

// BudgetItemEditable represents all user configurable parameters of a budget
// line item.
type BudgetItemEditable struct {
	ItemName    string          `json:"itemName" example:"教育訓練" default:""`
	Amount      decimal.Decimal `json:"amount" example:"50000" default:"0"`
	Description string          `json:"description" example:"部門年度教育訓練費用" default:""`
	SortOrder   int             `json:"sortOrder" example:"1" default:"0"`
}

func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		ItemName:    editable.ItemName,
		Amount:      editable.Amount,
		Description: editable.Description,
		SortOrder:   editable.SortOrder,
	}
}

type BudgetItem struct {
	models.Model
	DepartmentBudgetID uint `json:"departmentBudgetId" example:"1"`
	BudgetItemEditable
}

func newBudgetItem(model models.BudgetItem) BudgetItem {
	return BudgetItem{
		Model:              model.Model,
		DepartmentBudgetID: model.DepartmentBudgetID,
		BudgetItemEditable: BudgetItemEditable{
			ItemName:    model.ItemName,
			Amount:      model.Amount,
			Description: model.Description,
			SortOrder:   model.SortOrder,
		},
	}
}

type Budget struct {
	models.Model
	BudgetEditable
	Items       []BudgetItem    `json:"items"`       // The line items, ordered by sort order
	TotalAmount decimal.Decimal `json:"totalAmount"` // Sum of all line item amounts, always derived
}

func newBudget(model models.DepartmentBudget) Budget {
	items := make([]BudgetItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, newBudgetItem(item))
	}

	return Budget{
		Model: model.Model,
		BudgetEditable: BudgetEditable{
			Year:           model.Year,
			DepartmentCode: model.DepartmentCode,
		},
		Items:       items,
		TotalAmount: model.TotalAmount(),
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // Data for the budget
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}

type BudgetYearsResponse struct {
	Data  []int   `json:"data"`  // The years selectable for budgeting
	Error *string `json:"error"` // The error, if any occurred
}

// BudgetQueryFilter are the query parameters for budget lists.
type BudgetQueryFilter struct {
	Year           int    `form:"year"`           // Only return budgets of this year
	DepartmentCode string `form:"departmentCode"` // Only return budgets of this department
}
