package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Next year's budget becomes selectable on December 22, ten days before
// year-end.
const (
	budgetYearsBefore    = 2
	budgetYearsAfter     = 1
	nextYearVisibleMonth = time.December
	nextYearVisibleDay   = 22
)

// DepartmentBudget is the annual budget header of one department. The line
// items carry the amounts; the header itself has none.
type DepartmentBudget struct {
	Model
	Year           int          `json:"year" gorm:"uniqueIndex:budget_year_department_code" example:"2025"`
	DepartmentCode string       `json:"departmentCode" gorm:"uniqueIndex:budget_year_department_code" example:"IT"`
	Items          []BudgetItem `json:"items" gorm:"foreignKey:DepartmentBudgetID"`
}

// BudgetItem is one line item of a departmental budget.
type BudgetItem struct {
	Model
	DepartmentBudgetID uint            `json:"departmentBudgetId" example:"1"`
	ItemName           string          `json:"itemName" example:"教育訓練"`
	Amount             decimal.Decimal `json:"amount" gorm:"type:DECIMAL(18,2)"`
	Description        string          `json:"description"`
	SortOrder          int             `json:"sortOrder" example:"1"`
}

// BeforeSave trims whitespace from all strings
func (b *DepartmentBudget) BeforeSave(_ *gorm.DB) error {
	b.DepartmentCode = strings.TrimSpace(b.DepartmentCode)

	return nil
}

// BeforeSave trims whitespace from all strings
func (i *BudgetItem) BeforeSave(_ *gorm.DB) error {
	i.ItemName = strings.TrimSpace(i.ItemName)
	i.Description = strings.TrimSpace(i.Description)

	return nil
}

// TotalAmount returns the sum of all line item amounts. It is always derived,
// never stored.
func (b DepartmentBudget) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Amount)
	}

	return total
}

// AvailableBudgetYears returns the years selectable for budgeting at the
// given time: two years back up to next year, and from December 22 on also
// the year after next.
func AvailableBudgetYears(now time.Time) []int {
	endYear := now.Year() + budgetYearsAfter
	if now.Month() == nextYearVisibleMonth && now.Day() >= nextYearVisibleDay {
		endYear++
	}

	years := make([]int, 0, endYear-now.Year()+budgetYearsBefore+1)
	for year := now.Year() - budgetYearsBefore; year <= endYear; year++ {
		years = append(years, year)
	}

	return years
}

// BudgetWithItems loads a budget header including its line items.
func BudgetWithItems(db *gorm.DB, id uint) (DepartmentBudget, error) {
	var budget DepartmentBudget

	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("budget_items.sort_order ASC, budget_items.id ASC")
	}).First(&budget, id).Error

	return budget, err
}

// ReplaceItems swaps all line items of the budget for the passed ones in a
// single transaction. The old items are deleted, the new ones inserted as
// fresh rows with new identities. Blank item names are the caller's problem,
// they are persisted as sent.
func (b *DepartmentBudget) ReplaceItems(db *gorm.DB, items []BudgetItem) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("department_budget_id = ?", b.ID).Delete(&BudgetItem{}).Error
		if err != nil {
			return err
		}

		for i := range items {
			items[i].Model = Model{}
			items[i].DepartmentBudgetID = b.ID

			err = tx.Create(&items[i]).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	b.Items = items
	return nil
}

// DeleteBudget deletes a budget and all of its line items in one
// transaction. It reports whether a budget was deleted: an unknown ID is a
// no-op, not an error.
func DeleteBudget(db *gorm.DB, id uint) (bool, error) {
	var budgets []DepartmentBudget

	err := db.Limit(1).Find(&budgets, id).Error
	if err != nil {
		return false, err
	}

	if len(budgets) == 0 {
		return false, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("department_budget_id = ?", id).Delete(&BudgetItem{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&DepartmentBudget{}, id).Error
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
