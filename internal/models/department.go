package models

import (
	"strings"

	"gorm.io/gorm"
)

// Department is master data for a department.
//
// The code is the durable identifier referenced by ledger entries and
// budgets. Name, active flag and sort order are cosmetic and can change
// without breaking history.
type Department struct {
	Model
	Code      string `json:"code" gorm:"uniqueIndex:department_code" example:"IT"`
	Name      string `json:"name" example:"資訊部"`
	IsActive  bool   `json:"isActive" example:"true"`
	SortOrder int    `json:"sortOrder" example:"10"`
}

// BeforeSave trims whitespace from all strings
func (d *Department) BeforeSave(_ *gorm.DB) error {
	d.Code = strings.TrimSpace(d.Code)
	d.Name = strings.TrimSpace(d.Name)

	return nil
}

// DepartmentCodeExists reports whether another department already uses the
// code. An existing record is ignored when its ID is passed as excludeID so
// that updating a department to its own code does not count as a duplicate.
func DepartmentCodeExists(db *gorm.DB, code string, excludeID uint) (bool, error) {
	var count int64

	q := db.Model(&Department{}).Where("code = ?", strings.TrimSpace(code))
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}

	err := q.Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
