package v1

import (
	"github.com/finance-center/backend/internal/models"
)

// DepartmentEditable represents all user configurable parameters of a
// department
type DepartmentEditable struct {
	Code      string `json:"code" example:"IT" default:""`      // Stable identifier, referenced by ledger entries and budgets
	Name      string `json:"name" example:"資訊部" default:""`     // Display name, free to change
	IsActive  bool   `json:"isActive" example:"true" default:"false"`
	SortOrder int    `json:"sortOrder" example:"10" default:"0"`
}

func (editable DepartmentEditable) model() models.Department {
	return models.Department{
		Code:      editable.Code,
		Name:      editable.Name,
		IsActive:  editable.IsActive,
		SortOrder: editable.SortOrder,
	}
}

type Department struct {
	models.Model
	DepartmentEditable
}

func newDepartment(model models.Department) Department {
	return Department{
		Model: model.Model,
		DepartmentEditable: DepartmentEditable{
			Code:      model.Code,
			Name:      model.Name,
			IsActive:  model.IsActive,
			SortOrder: model.SortOrder,
		},
	}
}

type DepartmentResponse struct {
	Data  *Department `json:"data"`  // Data for the department
	Error *string     `json:"error"` // The error, if any occurred
}

type DepartmentListResponse struct {
	Data  []Department `json:"data"`  // List of departments
	Error *string      `json:"error"` // The error, if any occurred
}

// DepartmentExists reports whether a department code is taken.
type DepartmentExists struct {
	Exists bool `json:"exists" example:"true"`
}

type DepartmentExistsResponse struct {
	Data  *DepartmentExists `json:"data"`  // The existence check result
	Error *string           `json:"error"` // The error, if any occurred
}

// DepartmentQueryFilter are the query parameters for department lists.
type DepartmentQueryFilter struct {
	Active bool `form:"active"` // Only return active departments
}

// DepartmentExistsQuery are the query parameters for the code existence
// check.
type DepartmentExistsQuery struct {
	Code      string `form:"code" binding:"required"` // The department code to check
	ExcludeID uint   `form:"excludeId"`               // Department ID whose own code does not count as a duplicate
}
