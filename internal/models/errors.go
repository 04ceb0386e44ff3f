package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrConflict is the base error for all duplicate-resource errors so that
	// callers can match the whole class with errors.Is.
	ErrConflict = errors.New("already exists")

	ErrDepartmentCodeNotUnique = fmt.Errorf("a department with this code %w", ErrConflict)
	ErrBudgetExists            = fmt.Errorf("a budget for this year and department %w", ErrConflict)

	ErrBankTypeInvalid        = errors.New("the specified bank type is invalid")
	ErrBudgetYearNotAvailable = errors.New("budgets cannot be created for this year")
)
