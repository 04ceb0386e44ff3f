package models_test

import (
	"strings"

	"github.com/finance-center/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDepartmentTrimWhitespace() {
	code := "\t IT   "
	name := " 資訊部    "

	department := suite.createTestDepartment(models.Department{
		Code: code,
		Name: name,
	})

	assert.Equal(suite.T(), strings.TrimSpace(code), department.Code)
	assert.Equal(suite.T(), strings.TrimSpace(name), department.Name)
}

func (suite *TestSuiteStandard) TestDepartmentCodeUnique() {
	_ = suite.createTestDepartment(models.Department{Code: "IT", Name: "資訊部"})

	duplicate := models.Department{Code: "IT", Name: "另一個資訊部"}
	err := models.DB.Create(&duplicate).Error

	assert.ErrorIs(suite.T(), err, models.ErrDepartmentCodeNotUnique)
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

func (suite *TestSuiteStandard) TestDepartmentUpdateKeepsOwnCode() {
	department := suite.createTestDepartment(models.Department{Code: "HR", Name: "人資部"})

	// Updating a department without changing the code must not trip the
	// uniqueness constraint
	department.Name = "人力資源部"
	err := models.DB.Save(&department).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestDepartmentCodeExists() {
	department := suite.createTestDepartment(models.Department{Code: "FIN", Name: "財務部"})

	exists, err := models.DepartmentCodeExists(models.DB, "FIN", 0)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), exists)

	// The department's own code does not count when its ID is excluded
	exists, err = models.DepartmentCodeExists(models.DB, "FIN", department.ID)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), exists)

	exists, err = models.DepartmentCodeExists(models.DB, "NOPE", 0)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *TestSuiteStandard) TestDepartmentCodeExistsTrims() {
	_ = suite.createTestDepartment(models.Department{Code: "GA", Name: "總務部"})

	exists, err := models.DepartmentCodeExists(models.DB, "  GA ", 0)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), exists)
}
