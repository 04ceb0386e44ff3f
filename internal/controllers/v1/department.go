package v1

import (
	"net/http"

	"github.com/finance-center/backend/internal/httputil"
	"github.com/finance-center/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDepartmentRoutes registers the routes for departments with
// the RouterGroup that is passed.
func RegisterDepartmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDepartmentList)
		r.GET("", GetDepartments)
		r.POST("", CreateDepartment)
	}

	// Code existence check
	{
		r.OPTIONS("/exists", OptionsDepartmentExists)
		r.GET("/exists", GetDepartmentExists)
	}

	// Department with ID
	{
		r.OPTIONS("/:id", OptionsDepartmentDetail)
		r.GET("/:id", GetDepartment)
		r.PATCH("/:id", UpdateDepartment)
		r.DELETE("/:id", DeleteDepartment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Router			/v1/departments [options]
func OptionsDepartmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Router			/v1/departments/exists [options]
func OptionsDepartmentExists(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the department"
// @Router			/v1/departments/{id} [options]
func OptionsDepartmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return
	}

	var department models.Department
	err = models.DB.First(&department, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create department
// @Description	Creates a new department. The code must not be in use yet.
// @Tags			Departments
// @Accept			json
// @Produce		json
// @Success		201			{object}	DepartmentResponse
// @Failure		400			{object}	DepartmentResponse
// @Failure		409			{object}	DepartmentResponse
// @Failure		500			{object}	DepartmentResponse
// @Param			department	body		DepartmentEditable	true	"Department"
// @Router			/v1/departments [post]
func CreateDepartment(c *gin.Context) {
	var editable DepartmentEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	department := editable.model()
	err = models.DB.Create(&department).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	data := newDepartment(department)
	c.JSON(http.StatusCreated, DepartmentResponse{Data: &data})
}

// @Summary		List departments
// @Description	Returns all departments, ordered by sort order, then code
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	DepartmentListResponse
// @Failure		500	{object}	DepartmentListResponse
// @Param			active	query	bool	false	"Only return active departments"
// @Router			/v1/departments [get]
func GetDepartments(c *gin.Context) {
	var filter DepartmentQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Order("sort_order ASC, code ASC")
	if filter.Active {
		q = q.Where("is_active = ?", true)
	}

	var departments []models.Department
	err := q.Find(&departments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Department, 0, len(departments))
	for _, department := range departments {
		apiResources = append(apiResources, newDepartment(department))
	}

	c.JSON(http.StatusOK, DepartmentListResponse{Data: apiResources})
}

// @Summary		Check department code
// @Description	Reports whether a department code is already in use. Pass excludeId when updating so a department's own code does not count as a duplicate.
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	DepartmentExistsResponse
// @Failure		400	{object}	DepartmentExistsResponse
// @Failure		500	{object}	DepartmentExistsResponse
// @Param			code		query	string	true	"The department code to check"
// @Param			excludeId	query	uint64	false	"Department ID whose own code does not count"
// @Router			/v1/departments/exists [get]
func GetDepartmentExists(c *gin.Context) {
	var query DepartmentExistsQuery
	err := c.ShouldBind(&query)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DepartmentExistsResponse{
			Error: &e,
		})
		return
	}

	exists, err := models.DepartmentCodeExists(models.DB, query.Code, query.ExcludeID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentExistsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, DepartmentExistsResponse{Data: &DepartmentExists{Exists: exists}})
}

// @Summary		Get department
// @Description	Returns a specific department
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	DepartmentResponse
// @Failure		400	{object}	DepartmentResponse
// @Failure		404	{object}	DepartmentResponse
// @Failure		500	{object}	DepartmentResponse
// @Param			id	path		uint64	true	"ID of the department"
// @Router			/v1/departments/{id} [get]
func GetDepartment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, DepartmentResponse{
			Error: &e,
		})
		return
	}

	var department models.Department
	err = models.DB.First(&department, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	data := newDepartment(department)
	c.JSON(http.StatusOK, DepartmentResponse{Data: &data})
}

// @Summary		Update department
// @Description	Updates an existing department. All fields are set to the values sent. Changing the code to one used by another department fails; keeping the own code is fine.
// @Tags			Departments
// @Accept			json
// @Produce		json
// @Success		200			{object}	DepartmentResponse
// @Failure		400			{object}	DepartmentResponse
// @Failure		404			{object}	DepartmentResponse
// @Failure		409			{object}	DepartmentResponse
// @Failure		500			{object}	DepartmentResponse
// @Param			id			path		uint64				true	"ID of the department"
// @Param			department	body		DepartmentEditable	true	"Department"
// @Router			/v1/departments/{id} [patch]
func UpdateDepartment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, DepartmentResponse{
			Error: &e,
		})
		return
	}

	var department models.Department
	err = models.DB.First(&department, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	var editable DepartmentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&department).
		Select("Code", "Name", "IsActive", "SortOrder").
		Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	data := newDepartment(department)
	c.JSON(http.StatusOK, DepartmentResponse{Data: &data})
}

// @Summary		Delete department
// @Description	Deletes a department. Ledger history references the code, not the department row, and stays intact.
// @Tags			Departments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the department"
// @Router			/v1/departments/{id} [delete]
func DeleteDepartment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return
	}

	var department models.Department
	err = models.DB.First(&department, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&department).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
