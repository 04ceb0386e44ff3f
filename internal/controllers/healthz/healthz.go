// Package healthz provides the application health endpoints, including the
// table utility that checks and repairs the database schema.
package healthz

import (
	"net/http"
	"sort"

	"github.com/finance-center/backend/internal/httputil"
	"github.com/finance-center/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"table unknown_table is not part of the schema"`
}

// TableStatus reports whether one expected database table exists.
type TableStatus struct {
	Name   string `json:"name" example:"cash_flows"`
	Exists bool   `json:"exists" example:"true"`
}

type TableStatusListResponse struct {
	Data  []TableStatus `json:"data"`  // Status of every expected table
	Error *string       `json:"error"` // The error, if any occurred
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)

	// Schema utility
	{
		r.OPTIONS("/tables", OptionsTables)
		r.GET("/tables", GetTables)
		r.POST("/tables", CreateTables)

		r.OPTIONS("/tables/:name", OptionsTable)
		r.POST("/tables/:name", CreateTable)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz/tables [options]
func OptionsTables(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz/tables/{name} [options]
func OptionsTable(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Table status
// @Description	Reports for every expected database table whether it exists
// @Tags			General
// @Produce		json
// @Success		200	{object}	TableStatusListResponse
// @Router			/healthz/tables [get]
func GetTables(c *gin.Context) {
	statuses := make([]TableStatus, 0, len(models.ExpectedTables()))
	for name, model := range models.ExpectedTables() {
		statuses = append(statuses, TableStatus{
			Name:   name,
			Exists: models.DB.Migrator().HasTable(model),
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})

	c.JSON(http.StatusOK, TableStatusListResponse{Data: statuses})
}

// @Summary		Create missing tables
// @Description	Creates every expected database table that does not exist yet and returns the resulting status
// @Tags			General
// @Produce		json
// @Success		200	{object}	TableStatusListResponse
// @Failure		500	{object}	TableStatusListResponse
// @Router			/healthz/tables [post]
func CreateTables(c *gin.Context) {
	for _, model := range models.ExpectedTables() {
		if models.DB.Migrator().HasTable(model) {
			continue
		}

		err := models.DB.Migrator().CreateTable(model)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusInternalServerError, TableStatusListResponse{Error: &e})
			return
		}
	}

	GetTables(c)
}

// @Summary		Create one table
// @Description	Creates a single expected database table if it does not exist yet
// @Tags			General
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			name	path	string	true	"Name of the table"
// @Router			/healthz/tables/{name} [post]
func CreateTable(c *gin.Context) {
	name := c.Param("name")

	model, ok := models.ExpectedTables()[name]
	if !ok {
		c.JSON(http.StatusNotFound, httpError{Error: "table " + name + " is not part of the schema"})
		return
	}

	if !models.DB.Migrator().HasTable(model) {
		err := models.DB.Migrator().CreateTable(model)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
	}

	c.Status(http.StatusNoContent)
}
