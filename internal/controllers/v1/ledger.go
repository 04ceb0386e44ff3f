package v1

import (
	"fmt"
	"net/http"

	"github.com/finance-center/backend/internal/httputil"
	"github.com/finance-center/backend/internal/importer"
	"github.com/finance-center/backend/internal/importer/parser/bankbook"
	"github.com/finance-center/backend/internal/models"
	"github.com/finance-center/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterLedgerRoutes registers the routes shared by all ledgers with the
// RouterGroup that is passed: CRUD and the year listing.
func RegisterLedgerRoutes[E models.LedgerModel](r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLedgerList)
		r.GET("", GetLedgerEntries[E])
		r.POST("", CreateLedgerEntry[E])
	}

	// Years with entries
	{
		r.OPTIONS("/years", OptionsLedgerYears)
		r.GET("/years", GetLedgerYears[E])
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", OptionsLedgerDetail[E])
		r.GET("/:id", GetLedgerEntry[E])
		r.PATCH("/:id", UpdateLedgerEntry[E])
		r.DELETE("/:id", DeleteLedgerEntry[E])
	}
}

// RegisterBankLedgerRoutes registers the shared ledger routes plus the bank
// account features: annual statements and the workbook import.
func RegisterBankLedgerRoutes[E models.LedgerModel](r *gin.RouterGroup, bank models.BankType) {
	RegisterLedgerRoutes[E](r)

	// Annual statements
	{
		r.OPTIONS("/years/:year", OptionsLedgerStatement)
		r.GET("/years/:year", GetLedgerStatement[E](bank))
	}

	// Workbook import
	{
		r.OPTIONS("/import", OptionsLedgerImport)
		r.POST("/import", ImportLedger[E])
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Router			/v1/cash-flows [options]
func OptionsLedgerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the ledger entry"
// @Router			/v1/cash-flows/{id} [options]
func OptionsLedgerDetail[E models.LedgerModel](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return
	}

	var entry E
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Router			/v1/shanghai-bank/years [options]
func OptionsLedgerYears(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Router			/v1/shanghai-bank/years/{year} [options]
func OptionsLedgerStatement(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Router			/v1/shanghai-bank/import [options]
func OptionsLedgerImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create ledger entry
// @Description	Creates a new ledger entry
// @Tags			Ledgers
// @Accept			json
// @Produce		json
// @Success		201		{object}	LedgerEntryResponse
// @Failure		400		{object}	LedgerEntryResponse
// @Failure		500		{object}	LedgerEntryResponse
// @Param			entry	body		LedgerEntryEditable	true	"Ledger entry"
// @Router			/v1/cash-flows [post]
func CreateLedgerEntry[E models.LedgerModel](c *gin.Context) {
	var editable LedgerEntryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	entry := models.NewLedgerEntry[E](editable.fields())
	err = models.DB.Create(&entry).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	data := newLedgerEntry(models.Entry(entry))
	c.JSON(http.StatusCreated, LedgerEntryResponse{Data: &data})
}

// @Summary		List ledger entries
// @Description	Returns a list of ledger entries, ordered by remittance date
// @Tags			Ledgers
// @Produce		json
// @Success		200	{object}	LedgerEntryListResponse
// @Failure		400	{object}	LedgerEntryListResponse
// @Failure		500	{object}	LedgerEntryListResponse
// @Router			/v1/cash-flows [get]
// @Param			department	query	string	false	"Filter by department code"
// @Param			from		query	string	false	"Entries dated on or after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Entries dated on or before this date (YYYY-MM-DD)"
// @Param			year		query	int		false	"Filter by calendar year of the remittance date"
func GetLedgerEntries[E models.LedgerModel](c *gin.Context) {
	var filter LedgerQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Order("datetime(remittance_date) ASC, id ASC")

	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}

	if filter.Year != 0 {
		q = q.Where("remittance_date IS NOT NULL").
			Where(fmt.Sprintf("%s = ?", models.RemittanceYearExpr), filter.Year)
	}

	if filter.From != "" {
		from, err := types.ParseDate(filter.From)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, LedgerEntryListResponse{Error: &e})
			return
		}
		q = q.Where("datetime(remittance_date) >= datetime(?)", from)
	}

	if filter.To != "" {
		to, err := types.ParseDate(filter.To)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, LedgerEntryListResponse{Error: &e})
			return
		}
		q = q.Where("datetime(remittance_date) <= datetime(?)", to)
	}

	var entries []E
	err := q.Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		apiResources = append(apiResources, newLedgerEntry(models.Entry(entry)))
	}

	c.JSON(http.StatusOK, LedgerEntryListResponse{Data: apiResources})
}

// @Summary		Get ledger entry
// @Description	Returns a specific ledger entry
// @Tags			Ledgers
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	LedgerEntryResponse
// @Failure		404	{object}	LedgerEntryResponse
// @Failure		500	{object}	LedgerEntryResponse
// @Param			id	path		uint64	true	"ID of the ledger entry"
// @Router			/v1/cash-flows/{id} [get]
func GetLedgerEntry[E models.LedgerModel](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	var entry E
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	data := newLedgerEntry(models.Entry(entry))
	c.JSON(http.StatusOK, LedgerEntryResponse{Data: &data})
}

// @Summary		Update ledger entry
// @Description	Updates an existing ledger entry. All fields are set to the values sent.
// @Tags			Ledgers
// @Accept			json
// @Produce		json
// @Success		200		{object}	LedgerEntryResponse
// @Failure		400		{object}	LedgerEntryResponse
// @Failure		404		{object}	LedgerEntryResponse
// @Failure		500		{object}	LedgerEntryResponse
// @Param			id		path		uint64				true	"ID of the ledger entry"
// @Param			entry	body		LedgerEntryEditable	true	"Ledger entry"
// @Router			/v1/cash-flows/{id} [patch]
func UpdateLedgerEntry[E models.LedgerModel](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	var entry E
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	var editable LedgerEntryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	update := models.NewLedgerEntry[E](editable.fields())
	err = models.DB.Model(&entry).
		Select("RemittanceDate", "Department", "Applicant", "Reason", "Income", "Expense", "Fee").
		Updates(update).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerEntryResponse{
			Error: &e,
		})
		return
	}

	data := newLedgerEntry(models.Entry(entry))
	c.JSON(http.StatusOK, LedgerEntryResponse{Data: &data})
}

// @Summary		Delete ledger entry
// @Description	Deletes a ledger entry. Deleting an unknown ID is not an error to the ledger, it reports 404 and changes nothing.
// @Tags			Ledgers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the ledger entry"
// @Router			/v1/cash-flows/{id} [delete]
func DeleteLedgerEntry[E models.LedgerModel](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return
	}

	var entry E
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		List ledger years
// @Description	Returns the years that have dated ledger entries, newest first
// @Tags			Ledgers
// @Produce		json
// @Success		200	{object}	LedgerYearsResponse
// @Failure		500	{object}	LedgerYearsResponse
// @Router			/v1/shanghai-bank/years [get]
func GetLedgerYears[E models.LedgerModel](c *gin.Context) {
	years, err := models.LedgerYears[E](models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerYearsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, LedgerYearsResponse{Data: years})
}

// @Summary		Get annual statement
// @Description	Returns all entries of the year with running balances, preceded by a synthetic opening balance row when the opening balance is not zero
// @Tags			Ledgers
// @Produce		json
// @Success		200		{object}	StatementResponse
// @Failure		400		{object}	StatementResponse
// @Failure		500		{object}	StatementResponse
// @Param			year	path		int	true	"Calendar year"
// @Router			/v1/shanghai-bank/years/{year} [get]
func GetLedgerStatement[E models.LedgerModel](bank models.BankType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIYear
		err := c.ShouldBindUri(&uri)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, StatementResponse{
				Error: &e,
			})
			return
		}

		openingBalance, err := models.OpeningBalance[E](models.DB, bank, uri.Year)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), StatementResponse{
				Error: &e,
			})
			return
		}

		entries, err := models.LedgerEntriesForYear[E](models.DB, uri.Year)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), StatementResponse{
				Error: &e,
			})
			return
		}

		balances := models.RunningBalances(entries, openingBalance)

		statement := Statement{
			Year:           uri.Year,
			OpeningBalance: openingBalance,
			Entries:        make([]LedgerEntry, 0, len(entries)+1),
		}

		if !openingBalance.IsZero() {
			statement.Entries = append(statement.Entries, newOpeningEntry(uri.Year, openingBalance))
		}

		for _, entry := range entries {
			data := newLedgerEntry(models.Entry(entry))
			balance := balances[models.Entry(entry).ID]
			data.RunningBalance = &balance
			statement.Entries = append(statement.Entries, data)
		}

		c.JSON(http.StatusOK, StatementResponse{Data: &statement})
	}
}

// @Summary		Import ledger workbook
// @Description	Replaces the full ledger with the entries parsed from the workbook at the given path. Existing entries are cleared before parsing, so a failed import leaves the ledger empty and has to be re-run.
// @Tags			Ledgers
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		404		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			request	body		ImportRequest	true	"Workbook location"
// @Router			/v1/shanghai-bank/import [post]
func ImportLedger[E models.LedgerModel](c *gin.Context) {
	var request ImportRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	// A missing file must not destroy the ledger
	err = bankbook.CheckFile(request.Path)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	// The clear commits before parsing starts. A mid-parse failure leaves
	// the ledger empty; the import has to be re-run.
	err = importer.Clear[E](models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	parsed, err := bankbook.Parse(request.Path)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	created, err := importer.Create[E](models.DB, parsed)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{
		Data: &ImportResult{
			Created:      created,
			DanglingFees: parsed.DanglingFees,
		},
	})
}
