package v1

import (
	"net/http"
	"time"

	"github.com/finance-center/backend/internal/autosave"
	"github.com/finance-center/backend/internal/httputil"
	"github.com/finance-center/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// autosaveDelay is how long a debounced balance save waits for further edits
// before it is persisted.
const autosaveDelay = 400 * time.Millisecond

// balanceSaver debounces the PATCH endpoint. Keyed by bank type, so edits to
// the two banks never cancel each other.
var balanceSaver = autosave.New(autosaveDelay)

// RegisterBankInitialBalanceRoutes registers the routes for bank initial
// balances with the RouterGroup that is passed.
func RegisterBankInitialBalanceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankInitialBalanceList)
		r.GET("", GetBankInitialBalances)
	}

	// Initial balance of one bank
	{
		r.OPTIONS("/:bankType", OptionsBankInitialBalanceDetail)
		r.GET("/:bankType", GetBankInitialBalance)
		r.PUT("/:bankType", UpdateBankInitialBalance)
		r.PATCH("/:bankType", PatchBankInitialBalance)
	}
}

// bankTypeFromURI binds and validates the bank type path parameter.
func bankTypeFromURI(c *gin.Context) (models.BankType, error) {
	var uri URIBankType
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", models.ErrBankTypeInvalid
	}

	return models.ParseBankType(uri.BankType)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankInitialBalances
// @Success		204
// @Router			/v1/bank-initial-balances [options]
func OptionsBankInitialBalanceList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankInitialBalances
// @Success		204
// @Failure		400	{object}	httpError
// @Param			bankType	path	string	true	"The bank type"
// @Router			/v1/bank-initial-balances/{bankType} [options]
func OptionsBankInitialBalanceDetail(c *gin.Context) {
	_, err := bankTypeFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutPatch(c)
}

// @Summary		List initial balances
// @Description	Returns the configured initial balances of all banks. Banks without a configuration are absent from the list.
// @Tags			BankInitialBalances
// @Produce		json
// @Success		200	{object}	BankInitialBalanceListResponse
// @Failure		500	{object}	BankInitialBalanceListResponse
// @Router			/v1/bank-initial-balances [get]
func GetBankInitialBalances(c *gin.Context) {
	var balances []models.BankInitialBalance
	err := models.DB.Order("bank_type ASC").Find(&balances).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]BankInitialBalance, 0, len(balances))
	for _, balance := range balances {
		apiResources = append(apiResources, newBankInitialBalance(balance))
	}

	c.JSON(http.StatusOK, BankInitialBalanceListResponse{Data: apiResources})
}

// @Summary		Get initial balance
// @Description	Returns the configured initial balance of a bank
// @Tags			BankInitialBalances
// @Produce		json
// @Success		200	{object}	BankInitialBalanceResponse
// @Failure		400	{object}	BankInitialBalanceResponse
// @Failure		404	{object}	BankInitialBalanceResponse
// @Failure		500	{object}	BankInitialBalanceResponse
// @Param			bankType	path	string	true	"The bank type"
// @Router			/v1/bank-initial-balances/{bankType} [get]
func GetBankInitialBalance(c *gin.Context) {
	bank, err := bankTypeFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	var balance models.BankInitialBalance
	err = models.DB.Where(&models.BankInitialBalance{BankType: bank}).First(&balance).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	data := newBankInitialBalance(balance)
	c.JSON(http.StatusOK, BankInitialBalanceResponse{Data: &data})
}

// @Summary		Set initial balance
// @Description	Sets the initial balance of a bank immediately. The configuration is created if it does not exist yet.
// @Tags			BankInitialBalances
// @Accept			json
// @Produce		json
// @Success		200			{object}	BankInitialBalanceResponse
// @Failure		400			{object}	BankInitialBalanceResponse
// @Failure		500			{object}	BankInitialBalanceResponse
// @Param			bankType	path		string						true	"The bank type"
// @Param			balance		body		BankInitialBalanceEditable	true	"Initial balance"
// @Router			/v1/bank-initial-balances/{bankType} [put]
func UpdateBankInitialBalance(c *gin.Context) {
	bank, err := bankTypeFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	var editable BankInitialBalanceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	// A pending debounced save would overwrite what we are about to write
	balanceSaver.Cancel(string(bank))

	balance := editable.model(bank)
	err = balance.Save(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	data := newBankInitialBalance(balance)
	c.JSON(http.StatusOK, BankInitialBalanceResponse{Data: &data})
}

// @Summary		Schedule initial balance save
// @Description	Schedules a debounced save of the initial balance. Rapid successive calls for the same bank persist only the last value. The response is sent before the save runs.
// @Tags			BankInitialBalances
// @Accept			json
// @Produce		json
// @Success		202			{object}	BankInitialBalanceResponse
// @Failure		400			{object}	BankInitialBalanceResponse
// @Param			bankType	path		string						true	"The bank type"
// @Param			balance		body		BankInitialBalanceEditable	true	"Initial balance"
// @Router			/v1/bank-initial-balances/{bankType} [patch]
func PatchBankInitialBalance(c *gin.Context) {
	bank, err := bankTypeFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	var editable BankInitialBalanceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankInitialBalanceResponse{
			Error: &e,
		})
		return
	}

	balance := editable.model(bank)
	balanceSaver.Schedule(string(bank), func() {
		if err := balance.Save(models.DB); err != nil {
			log.Error().Err(err).Str("bankType", string(bank)).Msg("autosave failed")
		}
	})

	data := newBankInitialBalance(balance)
	c.JSON(http.StatusAccepted, BankInitialBalanceResponse{Data: &data})
}
