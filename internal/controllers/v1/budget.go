package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type BudgetEditable struct {
	Limit models.Amount `json:"limit" swaggertype:"string" example:"5000000"` // Monthly limit
}

type Budget struct {
	Limit       decimal.Decimal `json:"limit" example:"5000000"`       // Monthly limit
	WeeklyLimit decimal.Decimal `json:"weeklyLimit" example:"1250000"` // A quarter of the monthly limit
}

func newBudget(model models.BudgetConfig) Budget {
	return Budget{
		Limit:       model.Limit,
		WeeklyLimit: model.WeeklyLimit(),
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the budget limit must not be negative"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                  // Data for the budget
}

// RegisterBudgetRoutes registers the routes for the budget configuration
// with the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", co.GetBudget)
	r.PATCH("", co.UpdateBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get budget
// @Description	Returns the monthly budget limit and the derived weekly limit
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	data := newBudget(co.Ledger.Budget())
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Sets the monthly budget limit
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	if editable.Limit.IsNegative() {
		e := errLimitNegative.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(co.Ledger.SetBudgetLimit(editable.Limit.Decimal))
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
