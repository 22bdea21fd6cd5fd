package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type WalletEditable struct {
	Balance models.Amount `json:"balance" swaggertype:"string" example:"2000000"` // New balance. Overrides the balance derived from transactions
}

type WalletLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/wallets/cash"` // The wallet itself
}

// Wallet is the representation of a Wallet in API v1.
type Wallet struct {
	models.Wallet
	Links WalletLinks `json:"links"`
}

func newWallet(c *gin.Context, model models.Wallet) Wallet {
	return Wallet{
		Wallet: model,
		Links: WalletLinks{
			Self: fmt.Sprintf("%s/v1/wallets/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type WalletResponse struct {
	Error *string `json:"error" example:"there is no wallet with this ID"` // The error, if any occurred
	Data  *Wallet `json:"data"`                                            // Data for the wallet
}

type WalletListResponse struct {
	Data  []Wallet `json:"data"`                                       // List of wallets
	Error *string  `json:"error" example:"an unexpected error occurred"` // The error, if any occurred
}

// RegisterWalletRoutes registers the routes for wallets with
// the RouterGroup that is passed.
func (co Controller) RegisterWalletRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWallets)
		r.GET("", co.GetWallets)
	}

	// Wallet with ID
	{
		r.OPTIONS("/:id", OptionsWalletDetail)
		r.GET("/:id", co.GetWallet)
		r.PATCH("/:id", co.UpdateWallet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallets [options]
func OptionsWallets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Param			id	path	string	true	"cash, bank or ewallet"
// @Router			/v1/wallets/{id} [options]
func OptionsWalletDetail(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get wallets
// @Description	Returns the three wallets with their balances
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletListResponse
// @Router			/v1/wallets [get]
func (co Controller) GetWallets(c *gin.Context) {
	data := make([]Wallet, 0, len(models.WalletTypes))
	for _, wallet := range co.Ledger.Wallets() {
		data = append(data, newWallet(c, wallet))
	}

	c.JSON(http.StatusOK, WalletListResponse{Data: data})
}

// @Summary		Get wallet
// @Description	Returns a specific wallet
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Param			id	path		string	true	"cash, bank or ewallet"
// @Router			/v1/wallets/{id} [get]
func (co Controller) GetWallet(c *gin.Context) {
	wallet, ok := co.Ledger.Wallet(models.WalletType(c.Param("id")))
	if !ok {
		e := models.ErrWalletNotFound.Error()
		c.JSON(http.StatusNotFound, WalletResponse{
			Error: &e,
		})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// @Summary		Update wallet
// @Description	Overrides the balance of a wallet. The transaction history is not changed.
// @Tags			Wallets
// @Accept			json
// @Produce		json
// @Success		200		{object}	WalletResponse
// @Failure		400		{object}	WalletResponse
// @Failure		404		{object}	WalletResponse
// @Param			id		path		string			true	"cash, bank or ewallet"
// @Param			wallet	body		WalletEditable	true	"Wallet"
// @Router			/v1/wallets/{id} [patch]
func (co Controller) UpdateWallet(c *gin.Context) {
	id := models.WalletType(c.Param("id"))
	if _, ok := co.Ledger.Wallet(id); !ok {
		e := models.ErrWalletNotFound.Error()
		c.JSON(http.StatusNotFound, WalletResponse{
			Error: &e,
		})
		return
	}

	var editable WalletEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	wallet, ok := co.Ledger.SetWalletBalance(id, editable.Balance.Decimal)
	if !ok {
		e := models.ErrWalletNotFound.Error()
		c.JSON(http.StatusNotFound, WalletResponse{
			Error: &e,
		})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}
