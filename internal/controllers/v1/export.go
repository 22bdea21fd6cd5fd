package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type ExportResponse struct {
	Data models.Document `json:"data"` // The complete state
}

type ImportResponse struct {
	Error *string          `json:"error" example:"transaction 3: the amount must be greater than zero"` // The error, if any occurred
	Data  *models.Document `json:"data"`                                                                 // The state after the import
}

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/export", OptionsExport)
	r.GET("/export", co.GetExport)

	r.OPTIONS("/import", OptionsImport)
	r.POST("/import", co.CreateImport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export
// @Description	Exports transactions, wallets, budget and preferences as one document
// @Tags			Import
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=smartfin.json")
	c.JSON(http.StatusOK, ExportResponse{Data: co.Ledger.Snapshot()})
}

// @Summary		Import
// @Description	Replaces the complete state with the document. Wallet balances are taken as they are in the document.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		200			{object}	ImportResponse
// @Failure		400			{object}	ImportResponse
// @Param			document	body		models.Document	true	"Document as returned by the export"
// @Router			/v1/import [post]
func (co Controller) CreateImport(c *gin.Context) {
	var doc models.Document
	err := httputil.BindData(c, &doc)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	for i := range doc.Transactions {
		doc.Transactions[i].Normalize()
		if err := validate(doc.Transactions[i]); err != nil {
			e := fmt.Sprintf("transaction %d: %s", i, err.Error())
			c.JSON(http.StatusBadRequest, ImportResponse{
				Error: &e,
			})
			return
		}
	}

	for _, wallet := range doc.Wallets {
		if !wallet.ID.Valid() {
			e := fmt.Sprintf("wallet %q: %s", wallet.ID, errSourceInvalid.Error())
			c.JSON(http.StatusBadRequest, ImportResponse{
				Error: &e,
			})
			return
		}
	}

	if doc.BudgetConfig.Limit.IsNegative() {
		e := errLimitNegative.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &e,
		})
		return
	}

	co.Ledger.Restore(doc)

	data := co.Ledger.Snapshot()
	c.JSON(http.StatusOK, ImportResponse{Data: &data})
}
