package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	Wallets      string `json:"wallets" example:"https://example.com/api/v1/wallets"`           // URL of Wallet collection endpoint
	Budget       string `json:"budget" example:"https://example.com/api/v1/budget"`             // URL of the budget configuration
	Preferences  string `json:"preferences" example:"https://example.com/api/v1/preferences"`   // URL of the display preferences
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of the category sets
	Analytics    string `json:"analytics" example:"https://example.com/api/v1/analytics"`       // URL of the spending analysis
	Overview     string `json:"overview" example:"https://example.com/api/v1/overview"`         // URL of the home overview
	Calendar     string `json:"calendar" example:"https://example.com/api/v1/calendar"`         // URL of the calendar flags
	Voice        string `json:"voice" example:"https://example.com/api/v1/voice"`               // URL of the voice input endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`             // URL of the export endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import"`             // URL of the import endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions: url + "/v1/transactions",
			Wallets:      url + "/v1/wallets",
			Budget:       url + "/v1/budget",
			Preferences:  url + "/v1/preferences",
			Categories:   url + "/v1/categories",
			Analytics:    url + "/v1/analytics",
			Overview:     url + "/v1/overview",
			Calendar:     url + "/v1/calendar",
			Voice:        url + "/v1/voice",
			Export:       url + "/v1/export",
			Import:       url + "/v1/import",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
