package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
)

type Preferences struct {
	DarkMode bool `json:"darkMode" example:"true"` // Use the dark theme
}

type PreferencesEditable struct {
	DarkMode *bool `json:"darkMode" example:"true"` // Use the dark theme. Unchanged if not set
}

type PreferencesResponse struct {
	Error *string      `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  *Preferences `json:"data"`                                               // Data for the preferences
}

// RegisterPreferenceRoutes registers the routes for display preferences
// with the RouterGroup that is passed.
func (co Controller) RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPreferences)
	r.GET("", co.GetPreferences)
	r.PATCH("", co.UpdatePreferences)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences [options]
func OptionsPreferences(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get preferences
// @Description	Returns the display preferences
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	PreferencesResponse
// @Router			/v1/preferences [get]
func (co Controller) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, PreferencesResponse{Data: &Preferences{DarkMode: co.Ledger.DarkMode()}})
}

// @Summary		Update preferences
// @Description	Updates the display preferences
// @Tags			Preferences
// @Accept			json
// @Produce		json
// @Success		200			{object}	PreferencesResponse
// @Failure		400			{object}	PreferencesResponse
// @Param			preferences	body		PreferencesEditable	true	"Preferences"
// @Router			/v1/preferences [patch]
func (co Controller) UpdatePreferences(c *gin.Context) {
	var editable PreferencesEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &e,
		})
		return
	}

	if editable.DarkMode != nil {
		co.Ledger.SetDarkMode(*editable.DarkMode)
	}

	c.JSON(http.StatusOK, PreferencesResponse{Data: &Preferences{DarkMode: co.Ledger.DarkMode()}})
}
