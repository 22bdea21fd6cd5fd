package healthz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httperror"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
)

var (
	errNotRunning = errors.New("the document store synchronization is not running")
	errNotLoaded  = errors.New("the document has not been loaded from the store yet")
)

// Status is implemented by the component whose state determines health.
type Status interface {
	IsRunning() bool
	IsLoaded() bool
}

type Controller struct {
	Status Status
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	httperror.Error
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if co.Status != nil {
		if !co.Status.IsRunning() {
			c.JSON(http.StatusServiceUnavailable, httperror.New(errNotRunning))
			return
		}

		if !co.Status.IsLoaded() {
			c.JSON(http.StatusServiceUnavailable, httperror.New(errNotLoaded))
			return
		}
	}

	c.Status(http.StatusNoContent)
}
