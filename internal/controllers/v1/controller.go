package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/ledger"
	"github.com/thucthuc0607-code/SmartFin-2/internal/voice"
)

// Controller serves the v1 API for the state held by one ledger.
type Controller struct {
	Ledger *ledger.Ledger
	Voice  *voice.Service

	// Now returns the reference time for period calculations. Defaults
	// to time.Now.
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	RegisterRootRoutes(r)
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterWalletRoutes(r.Group("/wallets"))
	co.RegisterBudgetRoutes(r.Group("/budget"))
	co.RegisterPreferenceRoutes(r.Group("/preferences"))
	RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterAnalyticsRoutes(r)
	co.RegisterVoiceRoutes(r.Group("/voice"))
	co.RegisterExportRoutes(r)
}
