package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/analytics"
	"github.com/thucthuc0607-code/SmartFin-2/internal/forecast"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/search"
)

type AnalyticsQuery struct {
	Mode string    `form:"mode"` // week or month
	Now  time.Time `form:"now"`  // Reference time in RFC3339 format
}

type CalendarQuery struct {
	Date string `form:"date"` // Reference day in YYYY-MM-DD format
	Mode string `form:"mode"` // week or month
}

// Display holds the headline figures in compact notation.
type Display struct {
	Current string `json:"current" example:"800k"`
	Prior   string `json:"prior" example:"1tr"`
	Diff    string `json:"diff" example:"-200k"`
}

type Analytics struct {
	analytics.Summary
	Forecast forecast.Advisory `json:"forecast"` // Advice on the spending pace
	Display  Display           `json:"display"`  // Compact figures
}

type AnalyticsResponse struct {
	Error *string    `json:"error" example:"the mode must be either 'week' or 'month'"` // The error, if any occurred
	Data  *Analytics `json:"data"`                                                      // Data for the analysis
}

type OverviewResponse struct {
	Error *string             `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
	Data  *analytics.Overview `json:"data"`                                                                                 // Data for the overview
}

type Day struct {
	analytics.DayStats
	Transactions []Transaction `json:"transactions"` // Transactions of the day, newest first
}

type DayResponse struct {
	Error *string `json:"error" example:"could not parse the date, did you use YYYY-MM-DD format?"` // The error, if any occurred
	Data  *Day    `json:"data"`                                                                     // Data for the day
}

type CalendarResponse struct {
	Error *string                 `json:"error" example:"the mode must be either 'week' or 'month'"` // The error, if any occurred
	Data  []analytics.CalendarDay `json:"data"`                                                      // Flags per day
}

// RegisterAnalyticsRoutes registers the computed endpoints with the
// v1 RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/analytics", OptionsAnalytics)
	r.GET("/analytics", co.GetAnalytics)

	r.OPTIONS("/overview", OptionsAnalytics)
	r.GET("/overview", co.GetOverview)

	r.OPTIONS("/days/:day", OptionsAnalytics)
	r.GET("/days/:day", co.GetDay)

	r.OPTIONS("/calendar", OptionsAnalytics)
	r.GET("/calendar", co.GetCalendar)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics [options]
// @Router			/v1/overview [options]
// @Router			/v1/days/{day} [options]
// @Router			/v1/calendar [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get spending analysis
// @Description	Compares the spend of the current week or month with the prior one and gives advice on the spending pace
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	AnalyticsResponse
// @Failure		400		{object}	AnalyticsResponse
// @Param			mode	query		string	false	"week or month. Defaults to week."
// @Param			now		query		string	false	"Reference time in RFC3339 format. Defaults to the current time."
// @Router			/v1/analytics [get]
func (co Controller) GetAnalytics(c *gin.Context) {
	var query AnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{
			Error: &s,
		})
		return
	}

	mode, err := analytics.ParseMode(query.Mode)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyticsResponse{
			Error: &s,
		})
		return
	}

	summary := analytics.Aggregate(co.Ledger.Transactions(), co.reference(QueryNow{Now: query.Now}), mode)
	advisory := forecast.Evaluate(forecast.InputFor(summary.Window, summary.Current, co.Ledger.Budget()))

	c.JSON(http.StatusOK, AnalyticsResponse{
		Data: &Analytics{
			Summary:  summary,
			Forecast: advisory,
			Display: Display{
				Current: forecast.FormatCompact(summary.Current),
				Prior:   forecast.FormatCompact(summary.Prior),
				Diff:    forecast.FormatCompact(summary.Diff),
			},
		},
	})
}

// @Summary		Get overview
// @Description	Returns wallet balances, the totals of the current month and both budget bars
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	OverviewResponse
// @Failure		400	{object}	OverviewResponse
// @Param			now	query		string	false	"Reference time in RFC3339 format. Defaults to the current time."
// @Router			/v1/overview [get]
func (co Controller) GetOverview(c *gin.Context) {
	var query QueryNow
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, OverviewResponse{
			Error: &s,
		})
		return
	}

	overview := analytics.NewOverview(co.Ledger.Transactions(), co.Ledger.Wallets(), co.Ledger.Budget(), co.reference(query))
	c.JSON(http.StatusOK, OverviewResponse{Data: &overview})
}

// @Summary		Get day
// @Description	Returns the totals and transactions of a calendar day
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	DayResponse
// @Failure		400	{object}	DayResponse
// @Param			day	path		string	true	"Day in YYYY-MM-DD format"
// @Router			/v1/days/{day} [get]
func (co Controller) GetDay(c *gin.Context) {
	day, err := co.parseDay(c.Param("day"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DayResponse{
			Error: &s,
		})
		return
	}

	transactions := co.Ledger.Transactions()

	data := Day{
		DayStats:     analytics.NewDayStats(transactions, day, co.Ledger.Budget()),
		Transactions: make([]Transaction, 0),
	}
	for _, transaction := range search.Filter(transactions, search.TabAll, "", day, day) {
		data.Transactions = append(data.Transactions, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, DayResponse{Data: &data})
}

// @Summary		Get calendar
// @Description	Returns for every day of the week or month whether it has income or expenses
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	CalendarResponse
// @Failure		400		{object}	CalendarResponse
// @Param			date	query		string	false	"Reference day in YYYY-MM-DD format. Defaults to today."
// @Param			mode	query		string	false	"week or month. Defaults to week."
// @Router			/v1/calendar [get]
func (co Controller) GetCalendar(c *gin.Context) {
	var query CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	mode, err := analytics.ParseMode(query.Mode)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	reference, err := co.parseDay(query.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	if reference.IsZero() {
		reference = co.now()
	}

	c.JSON(http.StatusOK, CalendarResponse{Data: analytics.Calendar(co.Ledger.Transactions(), reference, mode)})
}
