package v1_test

import (
	"net/http"

	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Equal(v1.Links{
		Transactions: "http://example.com/v1/transactions",
		Wallets:      "http://example.com/v1/wallets",
		Budget:       "http://example.com/v1/budget",
		Preferences:  "http://example.com/v1/preferences",
		Categories:   "http://example.com/v1/categories",
		Analytics:    "http://example.com/v1/analytics",
		Overview:     "http://example.com/v1/overview",
		Calendar:     "http://example.com/v1/calendar",
		Voice:        "http://example.com/v1/voice",
		Export:       "http://example.com/v1/export",
		Import:       "http://example.com/v1/import",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET", r.Header().Get("allow"))
}
