package v1

import (
	"errors"
	"net/http"

	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction with this ID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errDateInvalid = errors.New("could not parse the date, did you use YYYY-MM-DD format?")

// Transaction errors
var (
	errAmountNotPositive = errors.New("the amount must be greater than zero")
	errTypeInvalid       = errors.New("the transaction type must be either 'expense' or 'income'")
	errSourceInvalid     = errors.New("the source must be one of 'cash', 'bank' or 'ewallet'")
)

// Budget errors
var (
	errLimitNegative = errors.New("the budget limit must not be negative")
)

// Voice errors
var (
	errVoiceInputMissing = errors.New("either transcript or errorCode must be set")
	errVoiceBusy         = errors.New("a voice request is already being processed, please wait")
)
