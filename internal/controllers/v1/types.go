package v1

import (
	"time"
)

// dateFormat is the layout of calendar days in paths and query strings.
const dateFormat = "2006-01-02"

type URIID struct {
	ID string `uri:"id" binding:"required"` // ID of the resource
}

type QueryNow struct {
	Now time.Time `form:"now" example:"2024-05-15T10:00:00Z"` // Reference time in RFC3339 format. Defaults to the current time.
}

type Pagination struct {
	Count  int `json:"count" example:"25"`  // The amount of records returned in this response
	Offset int `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int `json:"total" example:"827"` // The total number of resources matching the query
}

// reference returns the time requested in the query or, if none was
// requested, the controller's current time.
func (co Controller) reference(q QueryNow) time.Time {
	if q.Now.IsZero() {
		return co.now()
	}
	return q.Now.In(co.now().Location())
}

// parseDay parses a YYYY-MM-DD day in the location of the controller's
// current time. An empty string yields the zero time.
func (co Controller) parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(dateFormat, s, co.now().Location())
	if err != nil {
		return time.Time{}, errDateInvalid
	}
	return t, nil
}
