package list_bookings

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
)

// ParseQuery разбирает ?from=&to=&status=&includeDeleted=
func ParseQuery(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if raw := q.Get("from"); raw != "" {
		from, err := handlers.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := q.Get("to"); raw != "" {
		to, err := handlers.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		req.Status = &raw
	}

	if raw := q.Get("includeDeleted"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeDeleted = include
	}

	return req, nil
}
