// Package response holds the conversions shared by the v1 API handlers.
package response

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// TimestampLayout renders instants as ISO 8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FromServiceError maps service failures onto huma status errors. Validation
// details are reported under location, e.g. "body" or "query". Internal errors
// are recorded on the request's LogData and never sent to the client.
func FromServiceError(ctx context.Context, err error, location string, fallback string) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]error, len(validationErr.Details))
		for i, d := range validationErr.Details {
			details[i] = &huma.ErrorDetail{
				Location: location + "." + d.Field,
				Message:  d.Message,
				Value:    d.Value,
			}
		}
		return huma.NewError(http.StatusBadRequest, "Validation failed", details...)
	}

	if errors.Is(err, service.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, err.Error())
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback)
}
