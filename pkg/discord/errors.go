package discord

import (
	"errors"

	"meetmatch/internal/domain"
	"meetmatch/internal/ports/output"
)

// DomainErrorMessage resolves err to a localized user-facing message. Domain
// errors use "error_<code>", unknown errors the generic message.
func DomainErrorMessage(tr output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrDatesFormat):
		return tr.T(locale, "error_dates_format", nil)
	case errors.Is(err, ErrWindowFormat):
		return tr.T(locale, "error_window_format", nil)
	}
	if code := domain.Code(err); code != "" {
		return tr.T(locale, "error_"+code, nil)
	}
	return tr.T(locale, "error_generic", nil)
}
