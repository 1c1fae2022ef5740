package lives

import (
	"fmt"

	"github.com/imtaco/showroom-live/internal/errors"
)

const (
	ErrDirectory    errors.Code = "directory unavailable"
	ErrFeed         errors.Code = "feed unavailable"
	ErrRoom         errors.Code = "room lookup failed"
	ErrPremiumGated errors.Code = "premium gated room"
	ErrRequest      errors.Code = "upstream request failed"
	ErrUpstream     errors.Code = "upstream error response"
)

// UpstreamErrorItem is one entry of the platform's {"errors":[...]} payload.
type UpstreamErrorItem struct {
	Code         int    `json:"code,omitempty"`
	Message      string `json:"message,omitempty"`
	ErrorUserMsg string `json:"error_user_msg,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
}

// UpstreamError is a non-2xx platform response.
type UpstreamError struct {
	StatusCode int
	Errors     []UpstreamErrorItem
}

func (e *UpstreamError) Error() string {
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Errors[0].Message)
	}
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// RedirectURL is set when the platform redirects the caller, e.g. to a premium paywall.
func (e *UpstreamError) RedirectURL() string {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].RedirectURL
}

// IsPremiumGated reports whether err is a redirect-style upstream error.
func IsPremiumGated(err error) bool {
	if errors.Is(err, ErrPremiumGated) {
		return true
	}
	ue, ok := errors.As[*UpstreamError](err)
	return ok && ue.RedirectURL() != ""
}
