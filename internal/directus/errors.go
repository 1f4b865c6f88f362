// SPDX-License-Identifier: Apache-2.0

package directus

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	ErrLogin   = errors.New("login on backend failed")
	ErrRefresh = errors.New("token refresh failed")
	ErrLogout  = errors.New("logout on backend failed")
	ErrQuery   = errors.New("graphql query failed")
	ErrPing    = errors.New("backend ping failed")

	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrServerError  = errors.New("backend server error")
	ErrUnavailable  = errors.New("backend unavailable")
)

// restErrorEnvelope is the Directus REST error shape:
// {"errors": [{"message": "...", "extensions": {"code": "..."}}]}.
type restErrorEnvelope struct {
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	} `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp)

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerError, resp.StatusCode(), body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorBody extracts a human-readable error description from a failed
// response. Directus wraps errors in a JSON envelope; when the body parses
// as one, the first message (plus its code, if any) is used. Otherwise the
// raw body is returned, falling back to the standard status text.
func errorBody(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var envelope restErrorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		if first.Extensions.Code != "" {
			return fmt.Sprintf("%s (%s)", first.Message, first.Extensions.Code)
		}
		return first.Message
	}

	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
