package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/openswim/swimtopia-export/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusNotModified:
		return ErrNotModified
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorDetail extracts a human-readable message from an error body. JSON:API
// error documents are flattened to their titles/details, OAuth token errors to
// their error/error_description pair; anything else is passed through trimmed.
func errorDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var doc models.ErrorDocument
	if err := json.Unmarshal(body, &doc); err == nil && len(doc.Errors) > 0 {
		parts := make([]string, 0, len(doc.Errors))
		for _, e := range doc.Errors {
			switch {
			case e.Title != "" && e.Detail != "":
				parts = append(parts, e.Title+": "+e.Detail)
			case e.Title != "":
				parts = append(parts, e.Title)
			case e.Detail != "":
				parts = append(parts, e.Detail)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	var oauth models.OAuthError
	if err := json.Unmarshal(body, &oauth); err == nil && oauth.Error != "" {
		if oauth.ErrorDescription != "" {
			return oauth.Error + ": " + oauth.ErrorDescription
		}
		return oauth.Error
	}

	return trimmed
}
