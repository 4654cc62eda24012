package adapter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/openswim/swimtopia-export/internal/config"
	"github.com/openswim/swimtopia-export/internal/logger"
	"github.com/openswim/swimtopia-export/models"
)

const userAgent = "swimtopia-export/1.0"

type httpSwimtopiaAdapter struct {
	client   *resty.Client
	download *resty.Client

	baseURL   string
	verifySSL bool

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSwimtopiaAdapter constructs the HTTP/REST implementation of
// [SwimtopiaAdapter]. It normalises and validates the base URL, configures
// the API client with the JSON:API default headers and request timeout, and
// sets up a second, header-free client for signed export downloads.
//
// The download client carries no request timeout: export archives can be
// large, and the overall deadline is the caller's context.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPSwimtopiaAdapter(cfg config.API, log *logger.Logger) (SwimtopiaAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", models.JSONAPIContentType).
		SetHeader("Content-Type", models.JSONAPIContentType).
		SetHeader("User-Agent", userAgent)

	download := resty.New().
		SetHeader("User-Agent", userAgent)

	if !cfg.VerifySSL {
		tlsCfg := &tls.Config{InsecureSkipVerify: true} //nolint:gosec // operator opt-out for self-hosted endpoints
		client.SetTLSClientConfig(tlsCfg)
		download.SetTLSClientConfig(tlsCfg)
	}

	return &httpSwimtopiaAdapter{
		client:    client,
		download:  download,
		baseURL:   baseURL,
		verifySSL: cfg.VerifySSL,
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SwimtopiaAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpSwimtopiaAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SwimtopiaAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpSwimtopiaAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Authenticate implements [SwimtopiaAdapter]. It POSTs the form-encoded
// password grant to POST /oauth/token. On 200 with an access_token present,
// the token is stored via SetToken and a [models.Session] is returned.
// Credentials are never logged.
func (h *httpSwimtopiaAdapter) Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var tok models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   creds.Username,
			"password":   creds.Password,
		}).
		SetResult(&tok).
		Post("/oauth/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: token request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}
	if tok.AccessToken == "" {
		return models.Session{}, ErrNoAccessToken
	}

	h.SetToken(tok.AccessToken)
	h.logger.Info().Str("username", creds.Username).Msg("authenticated")

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return models.Session{
		Token:     tok.AccessToken,
		TokenType: tokenType,
		ExpiresIn: tok.ExpiresIn,
		BaseURL:   h.baseURL,
		VerifySSL: h.verifySSL,
	}, nil
}

// ListMeets implements [SwimtopiaAdapter]. It GETs /v3/meets, optionally
// scoped with filter[account_id].
func (h *httpSwimtopiaAdapter) ListMeets(ctx context.Context, accountID string) ([]models.Meet, error) {
	req := h.authedRequest(ctx)
	if accountID != "" {
		req.SetQueryParam("filter[account_id]", accountID)
	}

	resp, err := req.Get("/v3/meets")
	if err != nil {
		return nil, fmt.Errorf("%w: list meets request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var doc models.CollectionDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode meets response: %w", err)
	}

	meets := make([]models.Meet, 0, len(doc.Data))
	for _, res := range doc.Data {
		var attrs models.MeetAttributes
		if err = res.DecodeAttributes(&attrs); err != nil {
			return nil, err
		}
		meets = append(meets, models.Meet{
			ID:        res.ID,
			Name:      attrs.Name,
			StartDate: attrs.StartDate,
			EndDate:   attrs.EndDate,
		})
	}

	return meets, nil
}

// GetMeet implements [SwimtopiaAdapter].
func (h *httpSwimtopiaAdapter) GetMeet(ctx context.Context, meetID string) (models.SingleDocument, error) {
	return h.getSingle(ctx, fmt.Sprintf("/v3/meets/%s", url.PathEscape(meetID)), "meet")
}

// CreateExportTask implements [SwimtopiaAdapter]. It POSTs the JSON:API
// exportTask payload, carrying the client-generated req.TaskID as the
// resource id, to POST /v3/meets/{meetId}/export-tasks.
func (h *httpSwimtopiaAdapter) CreateExportTask(ctx context.Context, req models.ExportRequest) (models.ExportTask, error) {
	payload := exportTaskCreateDocument{
		Data: exportTaskResource{
			Type: "exportTask",
			ID:   req.TaskID,
			Attributes: models.ExportTaskAttributes{
				ExportType:   req.ExportType,
				ExportFormat: req.ExportFormat,
				ExportOptions: &models.ExportOptions{
					Team:    models.TeamFilter(req.TeamFilter),
					Session: models.SessionFilter(req.SessionFilter),
				},
			},
			Relationships: exportTaskRelationships{
				Meet: relationshipData{
					Data: models.ResourceIdentifier{Type: "meet", ID: req.MeetID},
				},
			},
		},
	}

	resp, err := h.authedRequest(ctx).
		SetBody(payload).
		Post(fmt.Sprintf("/v3/meets/%s/export-tasks", url.PathEscape(req.MeetID)))
	if err != nil {
		return models.ExportTask{}, fmt.Errorf("%w: create export task request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExportTask{}, err
	}

	var doc models.SingleDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.ExportTask{}, fmt.Errorf("decode export task response: %w", err)
	}

	return decodeExportTask(req.MeetID, doc.Data)
}

// GetExportTask implements [SwimtopiaAdapter]. A 304 from the server (state
// unchanged since the last poll) surfaces as [ErrNotModified].
func (h *httpSwimtopiaAdapter) GetExportTask(ctx context.Context, meetID, taskID string) (models.ExportTask, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/v3/meets/%s/export-tasks/%s", url.PathEscape(meetID), url.PathEscape(taskID)))
	if err != nil {
		return models.ExportTask{}, fmt.Errorf("%w: get export task request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExportTask{}, err
	}

	var doc models.SingleDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.ExportTask{}, fmt.Errorf("decode export task response: %w", err)
	}

	return decodeExportTask(meetID, doc.Data)
}

// ListExportTasks implements [SwimtopiaAdapter].
func (h *httpSwimtopiaAdapter) ListExportTasks(ctx context.Context, meetID string) ([]models.ExportTask, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/v3/meets/%s/export-tasks", url.PathEscape(meetID)))
	if err != nil {
		return nil, fmt.Errorf("%w: list export tasks request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var doc models.CollectionDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode export tasks response: %w", err)
	}

	tasks := make([]models.ExportTask, 0, len(doc.Data))
	for _, res := range doc.Data {
		task, err := decodeExportTask(meetID, res)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// ListAthletes implements [SwimtopiaAdapter].
func (h *httpSwimtopiaAdapter) ListAthletes(ctx context.Context, meetID string) (models.CollectionDocument, error) {
	return h.getCollection(ctx, fmt.Sprintf("/v3/meets/%s/athletes", url.PathEscape(meetID)), "athletes")
}

// ListEventNodes implements [SwimtopiaAdapter].
func (h *httpSwimtopiaAdapter) ListEventNodes(ctx context.Context, meetID string) (models.CollectionDocument, error) {
	return h.getCollection(ctx, fmt.Sprintf("/v3/meets/%s/event-nodes", url.PathEscape(meetID)), "event nodes")
}

// GetEvent implements [SwimtopiaAdapter].
func (h *httpSwimtopiaAdapter) GetEvent(ctx context.Context, meetID, eventID string) (models.SingleDocument, error) {
	path := fmt.Sprintf("/v3/meets/%s/events/%s", url.PathEscape(meetID), url.PathEscape(eventID))
	return h.getSingle(ctx, path, "event")
}

// DownloadExport implements [SwimtopiaAdapter]. The signed URL is
// pre-authorized, so the request carries no Authorization header. The body is
// returned unread for the caller to stream to disk.
func (h *httpSwimtopiaAdapter) DownloadExport(ctx context.Context, href string) (io.ReadCloser, string, error) {
	resp, err := h.download.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(href)
	if err != nil {
		return nil, "", fmt.Errorf("%w: export download request: %v", ErrTransport, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if body := resp.RawBody(); body != nil {
			_ = body.Close()
		}
		return nil, "", err
	}

	return resp.RawBody(), filenameFromDisposition(resp.Header().Get("Content-Disposition")), nil
}

func (h *httpSwimtopiaAdapter) getSingle(ctx context.Context, path, what string) (models.SingleDocument, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return models.SingleDocument{}, fmt.Errorf("%w: get %s request: %v", ErrTransport, what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SingleDocument{}, err
	}

	var doc models.SingleDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.SingleDocument{}, fmt.Errorf("decode %s response: %w", what, err)
	}
	return doc, nil
}

func (h *httpSwimtopiaAdapter) getCollection(ctx context.Context, path, what string) (models.CollectionDocument, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return models.CollectionDocument{}, fmt.Errorf("%w: get %s request: %v", ErrTransport, what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CollectionDocument{}, err
	}

	var doc models.CollectionDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.CollectionDocument{}, fmt.Errorf("decode %s response: %w", what, err)
	}
	return doc, nil
}

func (h *httpSwimtopiaAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeExportTask(meetID string, res models.Resource) (models.ExportTask, error) {
	var attrs models.ExportTaskAttributes
	if err := res.DecodeAttributes(&attrs); err != nil {
		return models.ExportTask{}, err
	}

	return models.ExportTask{
		TaskID:         res.ID,
		MeetID:         meetID,
		State:          models.ParseTaskState(attrs.CurrentState),
		ExportHref:     attrs.ExportHref,
		ExportFilename: attrs.ExportFilename,
		ErrorMessage:   attrs.ErrorMessage,
		CreatedAt:      attrs.CreatedAt,
	}, nil
}

// filenameFromDisposition extracts the filename parameter from a
// Content-Disposition header, or returns "" when absent or malformed.
func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

type exportTaskCreateDocument struct {
	Data exportTaskResource `json:"data"`
}

type exportTaskResource struct {
	Type          string                      `json:"type"`
	ID            string                      `json:"id"`
	Attributes    models.ExportTaskAttributes `json:"attributes"`
	Relationships exportTaskRelationships     `json:"relationships"`
}

type exportTaskRelationships struct {
	Meet relationshipData `json:"meet"`
}

type relationshipData struct {
	Data models.ResourceIdentifier `json:"data"`
}
