// Package client talks to the /alldata routes and drives the dashboard pipeline locally
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"piptrade/internal/core/record"
	perr "piptrade/internal/platform/errors"
	"piptrade/internal/platform/logger"
	"piptrade/internal/services/records/domain"
)

const (
	baseURLDefault = "http://localhost:6000"
	defaultUA      = "piptrade-client"
	dataPath       = "/alldata"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string

	// HTTP overrides the transport client, nil uses one without a timeout
	HTTP *http.Client
}

// Client is a minimal /alldata client
// It never retries and sets no deadline of its own; ctx is the only bound.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a Client with defaults filled in
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{http: hc, opts: o, log: *logger.Named("client")}
}

// FetchAll performs one GET /alldata
func (c *Client) FetchAll(ctx context.Context) ([]record.Record, error) {
	var out domain.ListResponse
	if err := c.do(ctx, http.MethodGet, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Save posts recs in one bulk insert and returns them with their ids
func (c *Client) Save(ctx context.Context, recs []record.Record) ([]record.Record, error) {
	body, err := json.Marshal(recs)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode records")
	}
	var out domain.SavedResponse
	if err := c.do(ctx, http.MethodPost, body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) do(ctx context.Context, method string, body []byte, want int, dst any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+dataPath, rd)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "new %s request failed", method)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.FromContext(err, perr.ErrorCodeUnavailable, method+" "+dataPath+" failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", method).
		Str("path", dataPath).
		Int("status", resp.StatusCode).
		Msg("alldata response")

	if resp.StatusCode != want {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "decode "+dataPath+" response")
	}
	return nil
}

// statusError turns an unexpected response into an error carrying the server's detail
func statusError(resp *http.Response) error {
	code := perr.ErrorCodeUnavailable
	if resp.StatusCode == http.StatusTooManyRequests {
		code = perr.ErrorCodeTooManyRequests
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var f domain.FailureResponse
	if json.Unmarshal(raw, &f) == nil && f.Error != "" {
		if f.SpecificError != "" {
			return perr.Newf(code, "%s: %s (status %d)", f.Error, f.SpecificError, resp.StatusCode)
		}
		return perr.Newf(code, "%s (status %d)", f.Error, resp.StatusCode)
	}
	return perr.Newf(code, "unexpected status %d", resp.StatusCode)
}
