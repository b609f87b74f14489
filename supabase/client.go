package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client talks to the remote store's REST gateway under a single credential.
// Two instances exist per process: one with the anon key for reads and one
// with the service-role key for writes. The client performs no retries and no
// caching; every failure is surfaced to the caller as-is.
type Client struct {
	rest    *resty.Client
	baseURL string
}

func NewClient(baseURL, apiKey, clientInfo string) *Client {
	base := strings.TrimRight(baseURL, "/")
	rest := resty.New().
		SetBaseURL(base).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("X-Client-Info", clientInfo)
	return &Client{rest: rest, baseURL: base}
}

// Filter is a single column predicate, rendered as column=op.value.
type Filter struct {
	Column string
	Op     string
	Value  string
}

func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: "eq", Value: fmt.Sprint(value)}
}

// SortOrder orders a query by one column.
type SortOrder struct {
	Column    string
	Ascending bool
}

func (o SortOrder) param() string {
	if o.Ascending {
		return o.Column + ".asc"
	}
	return o.Column + ".desc"
}

// Query fetches all rows of table matching filters into dest, which must be a
// pointer to a slice.
func (c *Client) Query(ctx context.Context, table string, dest any, filters []Filter, order *SortOrder) error {
	req := c.rest.R().SetContext(ctx).SetQueryParam("select", "*")
	for _, f := range filters {
		req.SetQueryParam(f.Column, f.Op+"."+f.Value)
	}
	if order != nil {
		req.SetQueryParam("order", order.param())
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return remoteErrorFrom(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return &RemoteError{Status: resp.StatusCode(), Message: "malformed response body", Details: err.Error()}
	}
	return nil
}

// QueryOne fetches a single row matching filters into dest. Returns
// ErrNotFound when no row matches.
func (c *Client) QueryOne(ctx context.Context, table string, dest any, filters ...Filter) error {
	req := c.rest.R().SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("limit", "1")
	for _, f := range filters {
		req.SetQueryParam(f.Column, f.Op+"."+f.Value)
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return remoteErrorFrom(resp)
	}
	return decodeFirstRow(resp.Body(), resp.StatusCode(), dest)
}

// Insert creates a row and decodes the stored representation (with the
// assigned id) into dest when dest is non-nil.
func (c *Client) Insert(ctx context.Context, table string, record any, dest any) error {
	resp, err := c.rest.R().SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/rest/v1/" + table)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return remoteErrorFrom(resp)
	}
	if dest == nil {
		return nil
	}
	return decodeFirstRow(resp.Body(), resp.StatusCode(), dest)
}

// Update applies a partial record to all rows matching filters and decodes
// the first updated row into dest. Returns ErrNotFound when no row matched.
func (c *Client) Update(ctx context.Context, table string, patch any, dest any, filters ...Filter) error {
	req := c.rest.R().SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetHeader("Content-Type", "application/json").
		SetBody(patch)
	for _, f := range filters {
		req.SetQueryParam(f.Column, f.Op+"."+f.Value)
	}

	resp, err := req.Patch("/rest/v1/" + table)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return remoteErrorFrom(resp)
	}
	return decodeFirstRow(resp.Body(), resp.StatusCode(), dest)
}

// Delete removes all rows matching filters.
func (c *Client) Delete(ctx context.Context, table string, filters ...Filter) error {
	req := c.rest.R().SetContext(ctx)
	for _, f := range filters {
		req.SetQueryParam(f.Column, f.Op+"."+f.Value)
	}

	resp, err := req.Delete("/rest/v1/" + table)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return remoteErrorFrom(resp)
	}
	return nil
}

// decodeFirstRow unwraps the single-element representation array the gateway
// returns for keyed reads and writes.
func decodeFirstRow(body []byte, status int, dest any) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return &RemoteError{Status: status, Message: "malformed response body", Details: err.Error()}
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return &RemoteError{Status: status, Message: "malformed row", Details: err.Error()}
	}
	return nil
}

func transportError(err error) error {
	return &RemoteError{Message: "request failed", Details: err.Error()}
}

func remoteErrorFrom(resp *resty.Response) error {
	re := &RemoteError{Status: resp.StatusCode()}
	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Details string `json:"details"`
		Hint    string `json:"hint"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		re.Message = body.Message
		re.Code = body.Code
		re.Details = body.Details
	} else {
		re.Message = resp.Status()
	}
	return re
}
