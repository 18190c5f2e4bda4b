// Package lawapi queries the National Law Information Center (law.go.kr)
// open API for statute metadata used to enrich precedent prompts.
package lawapi

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const defaultBaseURL = "http://www.law.go.kr/DRF/lawSearch.do"

// Statute is one search hit.
type Statute struct {
	Name       string `json:"name"`
	LawID      string `json:"law_id"`
	Promulga   string `json:"promulgation_date"`
	Department string `json:"department"`
}

// Line renders a statute as a single prompt-context line.
func (s Statute) Line() string {
	return fmt.Sprintf("%s (법령ID %s, 공포 %s, %s)", s.Name, s.LawID, s.Promulga, s.Department)
}

// Client calls the statute-search endpoint. The zero value is not usable;
// construct with New.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	apiID   string
}

// New builds a client for the given law-center API ID (the OC parameter).
// An empty ID is allowed; Enabled reports false and searches return nothing.
func New(apiID string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 15 * time.Second
	rc.Logger = stdlog.New(io.Discard, "", 0)
	return &Client{http: rc, baseURL: defaultBaseURL, apiID: strings.TrimSpace(apiID)}
}

// Enabled reports whether an API ID is configured.
func (c *Client) Enabled() bool { return c.apiID != "" }

// SearchStatutes returns up to limit statute hits for the query. A disabled
// client returns an empty slice without calling out.
func (c *Client) SearchStatutes(ctx context.Context, query string, limit int) ([]Statute, error) {
	if !c.Enabled() || strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("OC", c.apiID)
	params.Set("target", "law")
	params.Set("type", "JSON")
	params.Set("query", query)
	params.Set("display", fmt.Sprintf("%d", limit))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("law search request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("law search status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("law search body: %w", err)
	}

	var out []Statute
	gjson.GetBytes(body, "LawSearch.law").ForEach(func(_, hit gjson.Result) bool {
		out = append(out, Statute{
			Name:       hit.Get("법령명한글").String(),
			LawID:      hit.Get("법령ID").String(),
			Promulga:   hit.Get("공포일자").String(),
			Department: hit.Get("소관부처명").String(),
		})
		return len(out) < limit
	})
	return out, nil
}
