// Package adzuna is the Adzuna job source.
package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

const (
	defaultBaseURL = "https://api.adzuna.com"
	defaultCountry = "fr"
	// maxPageSize is the largest results_per_page Adzuna accepts.
	maxPageSize  = 50
	maxErrorBody = 4096
)

// Client queries the Adzuna search API.
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
}

// NewClient instantiates an Adzuna API client. It performs no network call.
func NewClient(cfg config.Adzuna, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(cfg.AppID) == "" || strings.TrimSpace(cfg.AppKey) == "" {
		return nil, importer.Misconfigured("ADZUNA_APP_ID and ADZUNA_APP_KEY are required")
	}

	country := strings.ToLower(cfg.Country)
	if country == "" {
		country = defaultCountry
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		country:    country,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// Name implements importer.Source.
func (c *Client) Name() string {
	return model.SourceAdzuna
}

// pageFor maps an inclusive range onto Adzuna's 1-based pages. The page size
// is the range length capped at maxPageSize; the page is the one holding
// the first index. Windows are page aligned: "5-14" fetches results 0-9.
func pageFor(r string) (page, size int, err error) {
	first, last, err := importer.ParseRange(r)
	if err != nil {
		return 0, 0, err
	}
	size = last - first + 1
	if size > maxPageSize {
		size = maxPageSize
	}
	return first/size + 1, size, nil
}

func (c *Client) searchURL(q importer.Query) (string, error) {
	page, size, err := pageFor(q.Range)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", importer.Misconfigured("adzuna base url: %v", err)
	}
	u.Path = path.Join(u.Path, "v1", "api", "jobs", c.country, "search", strconv.Itoa(page))

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("what", q.Keywords)
	values.Set("results_per_page", strconv.Itoa(size))
	values.Set("sort_by", "date")
	values.Set("content-type", "application/json")
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// Search fetches the page of q.
func (c *Client) Search(ctx context.Context, q importer.Query) ([]Posting, error) {
	u, err := c.searchURL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &importer.UpstreamError{Kind: importer.ErrSourceFetch, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &importer.UpstreamError{Kind: importer.ErrSourceFetch, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &importer.UpstreamError{
			Kind:   importer.ErrSourceFetch,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &importer.UpstreamError{
			Kind:   importer.ErrSourceFetch,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("decode response: %w", err),
		}
	}
	return payload.Results, nil
}

// Fetch implements importer.Source. Adzuna authenticates with app id and
// key on every request, there is no token to acquire.
func (c *Client) Fetch(ctx context.Context, q importer.Query) ([]importer.Listing, error) {
	postings, err := c.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	listings := make([]importer.Listing, 0, len(postings))
	for _, p := range postings {
		listings = append(listings, p)
	}
	return listings, nil
}

var _ importer.Source = (*Client)(nil)
