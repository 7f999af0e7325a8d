// Package francetravail is the France Travail "Offres d'emploi v2" job source.
package francetravail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

// Default endpoints
const (
	DefaultTokenURL  = "https://entreprise.francetravail.fr/connexion/oauth2/access_token"
	DefaultSearchURL = "https://api.francetravail.io/partenaire/offresdemploi/v2/offres/search"
)

// Scopes requested with the client credentials grant.
var Scopes = []string{"api_offresdemploiv2", "o2dsoffre"}

const maxErrorBody = 4096

// Client acquires tokens and searches offers.
type Client struct {
	oauth      clientcredentials.Config
	searchURL  string
	httpClient *http.Client
}

// NewClient checks the credentials and builds a client. It performs no
// network call. httpClient bounds every request; nil means
// http.DefaultClient.
func NewClient(cfg config.FranceTravail, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, importer.Misconfigured("FRANCE_TRAVAIL_CLIENT_ID and FRANCE_TRAVAIL_CLIENT_SECRET are required")
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	searchURL := cfg.SearchURL
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		oauth: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       Scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		searchURL:  searchURL,
		httpClient: httpClient,
	}, nil
}

// Name implements importer.Source.
func (c *Client) Name() string {
	return model.SourceFranceTravail
}

// AccessToken runs a client credentials grant. Nothing is cached: every
// call asks for a fresh token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := c.oauth.Token(ctx)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			uerr := &importer.UpstreamError{Kind: importer.ErrAuthExchange, Body: truncate(re.Body)}
			if re.Response != nil {
				uerr.Status = re.Response.StatusCode
			}
			return "", uerr
		}
		return "", &importer.UpstreamError{Kind: importer.ErrAuthExchange, Err: err}
	}
	if tok.AccessToken == "" {
		return "", &importer.UpstreamError{Kind: importer.ErrAuthExchange, Err: errors.New("empty access_token")}
	}
	return tok.AccessToken, nil
}

// Search fetches the single page described by q. France Travail answers
// 206 for partial ranges and 204 when nothing matches.
func (c *Client) Search(ctx context.Context, token string, q importer.Query) ([]Offer, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, importer.Misconfigured("search url: %v", err)
	}
	values := u.Query()
	values.Set("motsCles", q.Keywords)
	values.Set("experience", strconv.Itoa(q.Experience))
	values.Set("range", q.Range)
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &importer.UpstreamError{Kind: importer.ErrSourceFetch, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
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
	if resp.StatusCode == http.StatusNoContent {
		return []Offer{}, nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return []Offer{}, nil
		}
		return nil, &importer.UpstreamError{
			Kind:   importer.ErrSourceFetch,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("decode response: %w", err),
		}
	}
	if payload.Resultats == nil {
		return []Offer{}, nil
	}
	return payload.Resultats, nil
}

// Fetch implements importer.Source.
func (c *Client) Fetch(ctx context.Context, q importer.Query) ([]importer.Listing, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	offers, err := c.Search(ctx, token, q)
	if err != nil {
		return nil, err
	}

	listings := make([]importer.Listing, 0, len(offers))
	for _, o := range offers {
		listings = append(listings, o)
	}
	return listings, nil
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return strings.TrimSpace(string(b))
}

var _ importer.Source = (*Client)(nil)
