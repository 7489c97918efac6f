package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gojektech/heimdall/v6/httpclient"

	"github.com/dinakaran-k/portfolio-api/internal/config"
	"github.com/dinakaran-k/portfolio-api/internal/domain/github"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

const defaultBaseURL = "https://api.github.com"

type restFetcher struct {
	client  *httpclient.Client
	baseURL string
	token   string
	log     logger.Logger
}

// NewRESTFetcher lists repositories over the GitHub REST API. One attempt
// per request, no retries: the aggregator degrades on failure instead.
// The token is optional; without it the call runs at the anonymous rate
// limit, which is not an error.
func NewRESTFetcher(cfg config.Config, log logger.Logger) github.Fetcher {
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(0),
		httpclient.WithRetryCount(0),
	)

	log.Info("GitHub fetcher initialized")
	return &restFetcher{
		client:  client,
		baseURL: defaultBaseURL,
		token:   cfg.Github.Token,
		log:     log,
	}
}

// NewRESTFetcherWithBaseURL is for tests that point at a local server.
func NewRESTFetcherWithBaseURL(baseURL, token string, log logger.Logger) github.Fetcher {
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(0),
		httpclient.WithRetryCount(0),
	)
	return &restFetcher{client: client, baseURL: baseURL, token: token, log: log}
}

func (f *restFetcher) ListByUser(ctx context.Context, username string) ([]github.Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated",
		f.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build GitHub request failed: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GitHub request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read GitHub response failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API error: %d", resp.StatusCode)
	}

	var repos []github.Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("decode GitHub response failed: %w", err)
	}
	return repos, nil
}
