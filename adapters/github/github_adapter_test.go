package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

const reposPayload = `[
	{
		"name": "weather-kt",
		"description": "Weather app in Kotlin",
		"topics": ["android", "weather"],
		"language": "Kotlin",
		"fork": false,
		"stargazers_count": 12,
		"homepage": "https://weather.example.com",
		"html_url": "https://github.com/owner/weather-kt",
		"pushed_at": "2025-05-01T12:00:00Z"
	},
	{
		"name": "forked-lib",
		"description": null,
		"topics": [],
		"language": null,
		"fork": true,
		"stargazers_count": 0,
		"homepage": null,
		"html_url": "https://github.com/owner/forked-lib",
		"pushed_at": "2024-01-01T00:00:00Z"
	}
]`

func TestListByUser_ParsesRepos(t *testing.T) {
	var gotPath, gotAccept, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposPayload))
	}))
	defer server.Close()

	fetcher := NewRESTFetcherWithBaseURL(server.URL, "", logger.NewNopLogger())
	repos, err := fetcher.ListByUser(context.Background(), "owner")
	require.NoError(t, err)

	assert.Equal(t, "/users/owner/repos?per_page=100&sort=updated", gotPath)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Empty(t, gotAuth)

	require.Len(t, repos, 2)
	assert.Equal(t, "weather-kt", repos[0].Name)
	require.NotNil(t, repos[0].Description)
	assert.Equal(t, "Weather app in Kotlin", *repos[0].Description)
	assert.Equal(t, 12, repos[0].Stars)
	assert.False(t, repos[0].Fork)

	assert.True(t, repos[1].Fork)
	assert.Nil(t, repos[1].Description)
	assert.Nil(t, repos[1].Language)
}

func TestListByUser_AttachesTokenWhenConfigured(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	fetcher := NewRESTFetcherWithBaseURL(server.URL, "ghp_testtoken", logger.NewNopLogger())
	_, err := fetcher.ListByUser(context.Background(), "owner")
	require.NoError(t, err)

	assert.Equal(t, "Bearer ghp_testtoken", gotAuth)
}

func TestListByUser_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "rate limit exceeded"}`))
	}))
	defer server.Close()

	fetcher := NewRESTFetcherWithBaseURL(server.URL, "", logger.NewNopLogger())
	_, err := fetcher.ListByUser(context.Background(), "owner")

	assert.ErrorContains(t, err, "403")
}

func TestListByUser_MalformedPayloadIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	fetcher := NewRESTFetcherWithBaseURL(server.URL, "", logger.NewNopLogger())
	_, err := fetcher.ListByUser(context.Background(), "owner")

	assert.Error(t, err)
}

func TestListByUser_UnreachableHostIsError(t *testing.T) {
	fetcher := NewRESTFetcherWithBaseURL("http://127.0.0.1:1", "", logger.NewNopLogger())
	_, err := fetcher.ListByUser(context.Background(), "owner")

	assert.Error(t, err)
}
