package austlii

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
)

// testRateLimit keeps tests fast.
var testRateLimit = RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 1000}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, RateLimit: testRateLimit})
	require.NoError(t, err)
	return client, srv
}

func TestSearch_RequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(listingFixture))
	}))

	entries, err := client.Search(context.Background(), "native title", 25, domain.SortDate)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	assert.Equal(t, "/cgi-bin/sinosrch.cgi", gotPath)
	assert.Equal(t, []string{"boolean"}, gotQuery["method"])
	assert.Equal(t, []string{"native title"}, gotQuery["query"])
	assert.Equal(t, []string{"/au"}, gotQuery["meta"])
	assert.Equal(t, []string{"25"}, gotQuery["results"])
	assert.Equal(t, []string{"date"}, gotQuery["view"])
}

func TestSearch_SortViewDirective(t *testing.T) {
	var views []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views = append(views, r.URL.Query().Get("view"))
		w.Write([]byte("<html></html>"))
	}))

	ctx := context.Background()
	_, err := client.Search(ctx, "q", 10, domain.SortRelevance)
	require.NoError(t, err)
	_, err = client.Search(ctx, "q", 10, domain.SortDate)
	require.NoError(t, err)

	assert.Equal(t, []string{"relevance", "date"}, views)
}

func TestSearch_ParsesEntries(t *testing.T) {
	client, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><ul>
			<li><a href="/au/cases/vic/VSC/2021/7.html">Re Broome [2021] VSC 7</a></li>
		</ul></body></html>`))
	}))

	entries, err := client.Search(context.Background(), "broome", 10, domain.SortDate)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Re Broome [2021] VSC 7", entries[0].Title)
	assert.Equal(t, srv.URL+"/au/cases/vic/VSC/2021/7.html", entries[0].URL)
}

func TestSearch_EmptyListingIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body>No matches found.</body></html>"))
	}))

	entries, err := client.Search(context.Background(), "zxqv", 10, domain.SortDate)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.Search(context.Background(), "q", 10, domain.SortDate)
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusServiceUnavailable, te.Status)
}

func TestSearch_UnreachableIndex(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening any more

	client, err := NewClient(Config{BaseURL: srv.URL, RateLimit: testRateLimit})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "q", 10, domain.SortDate)
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
}

func TestSearch_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		_, err := client.Search(ctx, "q", 10, domain.SortDate)
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, domain.IsTransport(err))
	case <-time.After(5 * time.Second):
		t.Fatal("search did not observe cancellation")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.base.String())
	assert.Equal(t, DefaultTimeout, client.http.Timeout)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.IndexClient = (*Client)(nil)
}
