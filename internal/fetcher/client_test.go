package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dhkim-dev/boardwatch/internal/board"
)

func newTestClient() *Client {
	return NewClient(Config{Timeout: 5 * time.Second}, NewIdentityPool())
}

func TestClient_Get(t *testing.T) {
	t.Run("returns body on success", func(t *testing.T) {
		var gotUA, gotLang string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotLang = r.Header.Get("Accept-Language")
			_, _ = w.Write([]byte("<html>ok</html>"))
		}))
		defer srv.Close()

		client := newTestClient()
		body, err := client.Get(context.Background(), srv.URL)
		require.NoError(t, err)
		require.Equal(t, "<html>ok</html>", body)
		require.True(t, client.identities.Contains(gotUA), "user agent %q not from pool", gotUA)
		require.NotEmpty(t, gotLang)
	})

	t.Run("non-2xx yields FetchError with status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		client := newTestClient()
		_, err := client.Get(context.Background(), srv.URL)
		var fetchErr *board.FetchError
		require.ErrorAs(t, err, &fetchErr)
		require.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		require.Equal(t, "Not Found", fetchErr.Status)
	})

	t.Run("repeated fetches of one URL all reach the network", func(t *testing.T) {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			_, _ = w.Write([]byte("<html>ok</html>"))
		}))
		defer srv.Close()

		client := newTestClient()
		for range 3 {
			body, err := client.Get(context.Background(), srv.URL)
			require.NoError(t, err)
			require.Equal(t, "<html>ok</html>", body)
		}
		require.Equal(t, 3, hits)
	})

	t.Run("unreachable host yields FetchError", func(t *testing.T) {
		client := newTestClient()
		_, err := client.Get(context.Background(), "http://127.0.0.1:1/")
		var fetchErr *board.FetchError
		require.ErrorAs(t, err, &fetchErr)
		require.Zero(t, fetchErr.StatusCode)
	})
}

func TestClient_PostForm(t *testing.T) {
	var gotMethod string
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		_, _ = w.Write([]byte("<table></table>"))
	}))
	defer srv.Close()

	client := newTestClient()
	form := map[string]string{
		"siteId":    "suncheon",
		"bbsId":     "BBS0001",
		"pageIndex": "1",
	}
	body, err := client.PostForm(context.Background(), srv.URL, form)
	require.NoError(t, err)
	require.Equal(t, "<table></table>", body)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "suncheon", gotForm["siteId"])
	require.Equal(t, "BBS0001", gotForm["bbsId"])
	require.Equal(t, "1", gotForm["pageIndex"])

	// An identical detail POST repeats whenever its cache entry expires.
	_, err = client.PostForm(context.Background(), srv.URL, form)
	require.NoError(t, err)
}
