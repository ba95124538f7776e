package railapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/transitkit/rail12306/config"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(config.APIConfig{
		BaseURL:        srv.URL,
		StationNameURL: srv.URL + "/station_name.js",
		LCQueryInitURL: srv.URL + "/otn/lcQuery/init",
		TimeoutMS:      5000,
	})
	return client, srv
}

func TestGetJSON(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/otn/test" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("k") != "v" {
			t.Errorf("query param not forwarded: %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status": true}`))
	}))

	var out struct {
		Status bool `json:"status"`
	}
	params := url.Values{"k": {"v"}}
	if err := client.GetJSON(context.Background(), "/otn/test", params, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Status {
		t.Error("body not decoded")
	}
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))

	var out map[string]any
	if err := client.GetJSON(context.Background(), "/otn/test", nil, &out); err == nil {
		t.Fatal("expected error for HTTP 502")
	}
}

func TestPrimeSession_KeepsCookies(t *testing.T) {
	var sawCookie atomic.Bool
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/otn/leftTicket/init":
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc123"})
		default:
			if c, err := r.Cookie("JSESSIONID"); err == nil && c.Value == "abc123" {
				sawCookie.Store(true)
			}
			w.Write([]byte(`{}`))
		}
	}))
	ctx := context.Background()

	if err := client.PrimeSession(ctx); err != nil {
		t.Fatalf("priming failed: %v", err)
	}
	var out map[string]any
	if err := client.GetJSON(ctx, "/otn/leftTicket/query", nil, &out); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !sawCookie.Load() {
		t.Error("session cookie was not replayed on the follow-up request")
	}
}

func TestPrimeSession_NoCookiesIsStillSuccess(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	if err := client.PrimeSession(context.Background()); err != nil {
		t.Errorf("empty cookie set must count as success: %v", err)
	}
}

func TestLCQueryPath(t *testing.T) {
	var hits int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`<script>var lc_search_url = '/lcquery/queryG';</script>`))
	}))
	ctx := context.Background()

	path, err := client.LCQueryPath(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/lcquery/queryG" {
		t.Errorf("expected /lcquery/queryG, got %q", path)
	}

	if _, err := client.LCQueryPath(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Errorf("path discovery should be memoized, fetched %d times", hits)
	}
}

func TestLCQueryPath_MissingAssignment(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>nothing here</html>"))
	}))
	if _, err := client.LCQueryPath(context.Background()); err == nil {
		t.Fatal("missing lc_search_url must fail hard")
	}
}

func TestStationNameJS(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/station_name.js" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`var station_names = '@x|某|XXX|mou|x|0|1|某市||';`))
	}))
	js, err := client.StationNameJS(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if js == "" {
		t.Error("expected snippet body")
	}
}
