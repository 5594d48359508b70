package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arindamsaha1507/vyakarana/internal/api"
	"github.com/arindamsaha1507/vyakarana/internal/corpus"
	"github.com/arindamsaha1507/vyakarana/internal/index"
	"github.com/arindamsaha1507/vyakarana/internal/sutraservice"
	"github.com/arindamsaha1507/vyakarana/internal/testutil"
)

func newTestServer(t *testing.T, authEnabled bool, token string) *httptest.Server {
	t.Helper()
	coll, err := corpus.Decode(testutil.CorpusJSON(t, "ashtadhyayi",
		testutil.Record("1", "1", "1", map[string]string{
			"s": "वृद्धिरादैच्", "e": "vRRiddhirAdaich",
			"type": "S$x$",
		}),
		testutil.Record("1", "1", "2", map[string]string{
			"s": "अदेङ् गुणः", "e": "adeN guNaH",
			"an": "वृद्धिः$11001",
		}),
		testutil.Record("2", "1", "1", map[string]string{
			"s": "समर्थः पदविधिः", "e": "samarthaH padavidhiH",
		}),
	))
	if err != nil {
		t.Fatal(err)
	}
	db := testutil.TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := index.Sync(db, coll, "sum", logger); err != nil {
		t.Fatal(err)
	}
	svc := sutraservice.New(coll, db)
	srv := httptest.NewServer(api.NewRouter(svc, authEnabled, token, nil))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body: %s)", resp.StatusCode, wantStatus, body)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListSutras(t *testing.T) {
	srv := newTestServer(t, false, "")

	var resp api.SutraListResponse
	getJSON(t, srv.URL+"/sutras", http.StatusOK, &resp)
	if resp.Total != 3 || len(resp.Sutras) != 3 {
		t.Fatalf("total = %d, sutras = %d", resp.Total, len(resp.Sutras))
	}
	if resp.Sutras[0].Ref != "1.1.1" {
		t.Errorf("first = %s", resp.Sutras[0].Ref)
	}

	getJSON(t, srv.URL+"/sutras?limit=1&offset=1", http.StatusOK, &resp)
	if resp.Total != 3 || len(resp.Sutras) != 1 || resp.Sutras[0].Ref != "1.1.2" {
		t.Errorf("paged: total = %d, sutras = %+v", resp.Total, resp.Sutras)
	}

	getJSON(t, srv.URL+"/sutras?adhyaya=2", http.StatusOK, &resp)
	if resp.Total != 1 || resp.Sutras[0].Ref != "2.1.1" {
		t.Errorf("filtered: %+v", resp)
	}
}

func TestGetSutra(t *testing.T) {
	srv := newTestServer(t, false, "")

	var detail sutraservice.SutraDetail
	getJSON(t, srv.URL+"/sutras/1.1.2", http.StatusOK, &detail)
	if detail.Devanagari != "अदेङ् गुणः" {
		t.Errorf("devanagari = %q", detail.Devanagari)
	}
	if len(detail.Anuvritti.References) != 1 || detail.Anuvritti.References[0].Ref != "1.1.1" {
		t.Errorf("anuvritti = %+v", detail.Anuvritti)
	}

	getJSON(t, srv.URL+"/sutras/8.4.68", http.StatusNotFound, nil)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t, false, "")

	var resp api.SearchResponse
	getJSON(t, srv.URL+"/search?q=guNaH", http.StatusOK, &resp)
	if len(resp.Results) != 1 || resp.Results[0].Ref != "1.1.2" {
		t.Errorf("results = %+v", resp.Results)
	}

	getJSON(t, srv.URL+"/search", http.StatusBadRequest, nil)
}

func TestSearch_TextMode(t *testing.T) {
	srv := newTestServer(t, false, "")

	var resp api.TextSearchResponse
	getJSON(t, srv.URL+"/search?q=samarthah&mode=text", http.StatusOK, &resp)
	if resp.Total != 1 || resp.Sutras[0].Ref != "2.1.1" {
		t.Errorf("text search = %+v", resp)
	}

	getJSON(t, srv.URL+"/search?q=samarthah&mode=text&case_sensitive=true", http.StatusOK, &resp)
	if resp.Total != 0 {
		t.Errorf("case-sensitive text search should miss, got %+v", resp)
	}
}

func TestStats(t *testing.T) {
	srv := newTestServer(t, false, "")

	var st sutraservice.Stats
	getJSON(t, srv.URL+"/stats", http.StatusOK, &st)
	if st.Name != "ashtadhyayi" || st.Sutras != 3 || st.Indexed != 3 {
		t.Errorf("stats = %+v", st)
	}
	if st.WithAnuvritti != 1 {
		t.Errorf("with_anuvritti = %d", st.WithAnuvritti)
	}
}

func TestAuth(t *testing.T) {
	srv := newTestServer(t, true, "secret-token")

	resp, err := http.Get(srv.URL + "/stats")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/stats", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/stats", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", resp.StatusCode)
	}
}
