package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// stubFetcher serve HTML fixo por URL; URLs ausentes do mapa são tratadas como indisponíveis.
type stubFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	calls []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*goquery.Document, bool) {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()

	html, ok := s.pages[url]
	if !ok {
		return nil, false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return doc, true
}

func TestFetcher_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent não enviado")
		}
		w.Write([]byte(`<html><body><p class="fw-bolder">Leche</p></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(0, 0)
	doc, ok := f.Fetch(context.Background(), srv.URL+"/mercadona/leche/")
	if !ok {
		t.Fatal("esperava documento")
	}
	if got := doc.Find("p.fw-bolder").Text(); got != "Leche" {
		t.Errorf("texto = %q", got)
	}
	if doc.Url == nil || doc.Url.Path != "/mercadona/leche/" {
		t.Errorf("Url do documento não preenchida: %v", doc.Url)
	}
}

func TestFetcher_NonOKIsAbsent(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		doc, ok := NewFetcher(0, 0).Fetch(context.Background(), srv.URL)
		if ok || doc != nil {
			t.Errorf("status %d deveria resultar em ausência", status)
		}
		srv.Close()
	}
}

func TestFetcher_TransportErrorIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, ok := NewFetcher(0, 0).Fetch(context.Background(), url); ok {
		t.Fatal("servidor fechado deveria resultar em ausência")
	}
}

func TestFetcher_WithLimiter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(0, 1)
	if f.Limiter == nil {
		t.Fatal("limiter deveria estar configurado")
	}
	for i := 0; i < 2; i++ {
		if _, ok := f.Fetch(context.Background(), srv.URL); !ok {
			t.Fatalf("fetch %d falhou", i)
		}
	}
}

func TestListingURL(t *testing.T) {
	got := ListingURL("https://super.facua.org", "mercadona", "leche")
	if got != "https://super.facua.org/mercadona/leche/" {
		t.Errorf("ListingURL = %s", got)
	}
}
