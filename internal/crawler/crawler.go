package crawler

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"superprecos/internal/observability"
)

// PageFetcher devolve o documento da URL ou false quando a página não está disponível.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, bool)
}

type Fetcher struct {
	Client  *http.Client
	Limiter *rate.Limiter // opcional, espaça as requisições ao site
}

// NewFetcher cria um Fetcher. timeout 0 mantém o comportamento padrão do transport;
// interval 0 desliga o limitador.
func NewFetcher(timeout, interval time.Duration) *Fetcher {
	f := &Fetcher{Client: &http.Client{Timeout: timeout}}
	if interval > 0 {
		f.Limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return f
}

// Fetch faz um único GET. Só 200 é sucesso; qualquer outra coisa vira ausência + log.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*goquery.Document, bool) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			log.Printf("[Fetcher] %s cancelado: %v", rawURL, err)
			return nil, false
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Printf("[Fetcher] URL inválida %s: %v", rawURL, err)
		return nil, false
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "text/html")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		observability.PagesFetched.WithLabelValues("error").Inc()
		log.Printf("[Fetcher] Erro ao buscar %s: %v", rawURL, err)
		return nil, false
	}
	defer resp.Body.Close()

	observability.PagesFetched.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[Fetcher] Erro. Status %d para %s", resp.StatusCode, rawURL)
		return nil, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("[Fetcher] Erro ao interpretar HTML de %s: %v", rawURL, err)
		return nil, false
	}
	// NewDocumentFromReader não conhece a URL; guarda para resolver links relativos
	doc.Url = resp.Request.URL
	return doc, true
}

// ListingURL monta a URL da listagem de um mercado/categoria.
func ListingURL(baseURL, market, category string) string {
	return baseURL + "/" + url.PathEscape(market) + "/" + url.PathEscape(category) + "/"
}
