package crawler

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"superprecos/internal/cleaner"
	"superprecos/internal/model"
	"superprecos/internal/observability"
)

// Bulk percorre mercados x categorias e acumula um único Dataset.
type Bulk struct {
	Fetcher PageFetcher
	BaseURL string
	// Workers limita quantos produtos de uma mesma listagem são buscados ao mesmo tempo.
	// Valores <= 1 mantêm a execução sequencial.
	Workers int
}

// Run executa a raspagem completa. Falhas por produto são descartadas; um erro de limpeza
// interrompe a execução e é devolvido junto com o que já foi acumulado.
func (b *Bulk) Run(ctx context.Context, markets, categories []string) (model.Dataset, error) {
	ds := model.Dataset{RunID: uuid.New().String()}

	for _, market := range markets {
		for _, cat := range categories {
			log.Printf("[Bulk] Raspando categoria %s no supermercado %s", cat, market)
			ds.Summary.Pairs++

			records, err := b.scrapeMarketCategory(ctx, market, cat, &ds.Summary)
			if err != nil {
				ds.Summary.Records = len(ds.Records)
				return ds, fmt.Errorf("%s/%s: %w", market, cat, err)
			}
			ds.Records = append(ds.Records, records...)
		}
	}

	ds.Summary.Records = len(ds.Records)
	log.Printf("[Bulk] Execução %s finalizada: %d registros, %d produtos (%d descartados), %d listagens indisponíveis",
		ds.RunID, ds.Summary.Records, ds.Summary.Products, ds.Summary.ProductsSkipped, ds.Summary.PairsSkipped)
	return ds, nil
}

func (b *Bulk) scrapeMarketCategory(ctx context.Context, market, cat string, sum *model.RunSummary) ([]model.PriceRecord, error) {
	listing := ListingURL(b.BaseURL, market, cat)
	doc, ok := b.Fetcher.Fetch(ctx, listing)
	if !ok {
		log.Printf("[Bulk] Listagem indisponível %s, pulando", listing)
		sum.PairsSkipped++
		return nil, nil
	}

	entries, skipped := ExtractCatalog(doc)
	sum.CardsSkipped += skipped

	var rows []model.RawRow
	for _, res := range b.ScrapeProducts(ctx, entries) {
		sum.Products++
		if res.Skipped() {
			sum.ProductsSkipped++
			observability.ProductsSkipped.Inc()
			log.Printf("[Bulk] Produto %q descartado: %v", res.Entry.Name, res.Err)
			continue
		}
		observability.ProductsScraped.Inc()
		rows = append(rows, res.Rows...)
	}

	if len(rows) == 0 {
		log.Printf("[Bulk] Nenhuma linha para %s/%s", market, cat)
		return nil, nil
	}

	records, err := cleaner.Clean(rows, market, cat)
	if err != nil {
		return nil, err
	}
	observability.RecordsCleaned.Add(float64(len(records)))
	return records, nil
}

// ScrapeProducts extrai a tabela de cada produto. O resultado segue a ordem de entries,
// mesmo quando Workers > 1.
func (b *Bulk) ScrapeProducts(ctx context.Context, entries []model.CatalogEntry) []model.ProductResult {
	results := make([]model.ProductResult, len(entries))

	scrape := func(i int) {
		e := entries[i]
		rows, err := ExtractTable(ctx, b.Fetcher, e.Link)
		for j := range rows {
			rows[j].Product = e.Name
		}
		results[i] = model.ProductResult{Entry: e, Rows: rows, Err: err}
	}

	if b.Workers <= 1 {
		for i := range entries {
			scrape(i)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(b.Workers)
	for i := range entries {
		i := i
		g.Go(func() error {
			scrape(i)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
