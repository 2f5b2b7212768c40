package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"superprecos/internal/config"
	"superprecos/internal/crawler"
	"superprecos/internal/db"
	"superprecos/internal/enrich"
	"superprecos/internal/export"
	"superprecos/internal/model"
	"superprecos/internal/observability"
	"superprecos/internal/repository"
)

// go run cmd/scraper/main.go -markets="mercadona,dia" -cats="leche" -out=precos.xlsx
// go run cmd/scraper/main.go -persist -enrich
func main() {
	cfg := config.Load()

	marketsArg := flag.String("markets", strings.Join(cfg.Markets, ","), "Supermercados separados por vírgula")
	catsArg := flag.String("cats", strings.Join(cfg.Categories, ","), "Categorias separadas por vírgula")
	out := flag.String("out", "precos.csv", "Arquivo de saída (.csv ou .xlsx); vazio para não exportar")
	persist := flag.Bool("persist", false, "Grava o dataset no Postgres")
	withEnrich := flag.Bool("enrich", false, "Enriquece os nomes de produto via OpenAI antes de gravar")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	observability.Start(cfg.MetricsPort)

	bulk := &crawler.Bulk{
		Fetcher: crawler.NewFetcher(cfg.HTTPTimeout, cfg.FetchInterval),
		BaseURL: cfg.BaseURL,
		Workers: cfg.ScrapeWorkers,
	}

	ds, err := bulk.Run(ctx, split(*marketsArg), split(*catsArg))
	if err != nil {
		// o que já foi limpo continua válido; exporta mesmo assim
		log.Printf("Execução interrompida: %v", err)
	}
	s := ds.Summary
	log.Printf("[Run %s] pares=%d (pulados %d) produtos=%d (pulados %d) cards pulados=%d registros=%d",
		ds.RunID, s.Pairs, s.PairsSkipped, s.Products, s.ProductsSkipped, s.CardsSkipped, s.Records)

	if *out != "" {
		if err := export.Write(*out, ds.Records); err != nil {
			log.Fatalf("Erro ao exportar %s: %v", *out, err)
		}
		log.Printf("Dataset exportado em %s", *out)
	}

	var attrs map[string]model.EnrichedAttributes
	if *withEnrich {
		var sum enrich.Summary
		attrs, sum = enrich.RunWorkers(ctx, enrich.FromConfig(cfg), enrich.DistinctProducts(ds.Records), cfg.WorkerCount)
		log.Printf("Enriquecimento: %d ok, %d falhas", sum.Enriched, sum.Failed)
	}

	if *persist {
		repo := &repository.PriceRepository{DB: &db.Gateway{URL: cfg.DatabaseURL}}
		if err := repo.SaveDataset(ctx, ds, attrs); err != nil {
			log.Fatalf("Erro ao gravar dataset: %v", err)
		}
		log.Println("Dataset gravado no Postgres")
	}

	if err != nil {
		os.Exit(1)
	}
	log.Println("Scraper finalizado")
}

func split(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
