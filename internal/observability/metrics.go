package observability

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_fetched_total",
			Help: "Páginas requisitadas, por status HTTP (\"error\" para falha de transporte)",
		},
		[]string{"status"},
	)
	CardsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cards_skipped_total",
			Help: "Cards da listagem ignorados por falta de nome ou link",
		},
	)
	ProductsScraped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_scraped_total",
			Help: "Produtos com tabela de histórico extraída",
		},
	)
	ProductsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_skipped_total",
			Help: "Produtos descartados por falha na extração",
		},
	)
	RecordsCleaned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "records_cleaned_total",
			Help: "Registros de preço limpos",
		},
	)
	EnrichmentFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_failures_total",
			Help: "Nomes de produto que não puderam ser enriquecidos",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(PagesFetched, CardsSkipped, ProductsScraped, ProductsSkipped, RecordsCleaned, EnrichmentFailures)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			log.Printf("[Metrics] servidor encerrado: %v", err)
		}
	}()
}
