package enrich

import (
	"context"
	"log"
	"sync"

	"superprecos/internal/model"
	"superprecos/internal/observability"
)

type Summary struct {
	Enriched int
	Failed   int
}

// DistinctProducts devolve os nomes de produto sem repetição, na ordem em que aparecem.
func DistinctProducts(records []model.PriceRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if seen[r.Product] {
			continue
		}
		seen[r.Product] = true
		names = append(names, r.Product)
	}
	return names
}

// RunWorkers enriquece os nomes com até `workers` chamadas simultâneas.
// Nomes que falham ficam fora do mapa e são contados em Summary.Failed.
func RunWorkers(ctx context.Context, a *Adapter, names []string, workers int) (map[string]model.EnrichedAttributes, Summary) {
	if workers < 1 {
		workers = 1
	}

	var (
		mu  sync.Mutex
		out = make(map[string]model.EnrichedAttributes, len(names))
		sum Summary
		wg  sync.WaitGroup
	)
	jobs := make(chan string)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				attrs, err := a.Enrich(ctx, name)

				mu.Lock()
				if err != nil {
					sum.Failed++
					observability.EnrichmentFailures.Inc()
					log.Printf("[Enrich] Falha ao enriquecer %q: %v", name, err)
				} else {
					sum.Enriched++
					out[name] = attrs
				}
				mu.Unlock()
			}
		}()
	}

	for _, n := range names {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	return out, sum
}
