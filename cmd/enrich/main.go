package main

import (
	"context"
	"log"

	"superprecos/internal/config"
	"superprecos/internal/db"
	"superprecos/internal/enrich"
	"superprecos/internal/observability"
	"superprecos/internal/repository"
)

// Enriquece os produtos já gravados que ainda não têm atributos.
func main() {
	cfg := config.Load()

	observability.Start(cfg.MetricsPort)

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no banco de dados (db): %v", err)
	}
	defer dbConn.Close()

	repo := &repository.ProductRepository{DB: dbConn}

	pending, err := repo.ListPending()
	if err != nil {
		log.Fatalf("Erro ao listar produtos: %v", err)
	}
	log.Printf("%d produtos pendentes", len(pending))

	attrs, sum := enrich.RunWorkers(context.Background(), enrich.FromConfig(cfg), pending, cfg.WorkerCount)

	saved := 0
	for name, a := range attrs {
		if err := repo.SaveAttributes(name, a); err != nil {
			log.Printf("Erro ao salvar atributos de %q: %v", name, err)
			continue
		}
		saved++
	}

	log.Printf("Enriquecimento finalizado: %d salvos, %d falhas", saved, sum.Failed)
}
