package main

import (
	"context"
	"log"

	"superprecos/internal/config"
	"superprecos/internal/db"
	"superprecos/internal/repository"
)

// Cria (se ainda não existirem) as tabelas do esquema estrela.
func main() {
	cfg := config.Load()

	g := &db.Gateway{URL: cfg.DatabaseURL}
	if err := g.CreateSchema(context.Background(), repository.Schema()); err != nil {
		log.Fatalf("Erro ao criar esquema: %v", err)
	}

	log.Println("Esquema criado")
}
