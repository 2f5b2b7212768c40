package db

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// New abre o pool database/sql usado pelos repositórios de leitura/atualização.
func New(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}
