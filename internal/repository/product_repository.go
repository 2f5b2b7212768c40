package repository

import (
	"database/sql"

	"superprecos/internal/model"
)

type ProductRepository struct {
	DB *sql.DB
}

// ListPending lista os produtos ainda não enriquecidos.
func (r *ProductRepository) ListPending() ([]string, error) {
	rows, err := r.DB.Query(`
		SELECT product
		FROM product
		WHERE enriched = FALSE
		ORDER BY product_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		list = append(list, name)
	}

	return list, rows.Err()
}

func (r *ProductRepository) SaveAttributes(name string, a model.EnrichedAttributes) error {
	_, err := r.DB.Exec(`
		UPDATE product
		SET ai_category = $1, subcategory = $2, brand = $3, volume = $4, weight = $5, details = $6, enriched = TRUE
		WHERE product = $7
	`, a.Category, a.Subcategory, a.Brand, a.Volume, a.Weight, a.Details, name)
	return err
}
