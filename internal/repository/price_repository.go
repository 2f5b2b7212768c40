package repository

import (
	"context"
	"fmt"
	"log"

	"superprecos/internal/db"
	"superprecos/internal/dimension"
	"superprecos/internal/model"
)

// Store é o contrato do gateway usado aqui; *db.Gateway satisfaz.
type Store interface {
	InsertBatch(ctx context.Context, stmt string, rows [][]any) error
	Query(ctx context.Context, stmt string, args ...any) (db.Result, error)
}

const (
	colProduct     = "product"
	colSupermarket = "supermarket"
	colCategory    = "category"
)

// Colunas da tabela fato antes da troca pelos ids
var factColumns = []string{"run_id", "date", "price", "delta_price", "delta_percent", colProduct, colSupermarket, colCategory, "url"}

const insertPrice = `
	INSERT INTO price
	(run_id, date, price, delta_price, delta_percent, product_id, supermarket_id, category_id, url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

const upsertProduct = `
	INSERT INTO product (product, ai_category, subcategory, brand, volume, weight, details, enriched)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (product) DO UPDATE
	SET ai_category = EXCLUDED.ai_category, subcategory = EXCLUDED.subcategory, brand = EXCLUDED.brand,
	    volume = EXCLUDED.volume, weight = EXCLUDED.weight, details = EXCLUDED.details, enriched = TRUE
	WHERE EXCLUDED.enriched
`

type PriceRepository struct {
	DB Store
}

// SaveDataset grava as dimensões, lê os ids de volta e insere os preços já normalizados.
// attrs pode ser nil quando não houve enriquecimento.
func (r *PriceRepository) SaveDataset(ctx context.Context, ds model.Dataset, attrs map[string]model.EnrichedAttributes) error {
	if len(ds.Records) == 0 {
		log.Println("[Repository] Dataset vazio, nada a gravar")
		return nil
	}

	markets, cats, products := distinctDimensions(ds.Records)
	if err := r.insertValues(ctx, colSupermarket, markets); err != nil {
		return err
	}
	if err := r.insertValues(ctx, colCategory, cats); err != nil {
		return err
	}
	if err := r.DB.InsertBatch(ctx, upsertProduct, productRows(products, attrs)); err != nil {
		return fmt.Errorf("gravando produtos: %w", err)
	}

	fact := FactTable(ds)
	for _, col := range []string{colProduct, colSupermarket, colCategory} {
		dict, err := r.dictionary(ctx, col)
		if err != nil {
			return err
		}
		if fact, err = dimension.Substitute(fact, dict, col); err != nil {
			return err
		}
	}

	if err := r.DB.InsertBatch(ctx, insertPrice, fact.Rows); err != nil {
		return fmt.Errorf("gravando preços: %w", err)
	}
	log.Printf("[Repository] Execução %s gravada: %d preços", ds.RunID, len(fact.Rows))
	return nil
}

func (r *PriceRepository) insertValues(ctx context.Context, table string, values []string) error {
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	stmt := fmt.Sprintf("INSERT INTO %[1]s (%[1]s) VALUES ($1) ON CONFLICT (%[1]s) DO NOTHING", table)
	if err := r.DB.InsertBatch(ctx, stmt, rows); err != nil {
		return fmt.Errorf("gravando %s: %w", table, err)
	}
	return nil
}

func (r *PriceRepository) dictionary(ctx context.Context, table string) (dimension.Dictionary, error) {
	res, err := r.DB.Query(ctx, fmt.Sprintf("SELECT %[1]s_id, %[1]s FROM %[1]s", table))
	if err != nil {
		return nil, fmt.Errorf("lendo %s: %w", table, err)
	}
	return dimension.BuildDictionary(dimension.Table{Columns: res.Columns, Rows: res.Rows}, table)
}

// FactTable monta a tabela fato com os valores descritivos ainda em texto.
func FactTable(ds model.Dataset) dimension.Table {
	t := dimension.Table{Columns: factColumns, Rows: make([][]any, len(ds.Records))}
	for i, rec := range ds.Records {
		t.Rows[i] = []any{ds.RunID, rec.Date, rec.Price, rec.DeltaPrice, rec.DeltaPercent, rec.Product, rec.Supermarket, rec.Category, rec.URL}
	}
	return t
}

func distinctDimensions(recs []model.PriceRecord) (markets, cats, products []string) {
	seen := map[string]map[string]bool{colSupermarket: {}, colCategory: {}, colProduct: {}}
	add := func(kind, v string, dst *[]string) {
		if !seen[kind][v] {
			seen[kind][v] = true
			*dst = append(*dst, v)
		}
	}
	for _, r := range recs {
		add(colSupermarket, r.Supermarket, &markets)
		add(colCategory, r.Category, &cats)
		add(colProduct, r.Product, &products)
	}
	return markets, cats, products
}

func productRows(products []string, attrs map[string]model.EnrichedAttributes) [][]any {
	rows := make([][]any, len(products))
	for i, p := range products {
		a, ok := attrs[p]
		rows[i] = []any{p, a.Category, a.Subcategory, a.Brand, a.Volume, a.Weight, a.Details, ok}
	}
	return rows
}
