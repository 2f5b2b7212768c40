package model

import "time"

// CatalogEntry é um produto encontrado na página de listagem de um mercado/categoria.
type CatalogEntry struct {
	Name string
	Link string
}

// RawRow é uma linha da tabela de histórico, posicional em relação aos cabeçalhos da página.
type RawRow struct {
	Cells     []string
	SourceURL string
	Product   string
}

type PriceRecord struct {
	Product      string
	Date         time.Time
	Price        float64 // em euros
	DeltaPrice   float64
	DeltaPercent float64
	Supermarket  string
	Category     string
	URL          string
}

// Categorias aceitas no enriquecimento
const (
	CategoryMilk         = "leche"
	CategoryOliveOil     = "aceite_oliva"
	CategorySunflowerOil = "aceite_girasol"
)

// EnrichedAttributes são os atributos estruturados extraídos do nome do produto.
// Campos nil equivalem a null na resposta do modelo.
type EnrichedAttributes struct {
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Brand       *string  `json:"brand"`
	Volume      *float64 `json:"volume"` // litros
	Weight      *float64 `json:"weight"` // gramas
	Details     *string  `json:"details"`
}

// ProductResult é o resultado por produto dentro de uma execução em lote.
type ProductResult struct {
	Entry CatalogEntry
	Rows  []RawRow
	Err   error
}

func (r ProductResult) Skipped() bool {
	return r.Err != nil
}

type RunSummary struct {
	Pairs           int
	PairsSkipped    int
	Products        int
	ProductsSkipped int
	CardsSkipped    int
	Records         int
}

type Dataset struct {
	RunID   string
	Records []PriceRecord
	Summary RunSummary
}
