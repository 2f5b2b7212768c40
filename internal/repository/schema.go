package repository

// Schema devolve o DDL do modelo estrela: três dimensões e a tabela fato de preços.
func Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS supermarket (
			supermarket_id SERIAL PRIMARY KEY,
			supermarket    TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS category (
			category_id SERIAL PRIMARY KEY,
			category    TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS product (
			product_id  SERIAL PRIMARY KEY,
			product     TEXT NOT NULL UNIQUE,
			ai_category TEXT CHECK (ai_category IN ('leche', 'aceite_oliva', 'aceite_girasol')),
			subcategory TEXT,
			brand       TEXT,
			volume      NUMERIC,
			weight      NUMERIC,
			details     TEXT,
			enriched    BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS price (
			price_id       BIGSERIAL PRIMARY KEY,
			run_id         UUID NOT NULL,
			date           DATE NOT NULL,
			price          NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			delta_price    NUMERIC(10,2) NOT NULL,
			delta_percent  NUMERIC(8,2),
			product_id     INT REFERENCES product (product_id),
			supermarket_id INT REFERENCES supermarket (supermarket_id),
			category_id    INT REFERENCES category (category_id),
			url            TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS price_product_date_idx ON price (product_id, date)`,
	}
}
