package cleaner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"superprecos/internal/model"
)

const (
	DateLayout = "02/01/2006"

	// O site publica "=" quando o preço não mudou
	noChangeMarker = "="
	noChangeDelta  = "0 (0%)"

	minColumns = 3
)

var (
	ErrColumnCount = errors.New("linha com menos de 3 colunas")
	ErrPrice       = errors.New("preço inválido")
	ErrDate        = errors.New("data inválida")
	ErrDelta       = errors.New("variação inválida")
)

var quoteStripper = strings.NewReplacer("'", "", `"`, "")

// Clean converte as linhas cruas de um mercado/categoria em registros tipados.
// Qualquer linha inválida aborta o lote inteiro.
func Clean(rows []model.RawRow, market, category string) ([]model.PriceRecord, error) {
	out := make([]model.PriceRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := cleanRow(row)
		if err != nil {
			return nil, fmt.Errorf("linha %d (%s): %w", i, row.SourceURL, err)
		}
		rec.Supermarket = market
		rec.Category = category
		out = append(out, rec)
	}
	return out, nil
}

func cleanRow(row model.RawRow) (model.PriceRecord, error) {
	dateText, priceText, deltaText, err := bindColumns(row.Cells)
	if err != nil {
		return model.PriceRecord{}, err
	}

	date, err := ParseDate(dateText)
	if err != nil {
		return model.PriceRecord{}, err
	}
	price, err := ParsePrice(priceText)
	if err != nil {
		return model.PriceRecord{}, err
	}
	delta, pct, err := ParseDelta(deltaText)
	if err != nil {
		return model.PriceRecord{}, err
	}

	return model.PriceRecord{
		Product:      CleanProductName(row.Product),
		Date:         date,
		Price:        price,
		DeltaPrice:   delta,
		DeltaPercent: pct,
		URL:          row.SourceURL,
	}, nil
}

// bindColumns é o único ponto que conhece a ordem das colunas: 0 data, 1 preço, 2 variação.
// Colunas extras são descartadas.
func bindColumns(cells []string) (date, price, delta string, err error) {
	if len(cells) < minColumns {
		return "", "", "", fmt.Errorf("%d colunas: %w", len(cells), ErrColumnCount)
	}
	return cells[0], cells[1], cells[2], nil
}

// ParsePrice aceita vírgula decimal ("1,09").
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrPrice)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q negativo: %w", s, ErrPrice)
	}
	return v, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrDate)
	}
	return t, nil
}

// ParseDelta lê textos como "+0,05 (4,8%)". Retorna a variação bruta e, quando presente,
// o percentual entre parênteses.
func ParseDelta(s string) (float64, float64, error) {
	s = strings.TrimSpace(s)
	if s == noChangeMarker {
		s = noChangeDelta
	}
	fields := strings.Fields(normalizeDecimal(s))
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("vazia: %w", ErrDelta)
	}
	gross, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrDelta)
	}

	var pct float64
	if len(fields) > 1 {
		p := strings.Trim(fields[1], "()%")
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			pct = v
		}
	}
	return gross, pct, nil
}

func CleanProductName(s string) string {
	return quoteStripper.Replace(s)
}

func normalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}
