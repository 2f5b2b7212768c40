package crawler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"superprecos/internal/model"
)

var (
	ErrPageUnavailable = errors.New("página indisponível")
	ErrNoTable         = errors.New("nenhuma tabela na página")
	ErrNoHeader        = errors.New("tabela sem cabeçalho")
	ErrShortRow        = errors.New("linha com menos células que o cabeçalho")
)

// ExtractTable busca a página do produto e converte a última tabela em linhas.
// Uma linha curta invalida a página inteira.
func ExtractTable(ctx context.Context, f PageFetcher, url string) ([]model.RawRow, error) {
	doc, ok := f.Fetch(ctx, url)
	if !ok {
		return nil, fmt.Errorf("%s: %w", url, ErrPageUnavailable)
	}
	return ParseTable(doc, url)
}

// ParseTable faz o trabalho de ExtractTable sobre um documento já carregado.
func ParseTable(doc *goquery.Document, url string) ([]model.RawRow, error) {
	// A última tabela, pois pode haver outras acima da de histórico
	table := doc.Find("table").Last()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%s: %w", url, ErrNoTable)
	}

	k := table.Find("th").Length()
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", url, ErrNoHeader)
	}

	// Uma lista por coluna
	columns := make([][]string, k)

	trs := table.Find("tr")
	var rowErr error
	trs.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if i == 0 {
			return true // cabeçalho
		}
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return true
		}
		if tds.Length() < k {
			rowErr = fmt.Errorf("%s: linha %d tem %d de %d células: %w", url, i, tds.Length(), k, ErrShortRow)
			return false
		}
		for c := 0; c < k; c++ {
			columns[c] = append(columns[c], strings.TrimSpace(tds.Eq(c).Text()))
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	// Transpõe colunas de volta para linhas
	n := len(columns[0])
	rows := make([]model.RawRow, n)
	for r := 0; r < n; r++ {
		cells := make([]string, k)
		for c := 0; c < k; c++ {
			cells[c] = columns[c][r]
		}
		rows[r] = model.RawRow{Cells: cells, SourceURL: url}
	}
	return rows, nil
}
