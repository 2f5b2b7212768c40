package crawler

import (
	"context"
	"errors"
	"testing"
)

const productHTML = `
<html><body>
<table id="decorativa">
  <tr><th>A</th><th>B</th><th>C</th><th>D</th></tr>
  <tr><td>x</td><td>x</td><td>x</td><td>x</td></tr>
</table>
<table class="table">
  <thead><tr><th>Fecha</th><th>Precio</th><th>Variación</th></tr></thead>
  <tbody>
    <tr><td>03/01/2024</td><td>1,15</td><td>+0,06 (5,5%)</td></tr>
    <tr><td>02/01/2024</td><td>1,09</td><td>=</td></tr>
    <tr></tr>
    <tr><td> 01/01/2024 </td><td>1,09</td><td>=</td><td>extra</td></tr>
  </tbody>
</table>
</body></html>`

func TestExtractTable_UsesLastTable(t *testing.T) {
	const url = "http://x/leche-entera"
	f := &stubFetcher{pages: map[string]string{url: productHTML}}

	rows, err := ExtractTable(context.Background(), f, url)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("esperava 3 linhas, veio %d", len(rows))
	}
	for i, r := range rows {
		if len(r.Cells) != 3 {
			t.Errorf("linha %d tem %d células", i, len(r.Cells))
		}
		if r.SourceURL != url {
			t.Errorf("linha %d sem URL de origem: %q", i, r.SourceURL)
		}
		if r.Cells[0] == "x" {
			t.Errorf("linha %d veio da tabela decorativa", i)
		}
	}
	if rows[0].Cells[2] != "+0,06 (5,5%)" {
		t.Errorf("variação = %q", rows[0].Cells[2])
	}
	if rows[2].Cells[0] != "01/01/2024" {
		t.Errorf("data não foi aparada: %q", rows[2].Cells[0])
	}
}

func TestExtractTable_Errors(t *testing.T) {
	cases := []struct {
		name string
		html string
		want error
	}{
		{"sem tabela", `<html><body><p>nada</p></body></html>`, ErrNoTable},
		{"sem cabeçalho", `<table><tr><td>01/01/2024</td></tr></table>`, ErrNoHeader},
		{"linha curta", `<table><tr><th>Fecha</th><th>Precio</th><th>Variación</th></tr>
			<tr><td>01/01/2024</td><td>1,09</td><td>=</td></tr>
			<tr><td>02/01/2024</td><td>1,09</td></tr></table>`, ErrShortRow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &stubFetcher{pages: map[string]string{"http://p": tc.html}}
			rows, err := ExtractTable(context.Background(), f, "http://p")
			if !errors.Is(err, tc.want) {
				t.Fatalf("erro = %v, esperado %v", err, tc.want)
			}
			if rows != nil {
				t.Errorf("não deveria devolver linhas: %v", rows)
			}
		})
	}
}

func TestExtractTable_PageUnavailable(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{}}
	_, err := ExtractTable(context.Background(), f, "http://x/404")
	if !errors.Is(err, ErrPageUnavailable) {
		t.Fatalf("erro = %v, esperado ErrPageUnavailable", err)
	}
}

func TestExtractTable_HeaderOnly(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{"http://p": `<table><tr><th>Fecha</th><th>Precio</th><th>Variación</th></tr></table>`}}
	rows, err := ExtractTable(context.Background(), f, "http://p")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("esperava zero linhas, veio %d", len(rows))
	}
}
