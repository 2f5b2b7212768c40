package crawler

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"superprecos/internal/observability"
)

const catalogHTML = `
<html><body>
<div class="row">
  <div class="card h-100">
    <a href="https://super.facua.org/mercadona/leche/leche-entera-1l/"><img src="x.png"></a>
    <p class="fw-bolder">Leche Entera 1L</p>
  </div>
  <div class="card h-100">
    <p class="fw-bolder">Sin enlace</p>
  </div>
  <div class="card h-100">
    <a href="/mercadona/leche/leche-semi/">ver</a>
    <p class="fw-bolder"> Leche Semidesnatada </p>
  </div>
  <div class="card h-100">
    <a href="https://super.facua.org/otro/">sin nombre</a>
  </div>
  <div class="card">
    <a href="/ignorado/">no es card h-100</a>
    <p class="fw-bolder">Ignorado</p>
  </div>
</div>
</body></html>`

func TestExtractCatalog(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(catalogHTML))
	if err != nil {
		t.Fatal(err)
	}
	doc.Url, _ = url.Parse("https://super.facua.org/mercadona/leche/")

	before := testutil.ToFloat64(observability.CardsSkipped)
	entries, skipped := ExtractCatalog(doc)

	if len(entries) != 2 {
		t.Fatalf("esperava 2 entradas, veio %d: %+v", len(entries), entries)
	}
	if skipped != 2 {
		t.Errorf("esperava 2 cards ignorados, veio %d", skipped)
	}
	if len(entries)+skipped != 4 {
		t.Errorf("total de cards processados = %d", len(entries)+skipped)
	}
	if entries[0].Name != "Leche Entera 1L" || entries[0].Link != "https://super.facua.org/mercadona/leche/leche-entera-1l/" {
		t.Errorf("entrada 0 = %+v", entries[0])
	}
	if entries[1].Name != "Leche Semidesnatada" || entries[1].Link != "https://super.facua.org/mercadona/leche/leche-semi/" {
		t.Errorf("entrada 1 = %+v", entries[1])
	}
	if got := testutil.ToFloat64(observability.CardsSkipped) - before; got != 2 {
		t.Errorf("métrica de cards ignorados incrementou %v", got)
	}
}

func TestExtractCatalog_RelativeLinkWithoutBase(t *testing.T) {
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(
		`<div class="card h-100"><a href="/p/1">x</a><p class="fw-bolder">P</p></div>`))

	entries, skipped := ExtractCatalog(doc)
	if skipped != 0 || len(entries) != 1 || entries[0].Link != "/p/1" {
		t.Errorf("entries=%+v skipped=%d", entries, skipped)
	}
}

func TestExtractCatalog_Empty(t *testing.T) {
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	entries, skipped := ExtractCatalog(doc)
	if len(entries) != 0 || skipped != 0 {
		t.Errorf("entries=%v skipped=%d", entries, skipped)
	}
}
