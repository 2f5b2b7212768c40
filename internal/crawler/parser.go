package crawler

import (
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"superprecos/internal/model"
	"superprecos/internal/observability"
)

const (
	cardSelector = "div.card.h-100"
	nameSelector = "p.fw-bolder"
)

// ExtractCatalog lê os cards de produto da listagem. Cards sem nome ou sem link são
// ignorados (com log) e contados no segundo retorno.
func ExtractCatalog(doc *goquery.Document) ([]model.CatalogEntry, int) {
	var (
		entries []model.CatalogEntry
		skipped int
	)

	doc.Find(cardSelector).Each(func(i int, card *goquery.Selection) {
		nameSel := card.Find(nameSelector).First()
		link, hasLink := card.Find("a[href]").First().Attr("href")
		link = strings.TrimSpace(link)

		switch {
		case nameSel.Length() == 0:
			log.Printf("[Catalog] Card %d sem nome, ignorado", i)
		case !hasLink || link == "":
			log.Printf("[Catalog] Card %d (%s) sem link, ignorado", i, strings.TrimSpace(nameSel.Text()))
		default:
			entries = append(entries, model.CatalogEntry{
				Name: strings.TrimSpace(nameSel.Text()),
				Link: resolveLink(doc.Url, link),
			})
			return
		}
		skipped++
		observability.CardsSkipped.Inc()
	})

	return entries, skipped
}

func resolveLink(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
