package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"superprecos/internal/model"
)

var recs = []model.PriceRecord{
	{Product: "Leche Entera 1L", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Price: 1.09, Supermarket: "mercadona", Category: "leche", URL: "http://x/a"},
	{Product: "Leche, Semi", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Price: 1.15, DeltaPrice: 0.06, DeltaPercent: 5.5, Supermarket: "mercadona", Category: "leche", URL: "http://x/a"},
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(path, recs); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("linhas = %d", len(rows))
	}
	if rows[0][0] != "product" || rows[2][0] != "Leche, Semi" {
		t.Errorf("conteúdo inesperado: %v", rows)
	}
	if rows[2][1] != "2024-01-02" || rows[2][2] != "1.15" || rows[2][3] != "0.06" || rows[2][4] != "5.5" {
		t.Errorf("linha 2 = %v", rows[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := Write(path, recs); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][1] != "date" || rows[1][0] != "Leche Entera 1L" || rows[1][1] != "2024-01-01" {
		t.Errorf("planilha = %v", rows)
	}
}

func TestWrite_UnsupportedExtension(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "out.json"), recs); err == nil {
		t.Fatal("esperava erro para extensão desconhecida")
	}
}
