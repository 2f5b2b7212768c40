package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"superprecos/internal/model"
)

const sheet = "Sheet1"

var header = []string{"product", "date", "price", "delta_price", "delta_percent", "supermarket", "category", "url"}

// Write escolhe o formato pela extensão do arquivo (.csv ou .xlsx).
func Write(path string, recs []model.PriceRecord) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(path, recs)
	case ".xlsx":
		return WriteXLSX(path, recs)
	default:
		return fmt.Errorf("extensão não suportada: %s", path)
	}
}

func WriteCSV(path string, recs []model.PriceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range recs {
		if err := w.Write(record(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteXLSX(path string, recs []model.PriceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for i, r := range recs {
		row := []interface{}{
			r.Product, r.Date.Format("2006-01-02"), r.Price, r.DeltaPrice, r.DeltaPercent, r.Supermarket, r.Category, r.URL,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func record(r model.PriceRecord) []string {
	return []string{
		r.Product,
		r.Date.Format("2006-01-02"),
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		strconv.FormatFloat(r.DeltaPrice, 'f', 2, 64),
		strconv.FormatFloat(r.DeltaPercent, 'f', -1, 64),
		r.Supermarket,
		r.Category,
		r.URL,
	}
}
