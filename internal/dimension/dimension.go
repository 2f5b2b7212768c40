// Package dimension troca valores descritivos de uma tabela fato pelos ids das tabelas de dimensão.
package dimension

import (
	"errors"
	"fmt"
)

var ErrColumnNotFound = errors.New("coluna não encontrada")

// Table é uma tabela em memória: nomes de coluna e linhas posicionais.
type Table struct {
	Columns []string
	Rows    [][]any
}

func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Dictionary mapeia o valor descritivo para o id substituto.
type Dictionary map[string]int64

// BuildDictionary lê `column` e `column_id` da mesma linha da tabela de referência,
// então valor e id nunca se desalinham.
func BuildDictionary(ref Table, column string) (Dictionary, error) {
	vi := ref.ColumnIndex(column)
	if vi < 0 {
		return nil, fmt.Errorf("%s: %w", column, ErrColumnNotFound)
	}
	ii := ref.ColumnIndex(IDColumn(column))
	if ii < 0 {
		return nil, fmt.Errorf("%s: %w", IDColumn(column), ErrColumnNotFound)
	}

	dict := make(Dictionary, len(ref.Rows))
	for n, row := range ref.Rows {
		value, ok := row[vi].(string)
		if !ok {
			return nil, fmt.Errorf("linha %d: valor %v não é texto", n, row[vi])
		}
		id, ok := toInt64(row[ii])
		if !ok {
			return nil, fmt.Errorf("linha %d: id %v não é inteiro", n, row[ii])
		}
		dict[value] = id
	}
	return dict, nil
}

// Substitute devolve uma cópia de t com `column` trocada pelo id (*int64, nil quando o
// valor não está no dicionário) e renomeada para `column_id`.
func Substitute(t Table, dict Dictionary, column string) (Table, error) {
	ci := t.ColumnIndex(column)
	if ci < 0 {
		return Table{}, fmt.Errorf("%s: %w", column, ErrColumnNotFound)
	}

	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]any, len(t.Rows)),
	}
	out.Columns[ci] = IDColumn(column)

	for n, row := range t.Rows {
		r := append([]any(nil), row...)
		var id *int64
		if s, ok := row[ci].(string); ok {
			if v, found := dict[s]; found {
				id = &v
			}
		}
		r[ci] = id
		out.Rows[n] = r
	}
	return out, nil
}

func IDColumn(column string) string {
	return column + "_id"
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case int16:
		return int64(n), true
	default:
		return 0, false
	}
}
