package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUnreachable        = errors.New("banco inacessível")
	ErrUnknownDatabase    = errors.New("banco de dados não existe")
	ErrDatabase           = errors.New("erro no banco de dados")
)

// Result é o retorno de Query: nomes das colunas e valores linha a linha.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Gateway abre uma conexão por operação e a fecha ao final, com ou sem erro.
// Cada operação roda numa transação própria.
type Gateway struct {
	URL string
}

func (g *Gateway) CreateSchema(ctx context.Context, stmts []string) error {
	err := g.withConn(ctx, func(tx pgx.Tx) error {
		for _, s := range stmts {
			if _, err := tx.Exec(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Println("[DB] Tabelas criadas com sucesso.")
	return nil
}

// InsertBatch executa stmt uma vez por linha, em lote.
func (g *Gateway) InsertBatch(ctx context.Context, stmt string, rows [][]any) error {
	err := g.withConn(ctx, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		for _, r := range rows {
			b.Queue(stmt, r...)
		}
		return tx.SendBatch(ctx, b).Close()
	})
	if err != nil {
		return err
	}
	log.Printf("[DB] %d linhas inseridas com sucesso.", len(rows))
	return nil
}

func (g *Gateway) Query(ctx context.Context, stmt string, args ...any) (Result, error) {
	var res Result
	err := g.withConn(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for _, fd := range rows.FieldDescriptions() {
			res.Columns = append(res.Columns, fd.Name)
		}
		for rows.Next() {
			vals, err := rows.Values()
			if err != nil {
				return err
			}
			res.Rows = append(res.Rows, vals)
		}
		return rows.Err()
	})
	if err != nil {
		return Result{}, err
	}
	log.Println("[DB] Consulta executada com sucesso.")
	return res, nil
}

func (g *Gateway) withConn(ctx context.Context, fn func(pgx.Tx) error) error {
	conn, err := pgx.Connect(ctx, g.URL)
	if err != nil {
		return report(err)
	}
	defer func() {
		if cerr := conn.Close(context.Background()); cerr != nil {
			log.Printf("[DB] Erro ao fechar conexão: %v", cerr)
			return
		}
		log.Println("[DB] Conexão com o banco encerrada.")
	}()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return report(err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return report(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return report(err)
	}
	return nil
}

// Classify enquadra o erro do driver em uma das categorias conhecidas.
func Classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "28P01" || pgErr.Code == "28000":
			return ErrInvalidCredentials
		case pgErr.Code == "3D000":
			return ErrUnknownDatabase
		case strings.HasPrefix(pgErr.Code, "08"):
			return ErrUnreachable
		}
		return ErrDatabase
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) {
		return ErrUnreachable
	}
	return ErrDatabase
}

func report(err error) error {
	kind := Classify(err)
	switch kind {
	case ErrInvalidCredentials:
		log.Println("[DB] Senha incorreta")
	case ErrUnreachable:
		log.Println("[DB] Erro de conexão")
	case ErrUnknownDatabase:
		log.Println("[DB] Banco de dados não existe")
	default:
		log.Printf("[DB] Erro no banco de dados: %v", err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
