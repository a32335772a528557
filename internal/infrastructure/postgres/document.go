package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/offerdesk-api/internal/domain"
)

// docTable lee y escribe la columna doc (JSONB) de una tabla; pgx codifica T con encoding/json.
type docTable[T any] struct {
	db    DB
	table string
}

// get devuelve (nil, nil) si no hay fila.
func (t docTable[T]) get(ctx context.Context, op, where string, args ...any) (*T, error) {
	var doc T
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s LIMIT 1`, t.table, where)
	if err := t.db.QueryRow(ctx, query, args...).Scan(&doc); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap(op, err)
	}
	return &doc, nil
}

func (t docTable[T]) list(ctx context.Context, op, where, order string, args ...any) ([]*T, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s ORDER BY %s`, t.table, where, order)
	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()
	var out []*T
	for rows.Next() {
		var doc T
		if err := rows.Scan(&doc); err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, &doc)
	}
	return out, wrap(op, rows.Err())
}

// exec ejecuta un UPDATE; domain.ErrNotFound si no afectó filas.
func (t docTable[T]) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := t.db.Exec(ctx, query, args...)
	if err != nil {
		return wrap(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
