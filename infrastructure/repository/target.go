package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/revops/revenue-analytics-api/infrastructure/database/postgres"
)

const (
	targetsTable = "targets t"
)

type TargetRepository interface {
	// SumForMonths soma as metas das chaves "YYYY-MM" informadas. Meses sem
	// linha de meta contribuem com zero.
	SumForMonths(months []string) (float64, error)
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) SumForMonths(months []string) (float64, error) {
	if len(months) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Select("COALESCE(SUM(t.target), 0)").
		From(targetsTable).
		Where(squirrel.Eq{"t.month": months}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	err = r.conn.QueryRow(query, args...).Scan(&total)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return total, nil
}
