package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/revops/revenue-analytics-api/infrastructure/database/postgres"
	"github.com/revops/revenue-analytics-api/internal/domain"
)

const (
	repsTable = "reps r"
)

type RepRepository interface {
	// ClosureStatsSince agrega, por vendedor, os negócios fechados a partir
	// da data informada. Vendedores com menos de minClosed fechamentos na
	// janela ficam de fora do resultado.
	ClosureStatsSince(since time.Time, minClosed int) ([]*domain.RepClosureStats, error)
}

type repRepository struct {
	conn *postgres.Connection
}

func NewRepRepository(conn *postgres.Connection) RepRepository {
	return &repRepository{
		conn: conn,
	}
}

func (r *repRepository) ClosureStatsSince(since time.Time, minClosed int) ([]*domain.RepClosureStats, error) {
	// LEFT JOIN com as condições no ON: vendedores sem negócios na janela
	// aparecem com contagem zero e são cortados pelo HAVING
	query, args, err := squirrel.
		Select(
			"r.rep_id",
			"r.name",
			fmt.Sprintf("COUNT(CASE WHEN d.stage = '%s' THEN 1 END) AS closed_won", domain.StageClosedWon),
			fmt.Sprintf("COUNT(CASE WHEN d.stage = '%s' THEN 1 END) AS closed_lost", domain.StageClosedLost),
			"COUNT(d.deal_id) AS total_closed",
		).
		From(repsTable).
		LeftJoin(
			"deals d ON r.rep_id = d.rep_id AND d.stage IN (?, ?) AND d.closed_at >= ?",
			domain.StageClosedWon,
			domain.StageClosedLost,
			since.Format(time.DateOnly),
		).
		GroupBy("r.rep_id", "r.name").
		Having("COUNT(d.deal_id) >= ?", minClosed).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.RepClosureStats, 0)
	for rows.Next() {
		entry := &domain.RepClosureStats{}

		err := rows.Scan(
			&entry.RepID,
			&entry.Name,
			&entry.ClosedWon,
			&entry.ClosedLost,
			&entry.TotalClosed,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas do vendedor: %w", err)
		}

		stats = append(stats, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}
