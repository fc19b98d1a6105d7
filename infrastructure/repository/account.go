package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/revops/revenue-analytics-api/infrastructure/database/postgres"
	"github.com/revops/revenue-analytics-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	// ListDormant lista contas com pelo menos um negócio aberto cuja última
	// atividade é anterior à data de corte (ou inexistente), ordenadas por
	// quantidade de negócios abertos
	ListDormant(inactiveBefore time.Time, limit uint64) ([]*domain.DormantAccountRow, error)

	// SegmentsByIDs retorna o segmento de cada conta informada. Contas
	// inexistentes simplesmente não aparecem no mapa.
	SegmentsByIDs(accountIDs []string) (map[string]string, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListDormant(inactiveBefore time.Time, limit uint64) ([]*domain.DormantAccountRow, error) {
	// As atividades entram pelo JOIN com os negócios abertos, então a última
	// atividade considerada é sempre sobre um negócio ainda aberto
	query, args, err := squirrel.
		Select(
			"a.account_id",
			"a.name",
			"a.segment",
			"COUNT(DISTINCT d.deal_id) AS open_deals",
			"MAX(act.timestamp) AS last_activity",
		).
		From(accountsTable).
		LeftJoin(
			"deals d ON a.account_id = d.account_id AND d.stage NOT IN (?, ?)",
			domain.StageClosedWon,
			domain.StageClosedLost,
		).
		LeftJoin("activities act ON d.deal_id = act.deal_id").
		GroupBy("a.account_id", "a.name", "a.segment").
		Having("COUNT(DISTINCT d.deal_id) > 0").
		Having("(MAX(act.timestamp) IS NULL OR MAX(act.timestamp) < ?)", inactiveBefore.Format(time.DateOnly)).
		OrderBy("open_deals DESC").
		Limit(limit).
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

	accounts := make([]*domain.DormantAccountRow, 0)
	for rows.Next() {
		entry := &domain.DormantAccountRow{}
		var segment sql.NullString
		var lastActivity sql.NullTime

		err := rows.Scan(
			&entry.AccountID,
			&entry.Name,
			&segment,
			&entry.OpenDeals,
			&lastActivity,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta inativa: %w", err)
		}

		entry.Segment = segment.String
		if lastActivity.Valid {
			entry.LastActivity = &lastActivity.Time
		}

		accounts = append(accounts, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) SegmentsByIDs(accountIDs []string) (map[string]string, error) {
	segments := make(map[string]string)
	if len(accountIDs) == 0 {
		return segments, nil
	}

	query, args, err := squirrel.
		Select("a.account_id", "a.segment").
		From(accountsTable).
		Where(squirrel.Eq{"a.account_id": accountIDs}).
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

	for rows.Next() {
		var accountID string
		var segment sql.NullString

		if err := rows.Scan(&accountID, &segment); err != nil {
			return nil, fmt.Errorf("erro ao escanear segmento: %w", err)
		}

		segments[accountID] = segment.String
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return segments, nil
}
