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
	dealsTable = "deals d"
)

// closedStages é usado nas cláusulas IN/NOT IN das consultas de agregação
var closedStages = []string{domain.StageClosedWon, domain.StageClosedLost}

type DealRepository interface {
	// SumClosedWonBetween soma os valores de negócios ganhos fechados no
	// intervalo inclusivo [start, end]. Valores nulos não contribuem.
	SumClosedWonBetween(start, end time.Time) (float64, error)

	// SumClosedWonSince soma os valores de negócios ganhos fechados a partir
	// da data informada (sem limite superior)
	SumClosedWonSince(since time.Time) (float64, error)

	// SumOpenPipeline soma os valores de negócios abertos. Quando
	// createdOnOrBefore é informado, apenas negócios criados até essa data
	// entram na soma.
	SumOpenPipeline(createdOnOrBefore *time.Time) (float64, error)

	// CountClosuresBetween conta negócios ganhos e perdidos com fechamento
	// no intervalo inclusivo [start, end]
	CountClosuresBetween(start, end time.Time) (won int, lost int, err error)

	// AvgWonAmountBetween calcula o valor médio dos negócios ganhos fechados
	// no intervalo. Retorna 0 quando não há negócios.
	AvgWonAmountBetween(start, end time.Time) (float64, error)

	// AvgWonAmountSince calcula o valor médio dos negócios ganhos fechados a
	// partir da data informada
	AvgWonAmountSince(since time.Time) (float64, error)

	// AvgOpenAmount calcula o valor médio de todos os negócios abertos,
	// sem recorte temporal
	AvgOpenAmount() (float64, error)

	// AvgSalesCycleDaysBetween calcula a média de dias entre criação e
	// fechamento dos negócios ganhos fechados no intervalo
	AvgSalesCycleDaysBetween(start, end time.Time) (float64, error)

	// ListStaleOpenDeals lista negócios abertos com valor não nulo criados
	// antes da data de corte, dos mais antigos para os mais recentes
	ListStaleOpenDeals(createdBefore time.Time, limit uint64) ([]*domain.Deal, error)
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) SumClosedWonBetween(start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(d.amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageClosedWon}).
		Where("d.closed_at IS NOT NULL").
		Where(squirrel.GtOrEq{"d.closed_at": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.closed_at": end.Format(time.DateOnly)}).
		Where("d.amount IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) SumClosedWonSince(since time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(d.amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageClosedWon}).
		Where("d.closed_at IS NOT NULL").
		Where(squirrel.GtOrEq{"d.closed_at": since.Format(time.DateOnly)}).
		Where("d.amount IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) SumOpenPipeline(createdOnOrBefore *time.Time) (float64, error) {
	builder := squirrel.
		Select("COALESCE(SUM(d.amount), 0)").
		From(dealsTable).
		Where(squirrel.NotEq{"d.stage": closedStages}).
		Where("d.amount IS NOT NULL")

	if createdOnOrBefore != nil {
		builder = builder.Where(squirrel.LtOrEq{"d.created_at": createdOnOrBefore.Format(time.DateOnly)})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) CountClosuresBetween(start, end time.Time) (int, int, error) {
	query, args, err := squirrel.
		Select(
			fmt.Sprintf("COUNT(CASE WHEN d.stage = '%s' THEN 1 END) AS won", domain.StageClosedWon),
			fmt.Sprintf("COUNT(CASE WHEN d.stage = '%s' THEN 1 END) AS lost", domain.StageClosedLost),
		).
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": closedStages}).
		Where(squirrel.GtOrEq{"d.closed_at": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.closed_at": end.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var won, lost int
	if err := r.conn.QueryRow(query, args...).Scan(&won, &lost); err != nil {
		return 0, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return won, lost, nil
}

func (r *dealRepository) AvgWonAmountBetween(start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(d.amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageClosedWon}).
		Where(squirrel.GtOrEq{"d.closed_at": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.closed_at": end.Format(time.DateOnly)}).
		Where("d.amount IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) AvgWonAmountSince(since time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(d.amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageClosedWon}).
		Where(squirrel.GtOrEq{"d.closed_at": since.Format(time.DateOnly)}).
		Where("d.amount IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) AvgOpenAmount() (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(d.amount), 0)").
		From(dealsTable).
		Where(squirrel.NotEq{"d.stage": closedStages}).
		Where("d.amount IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) AvgSalesCycleDaysBetween(start, end time.Time) (float64, error) {
	// closed_at - created_at em PostgreSQL resulta em dias inteiros
	query, args, err := squirrel.
		Select("COALESCE(AVG(d.closed_at - d.created_at), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageClosedWon}).
		Where(squirrel.GtOrEq{"d.closed_at": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.closed_at": end.Format(time.DateOnly)}).
		Where("d.created_at IS NOT NULL").
		Where("d.closed_at IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(query, args...)
}

func (r *dealRepository) ListStaleOpenDeals(createdBefore time.Time, limit uint64) ([]*domain.Deal, error) {
	query, args, err := squirrel.
		Select("d.deal_id, d.account_id, d.rep_id, d.amount, d.stage, d.created_at").
		From(dealsTable).
		Where(squirrel.NotEq{"d.stage": closedStages}).
		Where("d.amount IS NOT NULL").
		Where(squirrel.Lt{"d.created_at": createdBefore.Format(time.DateOnly)}).
		OrderBy("d.created_at ASC").
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

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal := &domain.Deal{}
		var amount sql.NullFloat64

		err := rows.Scan(
			&deal.DealID,
			&deal.AccountID,
			&deal.RepID,
			&amount,
			&deal.Stage,
			&deal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}

		if amount.Valid {
			deal.Amount = &amount.Float64
		}

		deals = append(deals, deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

func (r *dealRepository) scanFloat(query string, args ...interface{}) (float64, error) {
	var value float64

	err := r.conn.QueryRow(query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return value, nil
}
