package summarizing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/revops/revenue-analytics-api/infrastructure/repository/mocks"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Instante de referência dos testes: 15 de maio de 2025 (Q2)
var testNow = time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

var (
	q2Start     = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	q2End       = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	q1Start     = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	q1End       = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	q2LastStart = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	q2LastEnd   = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	q2Months = []string{"2025-04", "2025-05", "2025-06"}
)

func TestGetSummary(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(dealRepo *mocks.MockDealRepository, targetRepo *mocks.MockTargetRepository)
		expect *domain.Summary
	}{
		{
			name: "Receita acima da meta com comparação anual",
			setup: func(dealRepo *mocks.MockDealRepository, targetRepo *mocks.MockTargetRepository) {
				dealRepo.EXPECT().SumClosedWonBetween(q2Start, q2End).Return(35000.0, nil)
				targetRepo.EXPECT().SumForMonths(q2Months).Return(30000.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q1Start, q1End).Return(28000.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q2LastStart, q2LastEnd).Return(30000.0, nil)
			},
			expect: &domain.Summary{
				CurrentQuarterRevenue: 35000,
				Target:                30000,
				Gap:                   5000,
				GapPercentage:         16.67,
				Change: domain.Change{
					Type:       domain.ChangeTypeYoY,
					Value:      5000,
					Percentage: 16.67,
				},
			},
		},
		{
			name: "Sem receita no ano anterior cai para comparação trimestral",
			setup: func(dealRepo *mocks.MockDealRepository, targetRepo *mocks.MockTargetRepository) {
				dealRepo.EXPECT().SumClosedWonBetween(q2Start, q2End).Return(24000.0, nil)
				targetRepo.EXPECT().SumForMonths(q2Months).Return(30000.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q1Start, q1End).Return(20000.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q2LastStart, q2LastEnd).Return(0.0, nil)
			},
			expect: &domain.Summary{
				CurrentQuarterRevenue: 24000,
				Target:                30000,
				Gap:                   -6000,
				GapPercentage:         -20,
				Change: domain.Change{
					Type:       domain.ChangeTypeQoQ,
					Value:      4000,
					Percentage: 20,
				},
			},
		},
		{
			name: "Sem metas cadastradas o percentual de gap é zero",
			setup: func(dealRepo *mocks.MockDealRepository, targetRepo *mocks.MockTargetRepository) {
				dealRepo.EXPECT().SumClosedWonBetween(q2Start, q2End).Return(12000.0, nil)
				targetRepo.EXPECT().SumForMonths(q2Months).Return(0.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q1Start, q1End).Return(0.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q2LastStart, q2LastEnd).Return(0.0, nil)
			},
			expect: &domain.Summary{
				CurrentQuarterRevenue: 12000,
				Target:                0,
				Gap:                   12000,
				GapPercentage:         0,
				Change: domain.Change{
					Type:       domain.ChangeTypeQoQ,
					Value:      12000,
					Percentage: 0,
				},
			},
		},
		{
			name: "Banco vazio produz resumo zerado, nunca NaN",
			setup: func(dealRepo *mocks.MockDealRepository, targetRepo *mocks.MockTargetRepository) {
				dealRepo.EXPECT().SumClosedWonBetween(q2Start, q2End).Return(0.0, nil)
				targetRepo.EXPECT().SumForMonths(q2Months).Return(0.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q1Start, q1End).Return(0.0, nil)
				dealRepo.EXPECT().SumClosedWonBetween(q2LastStart, q2LastEnd).Return(0.0, nil)
			},
			expect: &domain.Summary{
				CurrentQuarterRevenue: 0,
				Target:                0,
				Gap:                   0,
				GapPercentage:         0,
				Change: domain.Change{
					Type:       domain.ChangeTypeQoQ,
					Value:      0,
					Percentage: 0,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dealRepo := mocks.NewMockDealRepository(ctrl)
			targetRepo := mocks.NewMockTargetRepository(ctrl)
			tt.setup(dealRepo, targetRepo)

			service := &Service{
				dealRepo:   dealRepo,
				targetRepo: targetRepo,
				now:        func() time.Time { return testNow },
			}

			summary, err := service.GetSummary()

			assert.NoError(t, err)
			assert.Equal(t, tt.expect, summary)
		})
	}
}

func TestGetSummaryRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	targetRepo := mocks.NewMockTargetRepository(ctrl)

	dealRepo.EXPECT().
		SumClosedWonBetween(q2Start, q2End).
		Return(0.0, errors.New("connection refused"))

	service := &Service{
		dealRepo:   dealRepo,
		targetRepo: targetRepo,
		now:        func() time.Time { return testNow },
	}

	summary, err := service.GetSummary()

	assert.Error(t, err)
	assert.Nil(t, summary)
}
