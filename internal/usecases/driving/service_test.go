package driving

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
	q2Start = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	q2End   = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
)

func TestGetDrivers(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(dealRepo *mocks.MockDealRepository)
		expect *domain.Drivers
	}{
		{
			name: "Trimestre com fechamentos",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().SumOpenPipeline(&q2End).Return(120000.0, nil)
				dealRepo.EXPECT().CountClosuresBetween(q2Start, q2End).Return(3, 5, nil)
				dealRepo.EXPECT().AvgWonAmountBetween(q2Start, q2End).Return(11666.6666, nil)
				dealRepo.EXPECT().AvgSalesCycleDaysBetween(q2Start, q2End).Return(42.4, nil)
			},
			expect: &domain.Drivers{
				PipelineSize:    120000,
				WinRate:         37.5,
				AverageDealSize: 11667,
				SalesCycleTime:  42,
			},
		},
		{
			name: "Sem fechamentos no trimestre os indicadores zeram",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().SumOpenPipeline(&q2End).Return(50000.0, nil)
				dealRepo.EXPECT().CountClosuresBetween(q2Start, q2End).Return(0, 0, nil)
				dealRepo.EXPECT().AvgWonAmountBetween(q2Start, q2End).Return(0.0, nil)
				dealRepo.EXPECT().AvgSalesCycleDaysBetween(q2Start, q2End).Return(0.0, nil)
			},
			expect: &domain.Drivers{
				PipelineSize:    50000,
				WinRate:         0,
				AverageDealSize: 0,
				SalesCycleTime:  0,
			},
		},
		{
			name: "Ciclo de venda arredonda para o dia mais próximo",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().SumOpenPipeline(&q2End).Return(0.0, nil)
				dealRepo.EXPECT().CountClosuresBetween(q2Start, q2End).Return(4, 0, nil)
				dealRepo.EXPECT().AvgWonAmountBetween(q2Start, q2End).Return(9999.5, nil)
				dealRepo.EXPECT().AvgSalesCycleDaysBetween(q2Start, q2End).Return(30.5, nil)
			},
			expect: &domain.Drivers{
				PipelineSize:    0,
				WinRate:         100,
				AverageDealSize: 10000,
				SalesCycleTime:  31,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dealRepo := mocks.NewMockDealRepository(ctrl)
			tt.setup(dealRepo)

			service := &Service{
				dealRepo: dealRepo,
				now:      func() time.Time { return testNow },
			}

			drivers, err := service.GetDrivers()

			assert.NoError(t, err)
			assert.Equal(t, tt.expect, drivers)
		})
	}
}

func TestGetDriversRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	dealRepo.EXPECT().
		SumOpenPipeline(&q2End).
		Return(0.0, errors.New("connection refused"))

	service := &Service{
		dealRepo: dealRepo,
		now:      func() time.Time { return testNow },
	}

	drivers, err := service.GetDrivers()

	assert.Error(t, err)
	assert.Nil(t, drivers)
}
