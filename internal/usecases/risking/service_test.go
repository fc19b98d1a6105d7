package risking

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/revops/revenue-analytics-api/infrastructure/repository/mocks"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Instante de referência dos testes: 15 de maio de 2025
var testNow = time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)

var (
	staleCutoff    = testNow.AddDate(0, 0, -StaleDealThresholdDays)
	closureSince   = testNow.AddDate(0, 0, -RepClosureWindowDays)
	dormantCutoff  = testNow.AddDate(0, 0, -InactivityThresholdDays)
	limit          = uint64(RiskListLimit)
	lastActivityAt = testNow.AddDate(0, 0, -40)
)

func floatPtr(v float64) *float64 {
	return &v
}

func newService(
	dealRepo *mocks.MockDealRepository,
	repRepo *mocks.MockRepRepository,
	accountRepo *mocks.MockAccountRepository,
) *Service {
	return &Service{
		dealRepo:    dealRepo,
		repRepo:     repRepo,
		accountRepo: accountRepo,
		now:         func() time.Time { return testNow },
	}
}

func TestGetRiskFactorsStaleDeals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	repRepo := mocks.NewMockRepRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	// Negócio aberto criado 45 dias antes do instante de referência
	createdAt := testNow.AddDate(0, 0, -45)

	dealRepo.EXPECT().
		ListStaleOpenDeals(staleCutoff, limit).
		Return([]*domain.Deal{
			{
				DealID:    "D001",
				AccountID: "A001",
				RepID:     "R001",
				Amount:    floatPtr(50000),
				Stage:     "Proposal",
				CreatedAt: createdAt,
			},
		}, nil)
	repRepo.EXPECT().ClosureStatsSince(closureSince, MinClosuresForRate).Return(nil, nil)
	accountRepo.EXPECT().ListDormant(dormantCutoff, limit).Return(nil, nil)

	service := newService(dealRepo, repRepo, accountRepo)

	risks, err := service.GetRiskFactors()

	assert.NoError(t, err)
	assert.Len(t, risks.StaleDeals, 1)
	assert.Equal(t, "D001", risks.StaleDeals[0].DealID)
	assert.Equal(t, 50000.0, risks.StaleDeals[0].Amount)
	assert.Equal(t, "Proposal", risks.StaleDeals[0].Stage)
	assert.Equal(t, 45, risks.StaleDeals[0].DaysSinceUpdate)
	assert.Equal(t, createdAt.Format(time.DateOnly), risks.StaleDeals[0].CreatedAt)
	assert.Empty(t, risks.UnderperformingReps)
	assert.Empty(t, risks.LowActivityAccounts)
}

func TestGetRiskFactorsUnderperformingReps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	repRepo := mocks.NewMockRepRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	dealRepo.EXPECT().ListStaleOpenDeals(staleCutoff, limit).Return(nil, nil)
	repRepo.EXPECT().
		ClosureStatsSince(closureSince, MinClosuresForRate).
		Return([]*domain.RepClosureStats{
			// 2/8 = 25%, abaixo do limiar
			{RepID: "R001", Name: "Ana", ClosedWon: 2, ClosedLost: 6, TotalClosed: 8},
			// 1/6 = 16.67%, a pior taxa
			{RepID: "R002", Name: "Bruno", ClosedWon: 1, ClosedLost: 5, TotalClosed: 6},
			// 4/9 = 44.44%, acima do limiar, fica de fora
			{RepID: "R003", Name: "Carla", ClosedWon: 4, ClosedLost: 5, TotalClosed: 9},
			// Exatamente 30% não é considerado abaixo da meta
			{RepID: "R004", Name: "Davi", ClosedWon: 3, ClosedLost: 7, TotalClosed: 10},
		}, nil)
	accountRepo.EXPECT().ListDormant(dormantCutoff, limit).Return(nil, nil)

	service := newService(dealRepo, repRepo, accountRepo)

	risks, err := service.GetRiskFactors()

	assert.NoError(t, err)
	assert.Len(t, risks.UnderperformingReps, 2)

	// Ordenado da pior taxa para a melhor
	assert.Equal(t, "R002", risks.UnderperformingReps[0].RepID)
	assert.Equal(t, 16.67, risks.UnderperformingReps[0].WinRate)
	assert.Equal(t, 6, risks.UnderperformingReps[0].TotalDeals)
	assert.Equal(t, 1, risks.UnderperformingReps[0].ClosedWon)
	assert.Equal(t, 5, risks.UnderperformingReps[0].ClosedLost)

	assert.Equal(t, "R001", risks.UnderperformingReps[1].RepID)
	assert.Equal(t, 25.0, risks.UnderperformingReps[1].WinRate)
}

func TestGetRiskFactorsLowActivityAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	repRepo := mocks.NewMockRepRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	dealRepo.EXPECT().ListStaleOpenDeals(staleCutoff, limit).Return(nil, nil)
	repRepo.EXPECT().ClosureStatsSince(closureSince, MinClosuresForRate).Return(nil, nil)
	accountRepo.EXPECT().
		ListDormant(dormantCutoff, limit).
		Return([]*domain.DormantAccountRow{
			{
				AccountID:    "A001",
				Name:         "Acme Corp",
				Segment:      "Enterprise",
				OpenDeals:    3,
				LastActivity: &lastActivityAt,
			},
			{
				AccountID: "A002",
				Name:      "Globex",
				Segment:   "SMB",
				OpenDeals: 1,
				// Sem nenhuma atividade registrada
				LastActivity: nil,
			},
		}, nil)

	service := newService(dealRepo, repRepo, accountRepo)

	risks, err := service.GetRiskFactors()

	assert.NoError(t, err)
	assert.Len(t, risks.LowActivityAccounts, 2)

	assert.Equal(t, "A001", risks.LowActivityAccounts[0].AccountID)
	assert.Equal(t, 40, risks.LowActivityAccounts[0].DaysSinceLastActivity)
	assert.Equal(t, 3, risks.LowActivityAccounts[0].OpenDeals)

	assert.Equal(t, "A002", risks.LowActivityAccounts[1].AccountID)
	assert.Equal(t, NeverActiveSentinel, risks.LowActivityAccounts[1].DaysSinceLastActivity)
}

func TestGetRiskFactorsEmptyDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	repRepo := mocks.NewMockRepRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	dealRepo.EXPECT().ListStaleOpenDeals(staleCutoff, limit).Return([]*domain.Deal{}, nil)
	repRepo.EXPECT().ClosureStatsSince(closureSince, MinClosuresForRate).Return([]*domain.RepClosureStats{}, nil)
	accountRepo.EXPECT().ListDormant(dormantCutoff, limit).Return([]*domain.DormantAccountRow{}, nil)

	service := newService(dealRepo, repRepo, accountRepo)

	risks, err := service.GetRiskFactors()

	assert.NoError(t, err)
	assert.NotNil(t, risks.StaleDeals)
	assert.NotNil(t, risks.UnderperformingReps)
	assert.NotNil(t, risks.LowActivityAccounts)
	assert.Empty(t, risks.StaleDeals)
	assert.Empty(t, risks.UnderperformingReps)
	assert.Empty(t, risks.LowActivityAccounts)
}

func TestGetRiskFactorsRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	repRepo := mocks.NewMockRepRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	dealRepo.EXPECT().
		ListStaleOpenDeals(staleCutoff, limit).
		Return(nil, errors.New("connection refused"))

	service := newService(dealRepo, repRepo, accountRepo)

	risks, err := service.GetRiskFactors()

	assert.Error(t, err)
	assert.Nil(t, risks)
}
