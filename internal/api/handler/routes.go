package handler

import (
	"net/http"

	"github.com/revops/revenue-analytics-api/internal/api/handler/router"
	"github.com/revops/revenue-analytics-api/internal/usecases/driving"
	"github.com/revops/revenue-analytics-api/internal/usecases/recommending"
	"github.com/revops/revenue-analytics-api/internal/usecases/risking"
	"github.com/revops/revenue-analytics-api/internal/usecases/summarizing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Analytics mapeia as quatro operações de análise em endpoints GET 1:1
func Analytics(
	summarizer summarizing.Summarizer,
	driverAnalyzer driving.DriverAnalyzer,
	riskAnalyzer risking.RiskAnalyzer,
	recommender recommending.Recommender,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(summarizer),
		},
		{
			Path:    "/api/drivers",
			Method:  http.MethodGet,
			Handler: GetDrivers(driverAnalyzer),
		},
		{
			Path:    "/api/risk-factors",
			Method:  http.MethodGet,
			Handler: GetRiskFactors(riskAnalyzer),
		},
		{
			Path:    "/api/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(recommender),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
