package handler

import (
	"net/http"

	"github.com/revops/revenue-analytics-api/internal/usecases/risking"
	"github.com/revops/revenue-analytics-api/pkg/apiErrors"
	"github.com/revops/revenue-analytics-api/pkg/log"
)

// GetRiskFactors retorna as três listas de fatores de risco da carteira
func GetRiskFactors(service risking.RiskAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		risks, err := service.GetRiskFactors()
		if err != nil {
			logger.WithError(err).Error("risk-factors: erro ao detectar fatores de risco")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao detectar fatores de risco", nil)
			return
		}

		logger.WithFields(log.Fields{
			"stale_deals":          len(risks.StaleDeals),
			"underperforming_reps": len(risks.UnderperformingReps),
			"low_activity":         len(risks.LowActivityAccounts),
		}).Info("risk-factors: detecção concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(risks); err != nil {
			logger.WithError(err).Error("risk-factors: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
