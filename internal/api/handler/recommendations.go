package handler

import (
	"net/http"

	"github.com/revops/revenue-analytics-api/internal/usecases/recommending"
	"github.com/revops/revenue-analytics-api/pkg/apiErrors"
	"github.com/revops/revenue-analytics-api/pkg/log"
)

// GetRecommendations retorna a lista priorizada de recomendações
func GetRecommendations(service recommending.Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		recommendations, err := service.GetRecommendations()
		if err != nil {
			logger.WithError(err).Error("recommendations: erro ao sintetizar recomendações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar recomendações", nil)
			return
		}

		logger.WithField("total", len(recommendations)).Info("recommendations: síntese concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(recommendations); err != nil {
			logger.WithError(err).Error("recommendations: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
