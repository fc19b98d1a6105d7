package handler

import (
	"net/http"

	"github.com/revops/revenue-analytics-api/internal/usecases/driving"
	"github.com/revops/revenue-analytics-api/pkg/apiErrors"
	"github.com/revops/revenue-analytics-api/pkg/log"
)

// GetDrivers retorna os indicadores antecedentes do trimestre corrente
func GetDrivers(service driving.DriverAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		drivers, err := service.GetDrivers()
		if err != nil {
			logger.WithError(err).Error("drivers: erro ao calcular indicadores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular indicadores de receita", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(drivers); err != nil {
			logger.WithError(err).Error("drivers: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
