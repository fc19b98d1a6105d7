package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais, normalizando
// o zero negativo
func RoundWithTwoDecimalPlace(value float64) float64 {
	rounded := math.Round(value*100) / 100
	if rounded == 0 {
		return 0
	}
	return rounded
}
