// Package period concentra o cálculo de janelas de trimestre civil usado
// pelos serviços de análise. Todas as funções são puras: dependem apenas do
// instante informado, nunca do relógio do processo.
package period

import (
	"fmt"
	"time"
)

// Quarter é um trimestre civil com o intervalo inclusivo [Start, End].
// Q1=jan–mar, Q2=abr–jun, Q3=jul–set, Q4=out–dez; End é o último dia
// civil do mês final do trimestre.
type Quarter struct {
	Quarter int
	Year    int
	Start   time.Time
	End     time.Time
}

// FromTime retorna o trimestre civil que contém o instante informado
func FromTime(now time.Time) Quarter {
	quarter := (int(now.Month())-1)/3 + 1
	return ForQuarter(quarter, now.Year())
}

// ForQuarter monta o intervalo de um trimestre (1–4) de um ano
func ForQuarter(quarter, year int) Quarter {
	startMonth := time.Month((quarter-1)*3 + 1)
	endMonth := startMonth + 2

	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	// Dia zero do mês seguinte é o último dia civil do mês final
	end := time.Date(year, endMonth+1, 0, 0, 0, 0, 0, time.UTC)

	return Quarter{
		Quarter: quarter,
		Year:    year,
		Start:   start,
		End:     end,
	}
}

// Previous retorna o trimestre imediatamente anterior; no Q1 o ano retrocede
func (q Quarter) Previous() Quarter {
	prevQuarter := q.Quarter - 1
	prevYear := q.Year
	if prevQuarter == 0 {
		prevQuarter = 4
		prevYear--
	}
	return ForQuarter(prevQuarter, prevYear)
}

// SameQuarterLastYear retorna o mesmo trimestre do ano anterior
func (q Quarter) SameQuarterLastYear() Quarter {
	return ForQuarter(q.Quarter, q.Year-1)
}

// Months retorna as três chaves "YYYY-MM" dos meses que compõem o trimestre
func (q Quarter) Months() []string {
	months := make([]string, 0, 3)
	for m := 0; m < 3; m++ {
		month := time.Month((q.Quarter-1)*3 + 1 + m)
		months = append(months, fmt.Sprintf("%04d-%02d", q.Year, month))
	}
	return months
}

// StartOfMonth retorna o primeiro dia do mês civil do instante informado
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
