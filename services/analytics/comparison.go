package analytics

import (
	"math"
	"time"
)

// CostPerKWh est le tarif unitaire utilisé pour estimer le coût mensuel.
const CostPerKWh = 150

// MonthEntry est un mois de la série de comparaison.
type MonthEntry struct {
	Month        string  `json:"month"`
	MonthShort   string  `json:"month_short"`
	Consommation float64 `json:"consommation"`
	Cout         float64 `json:"cout"`
}

// ComparisonStats résume le mois courant face au mois précédent.
type ComparisonStats struct {
	CurrentMonth   float64 `json:"current_month"`
	LastMonth      float64 `json:"last_month"`
	Difference     float64 `json:"difference"`
	AverageMonthly float64 `json:"average_monthly"`
	Trend          string  `json:"trend"`
}

// MonthlyComparison retourne la consommation et le coût estimé des N
// derniers mois, du plus ancien au plus récent. Les mois sont ancrés en
// reculant par pas de 30 jours puis en se calant sur le 1er : c'est une
// approximation calendaire assumée.
func (s *Service) MonthlyComparison(userID uint, months int) ([]MonthEntry, error) {
	today := s.Now()
	result := make([]MonthEntry, 0, months)

	for i := 0; i < months; i++ {
		anchor := today.AddDate(0, 0, -30*i)
		monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		usages, err := s.store.UsagesByUserBetween(userID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		var total float64
		for _, u := range usages {
			total += u.ConsommationKWh
		}

		result = append(result, MonthEntry{
			Month:        monthStart.Format("January 2006"),
			MonthShort:   monthStart.Format("Jan 2006"),
			Consommation: round2(total),
			Cout:         math.Round(total * CostPerKWh),
		})
	}

	// Inverser pour aller du plus ancien au plus récent
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return result, nil
}

// GetComparisonStats compare le mois courant au mois précédent : totaux,
// écart en pourcentage (0 quand le mois précédent est vide), tendance, et
// moyenne mensuelle approchée par total des 180 derniers jours divisé par 6.
func (s *Service) GetComparisonStats(userID uint) (*ComparisonStats, error) {
	today := s.Now()

	currentStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	currentUsages, err := s.store.UsagesByUserSince(userID, currentStart)
	if err != nil {
		return nil, err
	}
	var currentTotal float64
	for _, u := range currentUsages {
		currentTotal += u.ConsommationKWh
	}

	lastStart := currentStart.AddDate(0, -1, 0)
	lastUsages, err := s.store.UsagesByUserBetween(userID, lastStart, currentStart.Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}
	var lastTotal float64
	for _, u := range lastUsages {
		lastTotal += u.ConsommationKWh
	}

	var difference float64
	if lastTotal > 0 {
		difference = (currentTotal - lastTotal) / lastTotal * 100
	}

	sixMonthsAgo := today.AddDate(0, 0, -180)
	allUsages, err := s.store.UsagesByUserSince(userID, sixMonthsAgo)
	if err != nil {
		return nil, err
	}
	var averageMonthly float64
	if len(allUsages) > 0 {
		var total float64
		for _, u := range allUsages {
			total += u.ConsommationKWh
		}
		averageMonthly = total / 6
	}

	trend := "stable"
	switch {
	case difference > 0:
		trend = "up"
	case difference < 0:
		trend = "down"
	}

	return &ComparisonStats{
		CurrentMonth:   round2(currentTotal),
		LastMonth:      round2(lastTotal),
		Difference:     round1(difference),
		AverageMonthly: round2(averageMonthly),
		Trend:          trend,
	}, nil
}
