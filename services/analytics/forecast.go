package analytics

import "sort"

// MinUsagesForForecast est le nombre minimal d'enregistrements bruts sur
// 30 jours en dessous duquel aucune prévision n'est produite.
const MinUsagesForForecast = 7

// ForecastPoint est une prévision journalière pour la semaine à venir.
type ForecastPoint struct {
	Date       string  `json:"date"`
	DayName    string  `json:"day_name"`
	Prediction float64 `json:"prediction"`
}

// PredictNextWeek extrapole la consommation des 7 prochains jours par
// régression linéaire sur les totaux journaliers des 30 derniers jours.
// Retourne nil (pas d'erreur) quand les données sont insuffisantes.
//
// L'axe x est l'indice séquentiel des jours observés : les jours sans
// utilisation sont compressés, alors que les dates produites restent
// calendaires. Ce comportement historique est conservé volontairement.
func (s *Service) PredictNextWeek(userID uint) ([]ForecastPoint, error) {
	today := s.Now()
	monthAgo := today.AddDate(0, 0, -30)

	usages, err := s.store.UsagesByUserSince(userID, monthAgo)
	if err != nil {
		return nil, err
	}

	if len(usages) < MinUsagesForForecast {
		return nil, nil
	}

	daily := make(map[string]float64)
	for _, u := range usages {
		daily[u.Date.Format(dayLayout)] += u.ConsommationKWh
	}

	days := make([]string, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Strings(days)

	xs := make([]float64, len(days))
	ys := make([]float64, len(days))
	for i, d := range days {
		xs[i] = float64(i)
		ys[i] = daily[d]
	}

	slope, intercept := leastSquares(xs, ys)

	result := make([]ForecastPoint, 0, 7)
	for i := 0; i < 7; i++ {
		x := float64(len(days) + i)
		pred := slope*x + intercept
		if pred < 0 {
			pred = 0
		}
		future := today.AddDate(0, 0, i+1)
		result = append(result, ForecastPoint{
			Date:       future.Format(dayLayout),
			DayName:    future.Format("Mon"),
			Prediction: round2(pred),
		})
	}

	return result, nil
}
