package analytics

import (
	"fmt"
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

// DailyPoint est une entrée de la série des 7 derniers jours.
type DailyPoint struct {
	Date         string  `json:"date"`
	DayName      string  `json:"day_name"`
	Consommation float64 `json:"consommation"`
}

// WeekPoint est une entrée de la série hebdomadaire du mois courant.
type WeekPoint struct {
	Week         string  `json:"week"`
	Consommation float64 `json:"consommation"`
}

// EquipmentShare est une part de la répartition par équipement.
type EquipmentShare struct {
	Name         string  `json:"name"`
	Consommation float64 `json:"consommation"`
}

// WeeklyData retourne la consommation des 7 derniers jours, groupée par
// jour calendaire. Les jours sans utilisation valent zéro : la série fait
// toujours exactement 7 entrées, du plus ancien à aujourd'hui.
func (s *Service) WeeklyData(userID uint) ([]DailyPoint, error) {
	today := s.Now()
	weekAgo := today.AddDate(0, 0, -7)

	usages, err := s.store.UsagesByUserSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}

	daily := make(map[string]float64)
	for _, u := range usages {
		daily[u.Date.Format(dayLayout)] += u.ConsommationKWh
	}

	result := make([]DailyPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -(6 - i))
		key := day.Format(dayLayout)
		result = append(result, DailyPoint{
			Date:         key,
			DayName:      day.Format("Mon"),
			Consommation: round2(daily[key]),
		})
	}

	return result, nil
}

// MonthlyData groupe la consommation du mois courant par numéro de semaine
// ISO. En bordure d'année une semaine 52/53 peut côtoyer une semaine 1 ;
// le tri numérique est conservé tel quel.
func (s *Service) MonthlyData(userID uint) ([]WeekPoint, error) {
	today := s.Now()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	usages, err := s.store.UsagesByUserSince(userID, monthStart)
	if err != nil {
		return nil, err
	}

	weekly := make(map[int]float64)
	for _, u := range usages {
		_, week := u.Date.ISOWeek()
		weekly[week] += u.ConsommationKWh
	}

	weeks := make([]int, 0, len(weekly))
	for w := range weekly {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	result := make([]WeekPoint, 0, len(weeks))
	for _, w := range weeks {
		result = append(result, WeekPoint{
			Week:         fmt.Sprintf("Semaine %d", w),
			Consommation: round2(weekly[w]),
		})
	}

	return result, nil
}

// EquipmentBreakdown totalise la consommation par équipement sur tout
// l'historique, triée par consommation décroissante, limitée au top 10.
// À totaux égaux, l'ordre de première rencontre est conservé.
func (s *Service) EquipmentBreakdown(userID uint) ([]EquipmentShare, error) {
	usages, err := s.store.UsagesByUser(userID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, u := range usages {
		name := u.Equipment.Name
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += u.ConsommationKWh
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}

	result := make([]EquipmentShare, 0, len(order))
	for _, name := range order {
		result = append(result, EquipmentShare{
			Name:         name,
			Consommation: round2(totals[name]),
		})
	}

	return result, nil
}
