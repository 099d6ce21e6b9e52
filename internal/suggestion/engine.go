package suggestion

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
)

// Количество подсказок по умолчанию.
const DefaultTopN = 3

// WeightSource — источник весовых записей symptom → specialty.
type WeightSource interface {
	ListBySymptoms(ctx context.Context, symptomIDs []uuid.UUID) ([]model.SymptomSpecialtyWeight, error)
}

// SpecialtySource резолвит specialty_id в карточку специальности.
// Возвращает nil, nil, если специальности нет.
type SpecialtySource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Specialty, error)
}

// Result — одна подсказка специальности для набора симптомов.
type Result struct {
	Specialty             *model.Specialty `json:"specialty"`
	Score                 float64          `json:"score"`
	Percentage            float64          `json:"percentage"`
	MatchedSymptoms       int              `json:"matched_symptoms"`
	TotalSymptomsSelected int              `json:"total_symptoms_selected"`
}

// Best — лучшая подсказка; именно она сохраняется в анкете преконсультации.
type Best struct {
	SpecialtyID     uuid.UUID `json:"specialty_id"`
	ConfidenceScore float64   `json:"confidence_score"`
}

// Engine считает ранжированные подсказки специальностей по выбранным
// симптомам. Чистая синхронная функция над снимком данных: состояния
// не держит, безопасна для конкурентных вызовов.
type Engine struct {
	weights     WeightSource
	specialties SpecialtySource
}

func NewEngine(weights WeightSource, specialties SpecialtySource) *Engine {
	return &Engine{
		weights:     weights,
		specialties: specialties,
	}
}

// внутренний аккумулятор по специальности; суммы держим в сотых долях,
// чтобы не ловить дрейф плавающей точки
type candidate struct {
	specialtyID uuid.UUID
	totalCenti  int64
	matched     int
}

// Suggest возвращает до topN специальностей, отранжированных по score.
//
// Формула: score(S) = min(Σ weight(symptom, S) / |symptoms|, 1.0).
//
// Кандидаты сначала ранжируются по сырой сумме весов и усекаются до topN,
// и только потом нормализуются — порядок «усечь, затем пересчитать»
// намеренный: при клампе к 1.0 он сохраняет приоритет большей суммы.
// Пустой набор симптомов и отсутствие совпадений — пустой результат,
// не ошибка. Неизвестные симптомы дают нулевой вклад.
func (e *Engine) Suggest(ctx context.Context, symptomIDs []uuid.UUID, topN int) ([]Result, error) {
	symptomIDs = dedupe(symptomIDs)
	if len(symptomIDs) == 0 {
		return []Result{}, nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	rows, err := e.weights.ListBySymptoms(ctx, symptomIDs)
	if err != nil {
		return nil, err
	}

	// Агрегируем по специальности в порядке первого появления.
	index := make(map[uuid.UUID]*candidate)
	candidates := make([]*candidate, 0)

	for _, row := range rows {
		w := clampCenti(row.Weight)
		c := index[row.SpecialtyID]
		if c == nil {
			c = &candidate{specialtyID: row.SpecialtyID}
			index[row.SpecialtyID] = c
			candidates = append(candidates, c)
		}
		c.totalCenti += w
		if w > 0 {
			c.matched++
		}
	}

	// Ранжирование до нормализации: по сумме весов, при равенстве —
	// порядок первого появления.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].totalCenti > candidates[j].totalCenti
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	n := int64(len(symptomIDs))
	results := make([]Result, 0, len(candidates))

	for _, c := range candidates {
		specialty, err := e.specialties.GetByID(ctx, c.specialtyID)
		if err != nil {
			return nil, err
		}
		if specialty == nil {
			// вес без справочной записи пропускаем, как и оригинал
			continue
		}

		// score в десятитысячных: totalCenti/100/n * 10^4.
		score4 := roundDiv(c.totalCenti*100, n)
		if score4 > 10000 {
			score4 = 10000
		}
		percTenths := roundDiv(score4, 10)

		results = append(results, Result{
			Specialty:             specialty,
			Score:                 float64(score4) / 10000,
			Percentage:            float64(percTenths) / 10,
			MatchedSymptoms:       c.matched,
			TotalSymptomsSelected: int(n),
		})
	}

	// Финальная сортировка по score; стабильная, ничьи сохраняют
	// порядок усечения.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// BestSuggestion возвращает лучшую подсказку или nil, nil, если ни одна
// специальность не совпала.
func (e *Engine) BestSuggestion(ctx context.Context, symptomIDs []uuid.UUID) (*Best, error) {
	results, err := e.Suggest(ctx, symptomIDs, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &Best{
		SpecialtyID:     results[0].Specialty.ID,
		ConfidenceScore: results[0].Percentage,
	}, nil
}

// clampCenti переводит вес в сотые доли, зажимая в [0, 1] —
// даже если в хранилище оказалось значение вне диапазона.
func clampCenti(w float64) int64 {
	c := int64(math.Round(w * 100))
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// roundDiv делит неотрицательные величины с округлением половины вверх
// (для неотрицательных это и есть «half away from zero»).
func roundDiv(a, b int64) int64 {
	return (a + b/2) / b
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
