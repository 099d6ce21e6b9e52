package suggestion

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
)

type fakeWeights struct {
	rows []model.SymptomSpecialtyWeight
}

func (f *fakeWeights) ListBySymptoms(_ context.Context, symptomIDs []uuid.UUID) ([]model.SymptomSpecialtyWeight, error) {
	wanted := make(map[uuid.UUID]struct{}, len(symptomIDs))
	for _, id := range symptomIDs {
		wanted[id] = struct{}{}
	}
	var out []model.SymptomSpecialtyWeight
	for _, row := range f.rows {
		if _, ok := wanted[row.SymptomID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeSpecialties struct {
	byID map[uuid.UUID]*model.Specialty
}

func (f *fakeSpecialties) GetByID(_ context.Context, id uuid.UUID) (*model.Specialty, error) {
	return f.byID[id], nil
}

func newTestEngine(rows []model.SymptomSpecialtyWeight, specialtyIDs ...uuid.UUID) *Engine {
	byID := make(map[uuid.UUID]*model.Specialty, len(specialtyIDs))
	for _, id := range specialtyIDs {
		byID[id] = &model.Specialty{ID: id, Name: id.String()}
	}
	return NewEngine(&fakeWeights{rows: rows}, &fakeSpecialties{byID: byID})
}

func weight(symptomID, specialtyID uuid.UUID, w float64) model.SymptomSpecialtyWeight {
	return model.SymptomSpecialtyWeight{SymptomID: symptomID, SpecialtyID: specialtyID, Weight: w}
}

func TestSuggest_SingleSymptom(t *testing.T) {
	symptom := uuid.New()
	cardiology := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(symptom, cardiology, 0.90)},
		cardiology,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{symptom}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Score != 0.90 {
		t.Fatalf("expected score 0.90, got %v", r.Score)
	}
	if r.Percentage != 90.0 {
		t.Fatalf("expected percentage 90.0, got %v", r.Percentage)
	}
	if r.MatchedSymptoms != 1 || r.TotalSymptomsSelected != 1 {
		t.Fatalf("unexpected counters: matched=%d total=%d", r.MatchedSymptoms, r.TotalSymptomsSelected)
	}
}

func TestSuggest_TwoSymptomsSameSpecialty(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	cardiology := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{
			weight(s1, cardiology, 0.90),
			weight(s2, cardiology, 0.60),
		},
		cardiology,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{s1, s2}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	// (0.90 + 0.60) / 2 = 0.75
	if results[0].Score != 0.75 {
		t.Fatalf("expected score 0.75, got %v", results[0].Score)
	}
	if results[0].Percentage != 75.0 {
		t.Fatalf("expected percentage 75.0, got %v", results[0].Percentage)
	}
	if results[0].MatchedSymptoms != 2 {
		t.Fatalf("expected matched 2, got %d", results[0].MatchedSymptoms)
	}
}

func TestSuggest_EmptyInput(t *testing.T) {
	e := newTestEngine(nil)

	results, err := e.Suggest(context.Background(), nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestSuggest_NoMatch(t *testing.T) {
	e := newTestEngine(nil)

	results, err := e.Suggest(context.Background(), []uuid.UUID{uuid.New(), uuid.New()}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestSuggest_UnknownSymptomContributesZero(t *testing.T) {
	known, unknown := uuid.New(), uuid.New()
	dermatology := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(known, dermatology, 0.80)},
		dermatology,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{known, unknown}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	// 0.80 / 2 = 0.40: неизвестный симптом входит в знаменатель
	if results[0].Score != 0.40 {
		t.Fatalf("expected score 0.40, got %v", results[0].Score)
	}
	if results[0].MatchedSymptoms != 1 {
		t.Fatalf("expected matched 1, got %d", results[0].MatchedSymptoms)
	}
}

func TestSuggest_TopNLimit(t *testing.T) {
	symptom := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{
			weight(symptom, a, 0.90),
			weight(symptom, b, 0.60),
			weight(symptom, c, 0.40),
		},
		a, b, c,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{symptom}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Specialty.ID != a || results[1].Specialty.ID != b {
		t.Fatalf("unexpected ranking: %v, %v", results[0].Specialty.ID, results[1].Specialty.ID)
	}
	if results[0].Score < results[1].Score {
		t.Fatalf("results not sorted by score desc")
	}
}

// Усечение до нормализации: кандидаты режутся по сырой сумме весов,
// специальность с большей суммой переживает cut независимо от того,
// что нормализация дальше сделает со значениями.
func TestSuggest_TruncateBeforeNormalize(t *testing.T) {
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	a, b := uuid.New(), uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{
			weight(s1, a, 0.90),
			weight(s2, a, 0.90),
			weight(s1, b, 0.80),
			weight(s2, b, 0.80),
			weight(s3, b, 0.80),
		},
		a, b,
	)

	// выбраны s1, s2: суммы A=1.80, B=1.60 → усечение до 1 оставляет A
	results, err := e.Suggest(context.Background(), []uuid.UUID{s1, s2}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Specialty.ID != a {
		t.Fatalf("expected specialty A to survive the cut")
	}
	// 1.80 / 2 = 0.90, без клампа
	if results[0].Score != 0.90 {
		t.Fatalf("expected score 0.90, got %v", results[0].Score)
	}
}

func TestSuggest_ScoreClampedToOne(t *testing.T) {
	symptom := uuid.New()
	a := uuid.New()

	// вес вне диапазона хранилища зажимается к 1.0 до суммирования
	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(symptom, a, 1.50)},
		a,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{symptom}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Score != 1.0 {
		t.Fatalf("expected clamped score 1.0, got %v", results[0].Score)
	}
	if results[0].Percentage != 100.0 {
		t.Fatalf("expected percentage 100.0, got %v", results[0].Percentage)
	}
}

func TestSuggest_NegativeWeightClampedToZero(t *testing.T) {
	symptom := uuid.New()
	a := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(symptom, a, -0.30)},
		a,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{symptom}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Score != 0 {
		t.Fatalf("expected score 0, got %v", results[0].Score)
	}
	if results[0].MatchedSymptoms != 0 {
		t.Fatalf("expected matched 0, got %d", results[0].MatchedSymptoms)
	}
}

func TestSuggest_Rounding(t *testing.T) {
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	a := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(s1, a, 0.50)},
		a,
	)

	// 0.50 / 3 = 0.16666... → 0.1667 (4 знака), 16.7% (1 знак)
	results, err := e.Suggest(context.Background(), []uuid.UUID{s1, s2, s3}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Score != 0.1667 {
		t.Fatalf("expected score 0.1667, got %v", results[0].Score)
	}
	if results[0].Percentage != 16.7 {
		t.Fatalf("expected percentage 16.7, got %v", results[0].Percentage)
	}
}

func TestSuggest_PercentageInRange(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	a, b := uuid.New(), uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{
			weight(s1, a, 0.95),
			weight(s2, a, 0.95),
			weight(s1, b, 0.05),
		},
		a, b,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{s1, s2}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range results {
		if r.Percentage < 0 || r.Percentage > 100 {
			t.Fatalf("percentage out of range: %v", r.Percentage)
		}
	}
}

func TestSuggest_DuplicateSymptomIDs(t *testing.T) {
	symptom := uuid.New()
	a := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(symptom, a, 0.80)},
		a,
	)

	// дубликаты схлопываются: знаменатель 1, не 3
	results, err := e.Suggest(context.Background(), []uuid.UUID{symptom, symptom, symptom}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Score != 0.80 {
		t.Fatalf("expected score 0.80, got %v", results[0].Score)
	}
	if results[0].TotalSymptomsSelected != 1 {
		t.Fatalf("expected total 1, got %d", results[0].TotalSymptomsSelected)
	}
}

func TestSuggest_MissingSpecialtySkipped(t *testing.T) {
	symptom := uuid.New()
	known, orphan := uuid.New(), uuid.New()

	// для orphan нет справочной записи
	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{
			weight(symptom, orphan, 0.95),
			weight(symptom, known, 0.60),
		},
		known,
	)

	results, err := e.Suggest(context.Background(), []uuid.UUID{symptom}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Specialty.ID != known {
		t.Fatalf("expected known specialty, got %v", results[0].Specialty.ID)
	}
}

func TestBestSuggestion(t *testing.T) {
	symptom := uuid.New()
	cardiology := uuid.New()

	e := newTestEngine(
		[]model.SymptomSpecialtyWeight{weight(symptom, cardiology, 0.90)},
		cardiology,
	)

	best, err := e.BestSuggestion(context.Background(), []uuid.UUID{symptom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best == nil {
		t.Fatalf("expected a suggestion")
	}
	if best.SpecialtyID != cardiology {
		t.Fatalf("unexpected specialty: %v", best.SpecialtyID)
	}
	if best.ConfidenceScore != 90.0 {
		t.Fatalf("expected confidence 90.0, got %v", best.ConfidenceScore)
	}
}

func TestBestSuggestion_None(t *testing.T) {
	e := newTestEngine(nil)

	best, err := e.BestSuggestion(context.Background(), []uuid.UUID{uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best != nil {
		t.Fatalf("expected nil, got %+v", best)
	}
}
