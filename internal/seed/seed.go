package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/logger"
	"github.com/mediconsult/platform/internal/model"
)

// Demo заполняет справочники специальностей, симптомов и весов.
// Идемпотентен: если специальности уже есть, ничего не делает.
func Demo(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Specialty{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count specialties: %w", err)
	}
	if count > 0 {
		log.Infow("seed skipped, specialties already present", "count", count)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		specialties := specialtyCatalogue()
		if err := tx.Create(&specialties).Error; err != nil {
			return fmt.Errorf("create specialties: %w", err)
		}
		specialtyByName := make(map[string]*model.Specialty, len(specialties))
		for i := range specialties {
			specialtyByName[specialties[i].Name] = &specialties[i]
		}

		symptoms := symptomCatalogue()
		if err := tx.Create(&symptoms).Error; err != nil {
			return fmt.Errorf("create symptoms: %w", err)
		}
		symptomByName := make(map[string]*model.Symptom, len(symptoms))
		for i := range symptoms {
			symptomByName[symptoms[i].Name] = &symptoms[i]
		}

		weights := make([]model.SymptomSpecialtyWeight, 0, len(weightCatalogue))
		for _, w := range weightCatalogue {
			symptom, ok := symptomByName[w.symptom]
			if !ok {
				return fmt.Errorf("unknown symptom in weight catalogue: %q", w.symptom)
			}
			specialty, ok := specialtyByName[w.specialty]
			if !ok {
				return fmt.Errorf("unknown specialty in weight catalogue: %q", w.specialty)
			}
			weights = append(weights, model.SymptomSpecialtyWeight{
				SymptomID:   symptom.ID,
				SpecialtyID: specialty.ID,
				Weight:      w.weight,
			})
		}
		if err := tx.Create(&weights).Error; err != nil {
			return fmt.Errorf("create weights: %w", err)
		}

		log.Infow("demo data seeded",
			"specialties", len(specialties),
			"symptoms", len(symptoms),
			"weights", len(weights),
		)
		return nil
	})
}

func specialtyCatalogue() []model.Specialty {
	return []model.Specialty{
		{Name: "Терапия", Description: "Общие консультации, диспансеризация, текущее наблюдение", Icon: "🏥"},
		{Name: "Кардиология", Description: "Болезни сердца и сосудов", Icon: "❤️"},
		{Name: "Педиатрия", Description: "Медицинская помощь детям и подросткам", Icon: "👶"},
		{Name: "Гинекология", Description: "Репродуктивное здоровье и ведение беременности", Icon: "🤰"},
		{Name: "Дерматология", Description: "Болезни кожи, волос и ногтей", Icon: "🧴"},
		{Name: "Офтальмология", Description: "Болезни глаз и нарушения зрения", Icon: "👁️"},
		{Name: "Оториноларингология", Description: "Уши, нос, горло", Icon: "👂"},
		{Name: "Неврология", Description: "Болезни нервной системы", Icon: "🧠"},
		{Name: "Пульмонология", Description: "Болезни лёгких и дыхательных путей", Icon: "🫁"},
		{Name: "Ортопедия", Description: "Болезни костей, суставов и мышц", Icon: "🦴"},
		{Name: "Стоматология", Description: "Лечение зубов и челюстно-лицевая хирургия", Icon: "🦷"},
		{Name: "Урология", Description: "Болезни мочевыделительной системы", Icon: "🔬"},
	}
}

func symptomCatalogue() []model.Symptom {
	return []model.Symptom{
		{Name: "Боль в груди", Category: "Боль", Description: "Боль или давление в грудной клетке"},
		{Name: "Учащённое сердцебиение", Category: "Сердечно-сосудистые", Description: "Нерегулярный или ускоренный ритм сердца"},
		{Name: "Одышка", Category: "Респираторные", Description: "Затруднённое дыхание, нехватка воздуха"},
		{Name: "Отёки ног", Category: "Сердечно-сосудистые", Description: "Отёчность нижних конечностей"},

		{Name: "Затяжной кашель", Category: "Респираторные", Description: "Кашель дольше трёх недель"},
		{Name: "Свистящее дыхание", Category: "Респираторные", Description: "Свист при дыхании"},
		{Name: "Кровохарканье", Category: "Респираторные", Description: "Примесь крови в мокроте"},

		{Name: "Сильные головные боли", Category: "Неврологические", Description: "Интенсивные и частые головные боли"},
		{Name: "Головокружение", Category: "Неврологические", Description: "Ощущение вращения или неустойчивости"},
		{Name: "Онемение конечностей", Category: "Неврологические", Description: "Потеря чувствительности в руках или ногах"},
		{Name: "Нарушения памяти", Category: "Неврологические", Description: "Трудности с запоминанием"},

		{Name: "Боль в животе", Category: "Пищеварение", Description: "Боли в области живота"},
		{Name: "Тошнота и рвота", Category: "Пищеварение", Description: "Позывы к рвоте или рвота"},
		{Name: "Хроническая диарея", Category: "Пищеварение", Description: "Частый жидкий стул"},

		{Name: "Температура у ребёнка", Category: "Лихорадка", Description: "Повышенная температура у ребёнка"},
		{Name: "Задержка роста", Category: "Педиатрические", Description: "Недостаточный рост у ребёнка"},
		{Name: "Сыпь у ребёнка", Category: "Педиатрические", Description: "Высыпания у ребёнка"},

		{Name: "Кожная сыпь", Category: "Кожа", Description: "Покраснения, высыпания или бляшки на коже"},
		{Name: "Кожный зуд", Category: "Кожа", Description: "Интенсивный зуд"},
		{Name: "Выпадение волос", Category: "Кожа", Description: "Аномальная потеря волос"},

		{Name: "Снижение зрения", Category: "Зрение", Description: "Ухудшение остроты зрения"},
		{Name: "Боль в глазу", Category: "Зрение", Description: "Боль в глазу или вокруг него"},
		{Name: "Двоение в глазах", Category: "Зрение", Description: "Диплопия"},

		{Name: "Боль в горле", Category: "ЛОР", Description: "Боль или раздражение в горле"},
		{Name: "Снижение слуха", Category: "ЛОР", Description: "Ухудшение слуха"},
		{Name: "Носовое кровотечение", Category: "ЛОР", Description: "Эпистаксис"},

		{Name: "Тазовая боль", Category: "Гинекологические", Description: "Боли внизу живота"},
		{Name: "Нерегулярный цикл", Category: "Гинекологические", Description: "Нарушения менструального цикла"},

		{Name: "Боль в суставах", Category: "Боль", Description: "Боли в суставах"},
		{Name: "Боль в спине", Category: "Боль", Description: "Боли в спине"},
		{Name: "Перелом или травма", Category: "Травма", Description: "Повреждение костей или мышц"},

		{Name: "Сильная усталость", Category: "Общие", Description: "Стойкое истощение"},
		{Name: "Температура", Category: "Лихорадка", Description: "Повышенная температура тела"},
		{Name: "Необъяснимая потеря веса", Category: "Общие", Description: "Похудение без видимой причины"},
	}
}

type weightRow struct {
	symptom   string
	specialty string
	weight    float64
}

// Вручную курируемая матрица весов симптом → специальность.
var weightCatalogue = []weightRow{
	{"Боль в груди", "Кардиология", 0.90},
	{"Боль в груди", "Пульмонология", 0.60},
	{"Боль в груди", "Терапия", 0.40},

	{"Учащённое сердцебиение", "Кардиология", 0.95},
	{"Учащённое сердцебиение", "Терапия", 0.30},

	{"Одышка", "Кардиология", 0.75},
	{"Одышка", "Пульмонология", 0.85},

	{"Отёки ног", "Кардиология", 0.80},
	{"Отёки ног", "Терапия", 0.40},

	{"Затяжной кашель", "Пульмонология", 0.90},
	{"Затяжной кашель", "Оториноларингология", 0.50},
	{"Затяжной кашель", "Терапия", 0.40},

	{"Свистящее дыхание", "Пульмонология", 0.95},
	{"Кровохарканье", "Пульмонология", 0.90},

	{"Сильные головные боли", "Неврология", 0.80},
	{"Сильные головные боли", "Офтальмология", 0.40},
	{"Сильные головные боли", "Терапия", 0.50},

	{"Головокружение", "Неврология", 0.75},
	{"Головокружение", "Оториноларингология", 0.70},

	{"Онемение конечностей", "Неврология", 0.90},
	{"Нарушения памяти", "Неврология", 0.85},

	{"Боль в животе", "Терапия", 0.60},
	{"Боль в животе", "Урология", 0.40},

	{"Тошнота и рвота", "Терапия", 0.60},
	{"Тошнота и рвота", "Гинекология", 0.40},

	{"Хроническая диарея", "Терапия", 0.70},

	{"Температура у ребёнка", "Педиатрия", 0.95},
	{"Температура у ребёнка", "Терапия", 0.30},

	{"Задержка роста", "Педиатрия", 0.95},

	{"Сыпь у ребёнка", "Педиатрия", 0.80},
	{"Сыпь у ребёнка", "Дерматология", 0.70},

	{"Кожная сыпь", "Дерматология", 0.95},
	{"Кожный зуд", "Дерматология", 0.90},
	{"Выпадение волос", "Дерматология", 0.85},

	{"Снижение зрения", "Офтальмология", 0.95},
	{"Боль в глазу", "Офтальмология", 0.95},

	{"Двоение в глазах", "Офтальмология", 0.85},
	{"Двоение в глазах", "Неврология", 0.60},

	{"Боль в горле", "Оториноларингология", 0.90},
	{"Боль в горле", "Терапия", 0.50},

	{"Снижение слуха", "Оториноларингология", 0.95},
	{"Носовое кровотечение", "Оториноларингология", 0.85},

	{"Тазовая боль", "Гинекология", 0.90},
	{"Тазовая боль", "Урология", 0.50},

	{"Нерегулярный цикл", "Гинекология", 0.95},

	{"Боль в суставах", "Ортопедия", 0.90},
	{"Боль в суставах", "Терапия", 0.40},

	{"Боль в спине", "Ортопедия", 0.85},
	{"Боль в спине", "Терапия", 0.50},

	{"Перелом или травма", "Ортопедия", 0.95},

	{"Сильная усталость", "Терапия", 0.70},
	{"Сильная усталость", "Кардиология", 0.40},

	{"Температура", "Терапия", 0.80},
	{"Необъяснимая потеря веса", "Терапия", 0.70},
}
