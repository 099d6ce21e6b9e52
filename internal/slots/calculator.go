package slots

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
)

// Длительность слота фиксированная.
const SlotDuration = 30 * time.Minute

var ErrBadTimeOfDay = errors.New("schedule time must be HH:MM")

// ScheduleSource отдаёт недельный шаблон врача на день недели
// (nil, nil — врач в этот день не работает).
type ScheduleSource interface {
	GetForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek int) (*model.Schedule, error)
}

// AppointmentSource отвечает, занят ли точный момент активной записью.
type AppointmentSource interface {
	ExistsActive(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
}

// Slot — один кандидатный интервал приёма на конкретную дату.
type Slot struct {
	Time      string    `json:"time"`
	DateTime  time.Time `json:"datetime"`
	Available bool      `json:"available"`
}

// Calculator разворачивает недельный шаблон врача в слоты на дату и
// помечает занятые. Снимок, не резервация: гарантия «не более одной
// активной записи на момент» обеспечивается уникальным индексом в БД.
type Calculator struct {
	schedules    ScheduleSource
	appointments AppointmentSource
}

func NewCalculator(schedules ScheduleSource, appointments AppointmentSource) *Calculator {
	return &Calculator{
		schedules:    schedules,
		appointments: appointments,
	}
}

// AvailableSlots возвращает слоты врача на дату в хронологическом
// порядке. Нет шаблона на этот день недели — пустой список, не ошибка.
//
// Слоты генерируются с шагом 30 минут, пока начало слота строго раньше
// конца окна: при окне до 17:00 слот 16:45 ещё попадает в выдачу, хотя
// номинально выходит за край. Проверка именно по началу — поведение
// источника, сохранено сознательно.
func (c *Calculator) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]Slot, error) {
	dayOfWeek := int(date.Weekday()) // 0=воскресенье..6=суббота

	tpl, err := c.schedules.GetForDay(ctx, doctorID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return []Slot{}, nil
	}

	start, err := atTimeOfDay(date, tpl.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := atTimeOfDay(date, tpl.EndTime)
	if err != nil {
		return nil, err
	}

	result := make([]Slot, 0)
	for t := start; t.Before(end); t = t.Add(SlotDuration) {
		taken, err := c.appointments.ExistsActive(ctx, doctorID, t)
		if err != nil {
			return nil, err
		}
		result = append(result, Slot{
			Time:      t.Format("15:04"),
			DateTime:  t,
			Available: !taken,
		})
	}

	return result, nil
}

// atTimeOfDay совмещает дату и время вида "HH:MM" (хвост ":SS" отрезается).
func atTimeOfDay(date time.Time, hhmm string) (time.Time, error) {
	if len(hhmm) < 5 {
		return time.Time{}, ErrBadTimeOfDay
	}
	tod, err := time.Parse("15:04", hhmm[:5])
	if err != nil {
		return time.Time{}, ErrBadTimeOfDay
	}

	year, month, day := date.Date()
	return time.Date(year, month, day, tod.Hour(), tod.Minute(), 0, 0, date.Location()), nil
}
