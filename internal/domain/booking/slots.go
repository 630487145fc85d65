package booking

import (
	"time"

	"barber-booking/internal/models"
)

// SlotsPerDay is the size of the batch provisioned when a barber
// profile is created: one-hour windows for hours 00–11 UTC.
const SlotsPerDay = 12

// GenerateDaySlots builds the deterministic slot batch for the given
// day. Every slot is hour-aligned in UTC with start < end.
func GenerateDaySlots(barberProfileID uint, day time.Time) []models.Slot {
	day = day.UTC()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]models.Slot, 0, SlotsPerDay)
	for hour := 0; hour < SlotsPerDay; hour++ {
		start := midnight.Add(time.Duration(hour) * time.Hour)
		slots = append(slots, models.Slot{
			BarberProfileID: barberProfileID,
			StartTime:       start,
			EndTime:         start.Add(time.Hour),
		})
	}

	return slots
}
