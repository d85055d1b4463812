package services

import (
	"fmt"
	"time"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/helpers"
)

// CalendarWeekdays head the calendar columns, Sunday first.
var CalendarWeekdays = []string{"S", "M", "T", "W", "T", "F", "S"}

const monthLayout = "2006-01"

// firstOfMonth truncates t to midnight on the first of its month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// parseMonth reads a YYYY-MM month parameter.
func parseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(monthLayout, s, loc)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("Invalid month %q, expected YYYY-MM", s))
	}
	return t, nil
}

// moveMonth applies a month parameter to the month currently shown:
// "" keeps it, "today" returns to now, "prev" and "next" step by one and
// anything else must be a YYYY-MM month.
func moveMonth(current time.Time, param string, now time.Time) (time.Time, error) {
	switch param {
	case "":
		return current, nil
	case "today":
		return firstOfMonth(now), nil
	case "prev":
		return current.AddDate(0, -1, 0), nil
	case "next":
		return current.AddDate(0, 1, 0), nil
	}
	return parseMonth(param, now.Location())
}

// BuildCalendarMonth lays out month as a Sunday-first grid. Blank cells
// pad the first week; each day carries the events dated on it.
func BuildCalendarMonth(month, now time.Time, events []models.CalendarEvent) models.CalendarMonth {
	first := firstOfMonth(month)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDate := make(map[string][]models.CalendarEvent)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	cal := models.CalendarMonth{
		Year:     first.Year(),
		Month:    int(first.Month()),
		Title:    first.Format("January 2006"),
		Prev:     first.AddDate(0, -1, 0).Format(monthLayout),
		Next:     first.AddDate(0, 1, 0).Format(monthLayout),
		Weekdays: CalendarWeekdays,
	}
	for i := 0; i < int(first.Weekday()); i++ {
		cal.Days = append(cal.Days, models.CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
		iso := date.Format(helpers.ISODateLayout)
		cal.Days = append(cal.Days, models.CalendarDay{
			Day:    day,
			Date:   iso,
			Today:  day == now.Day() && date.Month() == now.Month() && date.Year() == now.Year(),
			Events: byDate[iso],
		})
	}
	return cal
}
