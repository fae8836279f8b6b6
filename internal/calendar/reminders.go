// Package calendar exports reminded events as an iCalendar feed so they
// can be added to a personal calendar.
package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// ProductID identifies the generator in the VCALENDAR header.
const ProductID = "-//eventboard//reminders//EN"

// AlarmLead is how long before an event starts the reminder alarm fires.
const AlarmLead = 30 * time.Minute

// UID returns the stable iCalendar UID of an event.
func UID(eventID int, host string) string {
	return fmt.Sprintf("event-%d@%s", eventID, host)
}

// Reminders builds a calendar with one VEVENT per event. stamp is used for
// DTSTAMP so output is reproducible for a given instant.
func Reminders(events []models.Event, host string, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetName("Event reminders")

	for _, e := range events {
		ve := cal.AddEvent(UID(e.ID, host))
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetSummary(e.Title)
		ve.SetLocation(e.Location)
		ve.SetDescription(e.Description)
		if e.RegistrationURL != "" {
			ve.SetURL(e.RegistrationURL)
		}
		ve.SetProperty(ical.ComponentPropertyCategories, string(e.Category))

		alarm := ve.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", int(AlarmLead.Minutes())))
		alarm.SetProperty(ical.ComponentPropertyDescription, e.Title)
	}
	return cal
}

// Serialize renders events as an .ics document.
func Serialize(events []models.Event, host string, stamp time.Time) string {
	return Reminders(events, host, stamp).Serialize()
}
