package notification

import (
	"time"

	eventEntity "community-api/modules/event/entity"

	ics "github.com/arran4/golang-ical"
)

// buildICS renders an event as an iCalendar invite for the confirmation
// email attachment.
func buildICS(ev *eventEntity.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId("-//Community Events//EN")

	ve := cal.AddEvent(ev.ID.String())
	ve.SetCreatedTime(time.Now().UTC())
	ve.SetDtStampTime(time.Now().UTC())
	ve.SetSummary(ev.Title)
	ve.SetLocation(ev.Location)
	ve.SetStartAt(ev.StartDate.UTC())
	if ev.EndDate != nil {
		ve.SetEndAt(ev.EndDate.UTC())
	} else {
		ve.SetEndAt(ev.StartDate.Add(2 * time.Hour).UTC())
	}
	if ev.Description != nil {
		ve.SetDescription(*ev.Description)
	}
	ve.SetOrganizer(ev.HostEmail, ics.WithCN(ev.HostName))

	return cal.Serialize()
}
