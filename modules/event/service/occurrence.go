package service

import (
	"time"

	"community-api/modules/event/entity"

	"github.com/teambition/rrule-go"
)

// maxOccurrences caps expansion so an unbounded daily rule cannot return
// thousands of rows.
const maxOccurrences = 100

// ExpandOccurrences lists the concrete dates an event happens within
// [from, until]. A non-recurring event yields at most its own start date;
// recurring events are expanded from their recurrence rule, stopping at the
// recurrence end date when one is set.
func ExpandOccurrences(ev *entity.Event, from, until time.Time) ([]entity.Occurrence, error) {
	var duration time.Duration
	if ev.EndDate != nil {
		duration = ev.EndDate.Sub(ev.StartDate)
	}

	if !ev.IsRecurring || ev.RecurrenceType == entity.RecurrenceNone {
		if ev.StartDate.Before(from) || ev.StartDate.After(until) {
			return []entity.Occurrence{}, nil
		}
		return []entity.Occurrence{makeOccurrence(ev, ev.StartDate, duration)}, nil
	}

	freq, ok := recurrenceFreq(ev.RecurrenceType)
	if !ok {
		return []entity.Occurrence{makeOccurrence(ev, ev.StartDate, duration)}, nil
	}

	interval := 1
	if ev.RecurrenceInterval != nil && *ev.RecurrenceInterval > 0 {
		interval = *ev.RecurrenceInterval
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  ev.StartDate.UTC(),
		Count:    maxOccurrences,
	}
	if ev.RecurrenceEndDate != nil {
		opt.Until = ev.RecurrenceEndDate.UTC()
		opt.Count = 0
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	starts := rule.Between(from.UTC(), until.UTC(), true)
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
	}

	out := make([]entity.Occurrence, 0, len(starts))
	for _, start := range starts {
		out = append(out, makeOccurrence(ev, start, duration))
	}
	return out, nil
}

func recurrenceFreq(t entity.RecurrenceType) (rrule.Frequency, bool) {
	switch t {
	case entity.RecurrenceDaily:
		return rrule.DAILY, true
	case entity.RecurrenceWeekly:
		return rrule.WEEKLY, true
	case entity.RecurrenceMonthly:
		return rrule.MONTHLY, true
	case entity.RecurrenceYearly:
		return rrule.YEARLY, true
	}
	return 0, false
}

func makeOccurrence(ev *entity.Event, start time.Time, duration time.Duration) entity.Occurrence {
	occ := entity.Occurrence{EventID: ev.ID, StartDate: start}
	if duration > 0 {
		end := start.Add(duration)
		occ.EndDate = &end
	}
	return occ
}
