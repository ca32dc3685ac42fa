package exporter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"roomctl/pkg/roommeta"
	"roomctl/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// slotLength is the width of one timetable column.
const slotLength = 30 * time.Minute

// GenerateICS writes the occupied slots of one day's schedule as a calendar.
// Consecutive slots sharing an occupant label are merged into a single
// event, so a 90 minute lecture over three columns becomes one entry.
func GenerateICS(meta roommeta.RoomMeta, date int, schedule []timetable.SlotStatus, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for Korea
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	day := time.Date(date/10000, time.Month(date/100%100), date%100, 0, 0, 0, 0, loc)

	location := meta.Building
	if meta.RoomNumber != "" {
		location = fmt.Sprintf("%s %s", meta.Building, meta.RoomNumber)
	}

	seq := 0
	for i := 0; i < len(schedule); {
		s := schedule[i]
		if s.Available {
			i++
			continue
		}

		start, err := slotStart(day, s.Time)
		if err != nil {
			i++
			continue // Skip malformed slot times
		}

		// Extend across adjacent slots with the same occupant.
		run := 1
		for i+run < len(schedule) && !schedule[i+run].Available && schedule[i+run].Label == s.Label {
			run++
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", start.UTC().Format("20060102T150405Z"), seq))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Duration(run) * slotLength))
		event.SetSummary(s.Label)
		event.SetLocation(location)

		seq++
		i += run
	}

	return cal.SerializeTo(w)
}

// slotStart combines a day with a "HH:MM" slot time.
func slotStart(day time.Time, hhmm string) (time.Time, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return time.Time{}, fmt.Errorf("malformed slot time %q", hhmm)
	}
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return time.Time{}, err
	}
	minute, err := strconv.Atoi(hhmm[3:])
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}
