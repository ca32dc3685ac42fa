package timetable

import (
	"fmt"
	"sort"
)

// Cell is one half-hour booking slot for one date, resolved at load time.
// Label keeps the raw cell value, untrimmed, exactly as the export had it.
type Cell struct {
	Occupied bool
	Label    string
}

// Row holds the bookings of a single usage date.
type Row struct {
	Date      int // YYYYMMDD
	DayOfWeek string
	Cells     []Cell // parallel to Timetable.slots
}

// Timetable is the in-memory form of one converted room export: a fixed,
// sorted set of half-hour slots and one row per usage date. It is built once
// by Load and read-only afterwards.
type Timetable struct {
	slots []string // slot column headers, "HH:MM~", sorted ascending
	rows  map[int]*Row
	dates []int // sorted ascending, deduplicated
}

// SlotStatus is the availability of one slot, identified by its "HH:MM"
// start time.
type SlotStatus struct {
	Time      string
	Available bool
	Label     string
}

// Status is the answer to a point-in-time query.
type Status struct {
	Available bool
	Label     string
	DayOfWeek string
}

// NoDateError reports a query for a date the table has no row for. Dates
// carries the full list of dates the table does cover so the caller can
// retry with one of them.
type NoDateError struct {
	Date  int
	Dates []int
}

func (e *NoDateError) Error() string {
	return fmt.Sprintf("no schedule data for date %d", e.Date)
}

// NoSlotError reports a query for a time that is not one of the table's
// slot columns. Slots carries the sorted slot list for the same reason.
type NoSlotError struct {
	Time  string
	Slots []string
}

func (e *NoSlotError) Error() string {
	return fmt.Sprintf("no %s time slot in table", e.Time)
}

// Slots returns the slot column headers ("HH:MM~"), sorted ascending.
func (t *Timetable) Slots() []string {
	out := make([]string, len(t.slots))
	copy(out, t.slots)
	return out
}

// Dates returns the distinct usage dates in the table, sorted ascending.
func (t *Timetable) Dates() []int {
	out := make([]int, len(t.dates))
	copy(out, t.dates)
	return out
}

// RowCount returns the number of date rows loaded.
func (t *Timetable) RowCount() int {
	return len(t.rows)
}

// StatusAt reports whether the room is free at the given time on the given
// date. time is the slot start in "HH:MM" form.
func (t *Timetable) StatusAt(date int, time string) (Status, error) {
	row, ok := t.rows[date]
	if !ok {
		return Status{}, &NoDateError{Date: date, Dates: t.Dates()}
	}

	idx := t.slotIndex(time + "~")
	if idx < 0 {
		return Status{}, &NoSlotError{Time: time, Slots: t.Slots()}
	}

	cell := row.Cells[idx]
	return Status{
		Available: !cell.Occupied,
		Label:     cell.Label,
		DayOfWeek: row.DayOfWeek,
	}, nil
}

// AvailableFrom returns the status of every slot starting at or after the
// given "HH:MM" time on the given date, in slot order. A date with no row
// yields an empty result rather than an error; callers scanning many rooms
// treat that the same as "nothing free".
func (t *Timetable) AvailableFrom(date int, start string) []SlotStatus {
	row, ok := t.rows[date]
	if !ok {
		return nil
	}

	var out []SlotStatus
	for i, slot := range t.slots {
		// Fixed-width HH:MM, so string order is time order.
		tm := slot[:5]
		if tm < start {
			continue
		}
		cell := row.Cells[i]
		out = append(out, SlotStatus{
			Time:      tm,
			Available: !cell.Occupied,
			Label:     cell.Label,
		})
	}
	return out
}

// ContiguousFreeRun counts how many consecutive slots are free starting at
// the first slot at or after start, stopping at the first occupied slot.
// Each slot is 30 minutes, so the count divided by two is hours.
func (t *Timetable) ContiguousFreeRun(date int, start string) int {
	run := 0
	for _, s := range t.AvailableFrom(date, start) {
		if !s.Available {
			break
		}
		run++
	}
	return run
}

// FullSchedule returns the status of every slot on the given date in slot
// order, plus the row's day-of-week label.
func (t *Timetable) FullSchedule(date int) ([]SlotStatus, string, error) {
	row, ok := t.rows[date]
	if !ok {
		return nil, "", &NoDateError{Date: date, Dates: t.Dates()}
	}

	out := make([]SlotStatus, len(t.slots))
	for i, slot := range t.slots {
		cell := row.Cells[i]
		out[i] = SlotStatus{
			Time:      slot[:5],
			Available: !cell.Occupied,
			Label:     cell.Label,
		}
	}
	return out, row.DayOfWeek, nil
}

// Hours converts a slot count from ContiguousFreeRun into hours.
func Hours(slots int) float64 {
	return float64(slots) / 2
}

func (t *Timetable) slotIndex(header string) int {
	i := sort.SearchStrings(t.slots, header)
	if i < len(t.slots) && t.slots[i] == header {
		return i
	}
	return -1
}
