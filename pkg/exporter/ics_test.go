package exporter

import (
	"bytes"
	"strings"
	"testing"

	"roomctl/pkg/roommeta"
	"roomctl/pkg/timetable"
)

func TestGenerateICS(t *testing.T) {
	meta := roommeta.RoomMeta{
		Building:   "프라임관",
		RoomNumber: "301",
		Floor:      3,
		Capacity:   70,
	}

	schedule := []timetable.SlotStatus{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false, Label: "자료구조"},
		{Time: "10:00", Available: false, Label: "자료구조"},
		{Time: "10:30", Available: false, Label: "자료구조"},
		{Time: "11:00", Available: true},
		{Time: "11:30", Available: false, Label: "세미나"},
	}

	var buf bytes.Buffer
	err := GenerateICS(meta, 20250901, schedule, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:자료구조") {
		t.Errorf("Expected ICS to contain occupant summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:프라임관 301") {
		t.Errorf("Expected ICS to contain room location")
	}

	// The three 자료구조 slots merge into one event and the lone 세미나 slot
	// stays its own, so exactly two VEVENTs.
	if got := strings.Count(output, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("Expected 2 events after merging, got %d:\n%s", got, output)
	}

	// 01-Sep-2025 09:30 Seoul time is 00:30 UTC.
	if !strings.Contains(output, "DTSTART:20250901T003000Z") {
		t.Errorf("Expected merged event start in UTC, got: \n%s", output)
	}

	// The merged event spans 90 minutes, ending 02:00 UTC.
	if !strings.Contains(output, "DTEND:20250901T020000Z") {
		t.Errorf("Expected merged event end in UTC, got: \n%s", output)
	}
}

func TestGenerateICSAllFree(t *testing.T) {
	schedule := []timetable.SlotStatus{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
	}

	var buf bytes.Buffer
	err := GenerateICS(roommeta.RoomMeta{Building: "프라임관"}, 20250901, schedule, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("Expected no events for a fully free day")
	}
}
