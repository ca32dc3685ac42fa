package roommeta

import "testing"

func TestExtractFullName(t *testing.T) {
	e := NewDefaultExtractor()

	meta := e.Extract("프라임관301,수용인원 0070명,캡스톤디자인강의실(안유현강의실)_converted.xlsx")

	if meta.Building != "프라임관" {
		t.Errorf("expected building 프라임관, got %q", meta.Building)
	}
	if meta.RoomNumber != "301" {
		t.Errorf("expected room number 301, got %q", meta.RoomNumber)
	}
	if meta.Floor != 3 {
		t.Errorf("expected floor 3, got %d", meta.Floor)
	}
	if meta.Capacity != 70 {
		t.Errorf("expected capacity 70, got %d", meta.Capacity)
	}
}

func TestExtractTakesBaseName(t *testing.T) {
	e := NewDefaultExtractor()

	meta := e.Extract("data/세종관1205,수용인원 0045명,일반강의실_converted.xlsx")

	if meta.Building != "세종관" {
		t.Errorf("expected building 세종관, got %q", meta.Building)
	}
	if meta.RoomNumber != "1205" {
		t.Errorf("expected room number 1205, got %q", meta.RoomNumber)
	}
	if meta.Floor != 12 {
		t.Errorf("expected floor 12, got %d", meta.Floor)
	}
	if meta.SourceFile != "세종관1205,수용인원 0045명,일반강의실_converted.xlsx" {
		t.Errorf("expected SourceFile to be the base name, got %q", meta.SourceFile)
	}
}

func TestExtractMalformedName(t *testing.T) {
	e := NewDefaultExtractor()

	// No building suffix anywhere: everything should degrade to zero values.
	meta := e.Extract("random_spreadsheet.xlsx")

	if meta.Building != "" {
		t.Errorf("expected empty building, got %q", meta.Building)
	}
	if meta.RoomNumber != "" {
		t.Errorf("expected empty room number, got %q", meta.RoomNumber)
	}
	if meta.Floor != 0 {
		t.Errorf("expected floor 0, got %d", meta.Floor)
	}
	if meta.Capacity != 0 {
		t.Errorf("expected capacity 0, got %d", meta.Capacity)
	}
}

func TestExtractMissingCapacity(t *testing.T) {
	e := NewDefaultExtractor()

	meta := e.Extract("프라임관415,세미나실_converted.xlsx")

	if meta.Building != "프라임관" {
		t.Errorf("expected building 프라임관, got %q", meta.Building)
	}
	if meta.RoomNumber != "415" {
		t.Errorf("expected room 415, got %q", meta.RoomNumber)
	}
	if meta.Floor != 4 {
		t.Errorf("expected floor 4, got %d", meta.Floor)
	}
	if meta.Capacity != 0 {
		t.Errorf("expected capacity 0 when label is missing, got %d", meta.Capacity)
	}
}

func TestExtractCustomTokens(t *testing.T) {
	e := NewExtractor(Tokens{
		BuildingSuffix: "Hall",
		CapacityLabel:  "capacity",
		CapacityUnit:   "seats",
	})

	meta := e.Extract("NewtonHall204,capacity 0120seats,lecture_converted.xlsx")

	if meta.Building != "NewtonHall" {
		t.Errorf("expected building NewtonHall, got %q", meta.Building)
	}
	if meta.RoomNumber != "204" {
		t.Errorf("expected room 204, got %q", meta.RoomNumber)
	}
	if meta.Floor != 2 {
		t.Errorf("expected floor 2, got %d", meta.Floor)
	}
	if meta.Capacity != 120 {
		t.Errorf("expected capacity 120, got %d", meta.Capacity)
	}
}
