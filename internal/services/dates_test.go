package services

import (
	"testing"
	"time"
)

func TestDateAtLocationTruncatesToLocalMidnight(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:30 UTC already belongs to the next Moscow day.
	value := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC)
	got := DateAtLocation(value, moscow)
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, moscow)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDayRangeIsHalfOpen(t *testing.T) {
	value := time.Date(2026, time.March, 14, 13, 45, 0, 0, time.UTC)
	start, end := DayRange(value, time.UTC)
	if !start.Equal(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day start %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected end one day after start, got %v", end)
	}
}
