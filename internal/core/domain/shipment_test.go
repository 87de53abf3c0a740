package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func baseRecord() ShipmentRecord {
	return ShipmentRecord{
		TrackingID:      "LPL-2001",
		Status:          StatusInTransit,
		Origin:          "Lagos",
		Destination:     "Bangalore",
		CurrentLocation: "12.9,77.6",
		Progress:        45,
		ETA:             "2026-09-02",
		Sender:          "Acme Exports",
		Events: []TimelineEvent{
			{Text: "Picked up", Location: "Lagos", Time: "2026-08-28T09:00:00Z"},
			{Text: "Departed origin facility", Time: "2026-08-28T17:30:00Z"},
		},
	}
}

func TestApply_SingleFieldLeavesRestUntouched(t *testing.T) {
	rec := baseRecord()
	want := baseRecord()
	want.Status = StatusDelivered

	rec.Apply(ShipmentPatch{Status: strPtr(StatusDelivered)})

	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Apply changed more than status:\n got %+v\nwant %+v", rec, want)
	}
}

func TestApply_EmptyPatchIsNoop(t *testing.T) {
	rec := baseRecord()
	want := baseRecord()

	var p ShipmentPatch
	if !p.IsZero() {
		t.Fatal("zero patch should report IsZero")
	}
	rec.Apply(p)

	if !reflect.DeepEqual(rec, want) {
		t.Errorf("empty patch mutated record:\n got %+v\nwant %+v", rec, want)
	}
}

func TestApply_EventsReplacedWholesale(t *testing.T) {
	rec := baseRecord()
	events := []TimelineEvent{
		{Text: "Picked up", Location: "Lagos", Time: "2026-08-28T09:00:00Z"},
		{Text: "Departed origin facility", Time: "2026-08-28T17:30:00Z"},
		{Text: "Arrived transit hub", Location: "Dubai", Time: "2026-08-29T03:10:00Z"},
	}

	rec.Apply(ShipmentPatch{Events: &events})

	if len(rec.Events) != 3 {
		t.Fatalf("got %d events, want 3", len(rec.Events))
	}
	// The record must own its own copy, not alias the patch slice.
	events[0].Text = "mutated"
	if rec.Events[0].Text != "Picked up" {
		t.Error("record events alias the patch slice")
	}
}

func TestApply_ExplicitEmptyStringOverwrites(t *testing.T) {
	rec := baseRecord()
	rec.Apply(ShipmentPatch{CurrentLocation: strPtr("")})
	if rec.CurrentLocation != "" {
		t.Errorf("explicit empty currentLocation not applied, got %q", rec.CurrentLocation)
	}
}

func TestPatchJSON_AbsentFieldsStayNil(t *testing.T) {
	var p ShipmentPatch
	if err := json.Unmarshal([]byte(`{"progress":80}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Progress == nil || *p.Progress != 80 {
		t.Fatalf("progress not decoded: %+v", p)
	}
	if p.Status != nil || p.CurrentLocation != nil || p.Events != nil {
		t.Errorf("absent fields decoded as present: %+v", p)
	}

	rec := baseRecord()
	rec.Apply(p)
	if rec.Progress != 80 {
		t.Errorf("progress = %v, want 80", rec.Progress)
	}
	if rec.CurrentLocation != "12.9,77.6" {
		t.Errorf("currentLocation clobbered: %q", rec.CurrentLocation)
	}
}

func TestDisplayProgress_Clamped(t *testing.T) {
	tests := []struct {
		stored float64
		want   float64
	}{
		{-10, 0},
		{0, 0},
		{45, 45},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		rec := ShipmentRecord{Progress: tt.stored}
		if got := rec.DisplayProgress(); got != tt.want {
			t.Errorf("DisplayProgress(%v) = %v, want %v", tt.stored, got, tt.want)
		}
		if rec.Progress != tt.stored {
			t.Errorf("clamping must not touch the stored value, got %v", rec.Progress)
		}
	}
}
