package model

import (
	"testing"
	"time"
)

func TestDefaultFormState(t *testing.T) {
	tests := []struct {
		name     string
		tour     string
		wantMode Mode
	}{
		{name: "transfer", tour: "", wantMode: ModeTransfer},
		{name: "tour", tour: "santorini-sunset", wantMode: ModeTour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFormState(tt.tour)
			if f.Mode() != tt.wantMode {
				t.Errorf("mode = %s, want %s", f.Mode(), tt.wantMode)
			}
			if f.Time != DefaultTime || f.Passengers != "1" || f.Luggage != "0" || f.ChildSeats != "0" {
				t.Errorf("unexpected defaults: %+v", f)
			}
			if f.PickupLocation != nil || f.DropoffLocation != nil || f.Date != nil {
				t.Error("journey fields should start absent")
			}
		})
	}
}

func TestApply(t *testing.T) {
	name := "Jane"
	notes := "window seat"
	empty := ""

	f := DefaultFormState("")
	f.Email = "jane@example.com"
	f.PickupLocation = &Place{PlaceID: "p1", MainText: "Airport"}

	f.Apply(FormUpdate{FullName: &name, Notes: &notes})
	if f.FullName != "Jane" || f.Notes != "window seat" {
		t.Errorf("new values not applied: %+v", f)
	}
	if f.Email != "jane@example.com" || f.PickupLocation == nil {
		t.Error("untouched fields must be preserved")
	}

	f.Apply(FormUpdate{Notes: &empty})
	if f.Notes != "" {
		t.Error("explicit empty string should clear the field")
	}

	f.Apply(FormUpdate{PickupLocation: &Place{Description: "typed but not picked"}})
	if f.PickupLocation != nil {
		t.Error("a place without id should clear the selection")
	}

	d := ParseTravelDate("2024-06-01", time.UTC)
	f.Apply(FormUpdate{Date: &d})
	if f.Date == nil || f.Date.String() != "2024-06-01" {
		t.Fatalf("date not applied: %v", f.Date)
	}
	d.Raw = "mutated"
	if f.Date.Raw == "mutated" {
		t.Error("Apply must copy the date")
	}

	f.Apply(FormUpdate{Date: &TravelDate{}})
	if f.Date != nil {
		t.Error("empty date should clear the field")
	}
}

func TestClone_IsDeep(t *testing.T) {
	f := DefaultFormState("")
	f.PickupLocation = &Place{PlaceID: "p1", Coordinates: &Coordinates{Lat: 1, Lng: 2}}
	d := NewTravelDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	f.Date = &d

	cp := f.Clone()
	cp.PickupLocation.Coordinates.Lat = 99
	cp.Date.Raw = "changed"

	if f.PickupLocation.Coordinates.Lat != 1 {
		t.Error("coordinates shared between clones")
	}
	if f.Date.Raw != "2024-06-01" {
		t.Error("date shared between clones")
	}
}
