package model

import "testing"

func TestCoordinates_String(t *testing.T) {
	tests := []struct {
		in   Coordinates
		want string
	}{
		{Coordinates{Lat: 37.98, Lng: 23.73}, "37.98,23.73"},
		{Coordinates{Lat: -33.8688, Lng: 151.2093}, "-33.8688,151.2093"},
		{Coordinates{Lat: 0, Lng: 10}, "0,10"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPlace_IsSelected(t *testing.T) {
	var nilPlace *Place
	if nilPlace.IsSelected() {
		t.Error("nil place is not selected")
	}
	if (&Place{Description: "typed"}).IsSelected() {
		t.Error("place without id is not selected")
	}
	p := PlaceFromCandidate(Candidate{PlaceID: "abc", MainText: "Airport"}, &Coordinates{Lat: 1, Lng: 2})
	if !p.IsSelected() || p.Coordinates == nil {
		t.Errorf("unexpected place: %+v", p)
	}
}
