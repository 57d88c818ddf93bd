package model

type CounterBounds struct {
	Min int
	Max int
}

var Counters = map[Field]CounterBounds{
	FieldPassengers: {Min: 1, Max: 15},
	FieldLuggage:    {Min: 0, Max: 20},
	FieldChildSeats: {Min: 0, Max: 5},
}
