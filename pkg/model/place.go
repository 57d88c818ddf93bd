package model

import "strconv"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the pair as "lat,lng" using the shortest float form.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Candidate is a single autocomplete suggestion returned by a place lookup.
type Candidate struct {
	PlaceID       string `json:"placeId"`
	Description   string `json:"description"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

type PlaceDetails struct {
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Place is a candidate the visitor picked, optionally enriched with coordinates.
type Place struct {
	PlaceID       string       `json:"placeId"`
	Description   string       `json:"description"`
	MainText      string       `json:"mainText"`
	SecondaryText string       `json:"secondaryText"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

func PlaceFromCandidate(c Candidate, coords *Coordinates) *Place {
	return &Place{
		PlaceID:       c.PlaceID,
		Description:   c.Description,
		MainText:      c.MainText,
		SecondaryText: c.SecondaryText,
		Coordinates:   coords,
	}
}

// IsSelected reports whether the place refers to a resolved dropdown entry.
func (p *Place) IsSelected() bool {
	return p != nil && p.PlaceID != ""
}

func (p *Place) clone() *Place {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Coordinates != nil {
		coords := *p.Coordinates
		cp.Coordinates = &coords
	}
	return &cp
}
