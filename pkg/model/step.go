package model

import "fmt"

type Step int

const (
	StepPersonalInfo Step = iota
	StepJourneyDetails
	StepTravelPreferences
)

var Steps = []Step{StepPersonalInfo, StepJourneyDetails, StepTravelPreferences}

const (
	FirstStep = StepPersonalInfo
	LastStep  = StepTravelPreferences
)

var stepNames = map[Step]string{
	StepPersonalInfo:      "personal_info",
	StepJourneyDetails:    "journey_details",
	StepTravelPreferences: "travel_preferences",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) Next() Step {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

func (s Step) Prev() Step {
	if s <= FirstStep {
		return FirstStep
	}
	return s - 1
}

func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if n == name {
			return step, nil
		}
	}
	return FirstStep, fmt.Errorf("unknown step: %q", name)
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	step, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = step
	return nil
}

type Mode string

const (
	ModeTransfer Mode = "transfer"
	ModeTour     Mode = "tour"
)
