package entities

import "fmt"

const (
	MinWidthMM  = 300
	MaxWidthMM  = 3000
	MinHeightMM = 300
	MaxHeightMM = 2500

	// EngineMaxQuantity is the hard cap; callers may impose a stricter one.
	EngineMaxQuantity = 1000
)

// WindowSpec holds the physical attributes of one window. Every field has a
// default (see DefaultWindowSpec); none is required for the value to exist.
type WindowSpec struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`

	FrameMaterial  string `json:"frameMaterial"`
	FrameColor     string `json:"frameColor"`
	GlassType      string `json:"glassType"`
	GlassTint      string `json:"glassTint"`
	GlassPattern   string `json:"glassPattern"`
	HardwareFinish string `json:"hardwareFinish"`
	OpeningType    string `json:"openingType"`
	GrilleStyle    string `json:"grilleStyle"`
	GrilleColor    string `json:"grilleColor"`

	WeatherSealing  string `json:"weatherSealing"`
	EnergyRating    string `json:"energyRating"`
	SoundInsulation bool   `json:"soundInsulation"`
	UVProtection    bool   `json:"uvProtection"`
	ChildLock       bool   `json:"childLock"`

	Screen       bool `json:"screen"`
	Motorized    bool `json:"motorized"`
	SecurityLock bool `json:"securityLock"`
	SmartHome    bool `json:"smartHome"`
	Blinds       bool `json:"blinds"`

	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func DefaultWindowSpec() WindowSpec {
	return WindowSpec{
		Width:          1200,
		Height:         1500,
		Quantity:       1,
		FrameMaterial:  "aluminum",
		FrameColor:     "white",
		GlassType:      "single",
		GlassTint:      "clear",
		GlassPattern:   "none",
		HardwareFinish: "standard",
		OpeningType:    "standard",
		GrilleStyle:    "none",
		GrilleColor:    "white",
		WeatherSealing: "standard",
		EnergyRating:   "standard",
	}
}

// Validate checks the range-constrained fields. maxQuantity is the caller's
// cap; values <= 0 or above EngineMaxQuantity fall back to the engine cap.
func (s WindowSpec) Validate(maxQuantity int) ValidationErrors {
	if maxQuantity <= 0 || maxQuantity > EngineMaxQuantity {
		maxQuantity = EngineMaxQuantity
	}
	var errs ValidationErrors
	if s.Width < MinWidthMM || s.Width > MaxWidthMM {
		errs = append(errs, ValidationError{Field: "width", Value: s.Width, Reason: fmt.Sprintf("must be between %d and %d mm", MinWidthMM, MaxWidthMM)})
	}
	if s.Height < MinHeightMM || s.Height > MaxHeightMM {
		errs = append(errs, ValidationError{Field: "height", Value: s.Height, Reason: fmt.Sprintf("must be between %d and %d mm", MinHeightMM, MaxHeightMM)})
	}
	if s.Quantity < 1 || s.Quantity > maxQuantity {
		errs = append(errs, ValidationError{Field: "quantity", Value: s.Quantity, Reason: fmt.Sprintf("must be between 1 and %d", maxQuantity)})
	}
	return errs
}
