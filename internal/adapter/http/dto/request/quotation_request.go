package request

import (
	"errors"
	"strings"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/codec"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/usecase"
)

var (
	ErrUnknownArchetype     = errors.New("unknown window archetype")
	ErrMissingConfigType    = errors.New("configuration type is required")
	ErrUnknownPricingField  = errors.New("unknown pricing field")
	ErrEmptyConfigurationOp = errors.New("configuration request changes nothing")
)

type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

type CompanyRequest struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CreateQuotationRequest opens a new draft with one default window of the
// given archetype (sliding when empty).
type CreateQuotationRequest struct {
	Client    ClientRequest  `json:"client_info"`
	Company   CompanyRequest `json:"company_info"`
	Archetype string         `json:"archetype"`
	Notes     string         `json:"notes"`
}

func (r CreateQuotationRequest) ToInput() (usecase.CreateQuotationInput, error) {
	archetype, err := resolveArchetype(r.Archetype)
	if err != nil {
		return usecase.CreateQuotationInput{}, err
	}
	return usecase.CreateQuotationInput{
		Client: entities.ClientInfo{
			Name:    strings.TrimSpace(r.Client.Name),
			Email:   strings.TrimSpace(r.Client.Email),
			Phone:   strings.TrimSpace(r.Client.Phone),
			Address: r.Client.Address,
			Company: strings.TrimSpace(r.Client.Company),
		},
		Company: entities.CompanyInfo{
			Name:    strings.TrimSpace(r.Company.Name),
			GSTIN:   strings.ToUpper(strings.TrimSpace(r.Company.GSTIN)),
			Phone:   strings.TrimSpace(r.Company.Phone),
			Email:   strings.TrimSpace(r.Company.Email),
			Address: r.Company.Address,
		},
		Archetype: archetype,
		Notes:     r.Notes,
	}, nil
}

type AddWindowRequest struct {
	Archetype string `json:"archetype"`
}

func (r AddWindowRequest) ResolveArchetype() (entities.WindowArchetype, error) {
	return resolveArchetype(r.Archetype)
}

// RenameWindowRequest accepts a blank name; the window then gets the next
// free "Window N" name.
type RenameWindowRequest struct {
	Name string `json:"name"`
}

// WindowSpecRequest replaces a window's spec. Omitted fields take the
// default spec values.
type WindowSpecRequest struct {
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Quantity *int     `json:"quantity"`

	FrameMaterial  *string `json:"frameMaterial"`
	FrameColor     *string `json:"frameColor"`
	GlassType      *string `json:"glassType"`
	GlassTint      *string `json:"glassTint"`
	GlassPattern   *string `json:"glassPattern"`
	HardwareFinish *string `json:"hardwareFinish"`
	OpeningType    *string `json:"openingType"`
	GrilleStyle    *string `json:"grilleStyle"`
	GrilleColor    *string `json:"grilleColor"`

	WeatherSealing  *string `json:"weatherSealing"`
	EnergyRating    *string `json:"energyRating"`
	SoundInsulation *bool   `json:"soundInsulation"`
	UVProtection    *bool   `json:"uvProtection"`
	ChildLock       *bool   `json:"childLock"`

	Screen       *bool `json:"screen"`
	Motorized    *bool `json:"motorized"`
	SecurityLock *bool `json:"securityLock"`
	SmartHome    *bool `json:"smartHome"`
	Blinds       *bool `json:"blinds"`

	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

func (r WindowSpecRequest) ToSpec() entities.WindowSpec {
	s := entities.DefaultWindowSpec()
	setFloat(&s.Width, r.Width)
	setFloat(&s.Height, r.Height)
	if r.Quantity != nil {
		s.Quantity = *r.Quantity
	}

	setEnum(&s.FrameMaterial, r.FrameMaterial)
	setEnum(&s.FrameColor, r.FrameColor)
	setEnum(&s.GlassType, r.GlassType)
	setEnum(&s.GlassTint, r.GlassTint)
	setEnum(&s.GlassPattern, r.GlassPattern)
	setEnum(&s.HardwareFinish, r.HardwareFinish)
	setEnum(&s.OpeningType, r.OpeningType)
	setEnum(&s.GrilleStyle, r.GrilleStyle)
	setEnum(&s.GrilleColor, r.GrilleColor)
	setEnum(&s.WeatherSealing, r.WeatherSealing)
	setEnum(&s.EnergyRating, r.EnergyRating)

	setBool(&s.SoundInsulation, r.SoundInsulation)
	setBool(&s.UVProtection, r.UVProtection)
	setBool(&s.ChildLock, r.ChildLock)
	setBool(&s.Screen, r.Screen)
	setBool(&s.Motorized, r.Motorized)
	setBool(&s.SecurityLock, r.SecurityLock)
	setBool(&s.SmartHome, r.SmartHome)
	setBool(&s.Blinds, r.Blinds)

	if r.Location != nil {
		s.Location = *r.Location
	}
	if r.Notes != nil {
		s.Notes = *r.Notes
	}
	return s
}

// ConfigurationRequest changes a window's archetype and/or configuration.
//
// Configuration is a flat object; its "type" key (or Archetype) names the
// variant. PanelCount and PatternID apply after the configuration.
type ConfigurationRequest struct {
	Archetype     string         `json:"archetype"`
	Configuration map[string]any `json:"configuration"`
	PanelCount    *int           `json:"panel_count"`
	PatternID     *string        `json:"pattern_id"`
}

func (r ConfigurationRequest) ToInput() (usecase.ConfigurationInput, error) {
	var in usecase.ConfigurationInput
	if strings.TrimSpace(r.Archetype) != "" {
		a, err := resolveArchetype(r.Archetype)
		if err != nil {
			return in, err
		}
		in.Archetype = a
	}
	if r.Configuration != nil {
		kind := in.Archetype
		if t, ok := r.Configuration["type"].(string); ok && strings.TrimSpace(t) != "" {
			a, err := resolveArchetype(t)
			if err != nil {
				return in, err
			}
			kind = a
		}
		if kind == "" {
			return in, ErrMissingConfigType
		}
		in.Configuration = codec.DecodeConfiguration(kind, r.Configuration)
	}
	in.PanelCount = r.PanelCount
	in.PatternID = r.PatternID
	if in.Archetype == "" && in.Configuration == nil && in.PanelCount == nil && in.PatternID == nil {
		return in, ErrEmptyConfigurationOp
	}
	return in, nil
}

type PricingOverrideRequest struct {
	Field string   `json:"field" binding:"required"`
	Value *float64 `json:"value" binding:"required"`
}

func (r PricingOverrideRequest) ResolveField() (entities.PricingField, error) {
	switch f := entities.PricingField(strings.TrimSpace(r.Field)); f {
	case entities.PricingUnitPrice, entities.PricingTransportation, entities.PricingLoading, entities.PricingTaxRate:
		return f, nil
	}
	return "", ErrUnknownPricingField
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ActiveWindowRequest struct {
	WindowID string `json:"window_id" binding:"required"`
}

// resolveArchetype accepts catalog ids and display names; blank means the
// default archetype.
func resolveArchetype(s string) (entities.WindowArchetype, error) {
	if strings.TrimSpace(s) == "" {
		return entities.DefaultArchetype, nil
	}
	a, ok := catalog.LookupArchetype(s)
	if !ok {
		return "", ErrUnknownArchetype
	}
	return a, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setEnum(dst *string, v *string) {
	if v == nil {
		return
	}
	if s := strings.ToLower(strings.TrimSpace(*v)); s != "" {
		*dst = s
	}
}
