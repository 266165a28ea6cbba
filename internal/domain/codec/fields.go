package codec

import "window_quotation/internal/domain/entities"

// stringField binds a WindowSpec string to its flattened name and the names
// older records used for it. enum fields are normalized when read from
// flattened or legacy sources.
type stringField struct {
	name    string
	aliases []string
	enum    bool
	ref     func(*entities.WindowSpec) *string
}

type boolField struct {
	name    string
	aliases []string
	ref     func(*entities.WindowSpec) *bool
}

var stringFields = []stringField{
	{"frameMaterial", []string{"frame", "material"}, true, func(s *entities.WindowSpec) *string { return &s.FrameMaterial }},
	{"frameColor", []string{"color", "frameColour"}, true, func(s *entities.WindowSpec) *string { return &s.FrameColor }},
	{"glassType", []string{"glass"}, true, func(s *entities.WindowSpec) *string { return &s.GlassType }},
	{"glassTint", []string{"tint"}, true, func(s *entities.WindowSpec) *string { return &s.GlassTint }},
	{"glassPattern", nil, true, func(s *entities.WindowSpec) *string { return &s.GlassPattern }},
	{"hardwareFinish", []string{"hardware"}, true, func(s *entities.WindowSpec) *string { return &s.HardwareFinish }},
	{"openingType", []string{"opening"}, true, func(s *entities.WindowSpec) *string { return &s.OpeningType }},
	{"grilleStyle", []string{"grille", "grillPattern"}, true, func(s *entities.WindowSpec) *string { return &s.GrilleStyle }},
	{"grilleColor", []string{"grillColor"}, true, func(s *entities.WindowSpec) *string { return &s.GrilleColor }},
	{"weatherSealing", []string{"weatherStripping", "weatherseal"}, true, func(s *entities.WindowSpec) *string { return &s.WeatherSealing }},
	{"energyRating", []string{"energyEfficiency"}, true, func(s *entities.WindowSpec) *string { return &s.EnergyRating }},
	{"location", nil, false, func(s *entities.WindowSpec) *string { return &s.Location }},
	{"notes", []string{"remarks"}, false, func(s *entities.WindowSpec) *string { return &s.Notes }},
}

var boolFields = []boolField{
	{"soundInsulation", []string{"soundproofing"}, func(s *entities.WindowSpec) *bool { return &s.SoundInsulation }},
	{"uvProtection", []string{"uvCoating"}, func(s *entities.WindowSpec) *bool { return &s.UVProtection }},
	{"childLock", []string{"childSafety"}, func(s *entities.WindowSpec) *bool { return &s.ChildLock }},
	{"screen", []string{"mosquitoNet", "insectScreen"}, func(s *entities.WindowSpec) *bool { return &s.Screen }},
	{"motorized", []string{"motorised", "automation"}, func(s *entities.WindowSpec) *bool { return &s.Motorized }},
	{"securityLock", []string{"security"}, func(s *entities.WindowSpec) *bool { return &s.SecurityLock }},
	{"smartHome", []string{"smartHomeIntegration"}, func(s *entities.WindowSpec) *bool { return &s.SmartHome }},
	{"blinds", []string{"integratedBlinds"}, func(s *entities.WindowSpec) *bool { return &s.Blinds }},
}

// flattenSpec produces the specifications-by-name map of a flattened window.
func flattenSpec(spec entities.WindowSpec) map[string]any {
	out := make(map[string]any, len(stringFields)+len(boolFields))
	for _, f := range stringFields {
		out[f.name] = *f.ref(&spec)
	}
	for _, f := range boolFields {
		out[f.name] = *f.ref(&spec)
	}
	return out
}
