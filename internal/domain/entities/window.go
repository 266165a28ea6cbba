package entities

// WindowInstance is one configured window inside a quotation. Identity is ID,
// never the position in the list.
type WindowInstance struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Archetype     WindowArchetype  `json:"archetype"`
	Configuration Configuration    `json:"-"`
	Spec          WindowSpec       `json:"spec"`
	Pricing       PricingBreakdown `json:"pricing"`
}

// Clone returns an independent copy. All variants and specs are value types,
// so a shallow copy is already deep.
func (w WindowInstance) Clone() WindowInstance {
	return w
}
