package response

import (
	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/codec"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"
)

const dateLayout = "2006-01-02"

type WindowResponse struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Archetype     string                    `json:"archetype"`
	ArchetypeName string                    `json:"archetype_name"`
	Configuration map[string]any            `json:"configuration"`
	Spec          entities.WindowSpec       `json:"spec"`
	Pricing       entities.PricingBreakdown `json:"pricing"`
	AreaSqFt      float64                   `json:"area_sqft"`
}

type QuotationResponse struct {
	QuotationNumber string                   `json:"quotation_number"`
	Date            string                   `json:"date"`
	ValidUntil      string                   `json:"valid_until"`
	Status          string                   `json:"status"`
	Client          entities.ClientInfo      `json:"client_info"`
	Company         entities.CompanyInfo     `json:"company_info"`
	Notes           string                   `json:"notes"`
	ActiveWindowID  string                   `json:"active_window_id"`
	Windows         []WindowResponse         `json:"windows"`
	Totals          entities.QuotationTotals `json:"totals"`
}

type ValidationResponse struct {
	Valid  bool                       `json:"valid"`
	Errors []entities.ValidationError `json:"errors"`
}

type PatternResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	PanelCount int                  `json:"panel_count"`
	Roles      []entities.PanelRole `json:"roles"`
	Default    bool                 `json:"default"`
}

type ArchetypeResponse struct {
	ID                   string                    `json:"id"`
	Name                 string                    `json:"name"`
	Description          string                    `json:"description"`
	DefaultConfiguration map[string]any            `json:"default_configuration"`
	Patterns             map[int][]PatternResponse `json:"patterns,omitempty"`
}

func FromWindow(w entities.WindowInstance) WindowResponse {
	res := WindowResponse{
		ID:            w.ID,
		Name:          w.Name,
		Archetype:     string(w.Archetype),
		ArchetypeName: catalog.DisplayName(w.Archetype),
		Spec:          w.Spec,
		Pricing:       w.Pricing,
		AreaSqFt:      pricing.AreaSqFt(w.Spec.Width, w.Spec.Height),
	}
	if w.Configuration != nil {
		res.Configuration = codec.EncodeConfiguration(w.Configuration)
	}
	return res
}

func FromQuotation(q entities.Quotation, totals entities.QuotationTotals) QuotationResponse {
	res := QuotationResponse{
		QuotationNumber: q.Number,
		Status:          string(q.Status),
		Client:          q.Client,
		Company:         q.Company,
		Notes:           q.Notes,
		ActiveWindowID:  q.ActiveWindowID,
		Windows:         make([]WindowResponse, 0, len(q.Windows)),
		Totals:          totals,
	}
	if !q.Date.IsZero() {
		res.Date = q.Date.Format(dateLayout)
	}
	if !q.ValidUntil.IsZero() {
		res.ValidUntil = q.ValidUntil.Format(dateLayout)
	}
	for _, w := range q.Windows {
		res.Windows = append(res.Windows, FromWindow(w))
	}
	return res
}

func FromValidation(errs entities.ValidationErrors) ValidationResponse {
	out := ValidationResponse{Valid: len(errs) == 0, Errors: []entities.ValidationError{}}
	out.Errors = append(out.Errors, errs...)
	return out
}

// FromArchetypes lists the catalog with each class's default configuration
// and, for the patterned classes, the patterns per panel count.
func FromArchetypes(infos []entities.ArchetypeInfo) []ArchetypeResponse {
	out := make([]ArchetypeResponse, 0, len(infos))
	for _, info := range infos {
		item := ArchetypeResponse{
			ID:                   string(info.ID),
			Name:                 info.Name,
			Description:          info.Description,
			DefaultConfiguration: codec.EncodeConfiguration(entities.DefaultConfiguration(info.ID)),
		}
		if catalog.HasPatterns(info.ID) {
			item.Patterns = map[int][]PatternResponse{}
			for _, n := range catalog.PanelCounts(info.ID) {
				item.Patterns[n] = FromPatterns(info.ID, n)
			}
		}
		out = append(out, item)
	}
	return out
}

func FromPatterns(class entities.WindowArchetype, panelCount int) []PatternResponse {
	def, _ := catalog.GetDefaultPattern(class, panelCount)
	patterns := catalog.GetPatterns(class, panelCount)
	out := make([]PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, PatternResponse{
			ID:         p.ID,
			Name:       p.Name,
			PanelCount: p.PanelCount,
			Roles:      p.Roles,
			Default:    p.ID == def.ID,
		})
	}
	return out
}
