package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"
	"window_quotation/internal/domain/windows"

	"github.com/google/uuid"
)

// Source names, in precedence order.
const (
	SourceRawWindow  = "rawBackup.windows"
	SourceRawBackup  = "rawBackup"
	SourceLegacySpec = "windowSpecs.specifications"
	SourceFlat       = "windowSpecs"
	SourceTopLevel   = "record"
)

// document is a parsed record whose container shapes have been checked.
type document struct {
	root       node
	raw        node
	flat       []any
	rawWindows []any
}

// Decode rebuilds a quotation from any record shape: current, legacy
// single-window or partially populated. Every field resolves independently
// through the precedence chain raw window, raw backup, legacy flattened
// name, flattened dimensions/pricing, default. Only a record that is not an
// object, or whose containers have the wrong shape, is rejected with a
// CorruptRecordError.
func Decode(data []byte) (entities.Quotation, error) {
	doc, err := parse(data)
	if err != nil {
		return entities.Quotation{}, err
	}
	return decodeDocument(doc), nil
}

// DecodeOrDefault never leaves the caller without editable state: a corrupt
// record yields a single default window, keeping whatever metadata is still
// readable. The returned error reports that the fallback was taken.
func DecodeOrDefault(data []byte) (entities.Quotation, error) {
	doc, err := parse(data)
	if err == nil {
		return decodeDocument(doc), nil
	}
	q := entities.Quotation{Status: entities.QuotationStatusDraft}
	if root := rootNode(data); root != nil {
		q = decodeMetadata(document{root: root, raw: root.child("rawBackup")})
	}
	q.Windows = nil
	windows.EnsureWindows(&q, entities.DefaultArchetype)
	return q, err
}

// CorruptPayload returns what a save must keep from the record it replaces:
// the whole previous payload when it cannot be decoded, otherwise the
// corruptBackup it already carries.
func CorruptPayload(previous []byte) string {
	if len(bytes.TrimSpace(previous)) == 0 {
		return ""
	}
	doc, err := parse(previous)
	if err != nil {
		return string(previous)
	}
	kept, _ := toText(doc.root["corruptBackup"])
	return kept
}

func rootNode(data []byte) node {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return asNode(v)
}

func parse(data []byte) (document, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return document{}, &entities.CorruptRecordError{Reason: "not valid JSON: " + err.Error()}
	}
	root := asNode(v)
	if root == nil {
		return document{}, &entities.CorruptRecordError{Reason: fmt.Sprintf("record is %s, not an object", kind(v))}
	}
	doc := document{root: root}

	if v, ok := root["windowSpecs"]; ok && v != nil {
		arr, isArr := v.([]any)
		if !isArr {
			return document{}, &entities.CorruptRecordError{Path: "windowSpecs", Reason: fmt.Sprintf("expected array, got %s", kind(v))}
		}
		doc.flat = arr
	}
	if v, ok := root["rawBackup"]; ok && v != nil {
		raw := asNode(v)
		if raw == nil {
			return document{}, &entities.CorruptRecordError{Path: "rawBackup", Reason: fmt.Sprintf("expected object, got %s", kind(v))}
		}
		doc.raw = raw
		if w, ok := raw["windows"]; ok && w != nil {
			arr, isArr := w.([]any)
			if !isArr {
				return document{}, &entities.CorruptRecordError{Path: "rawBackup.windows", Reason: fmt.Sprintf("expected array, got %s", kind(w))}
			}
			doc.rawWindows = arr
		}
	}
	return doc, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func decodeDocument(doc document) entities.Quotation {
	q := decodeMetadata(doc)

	n := len(doc.flat)
	if n == 0 {
		n = len(doc.rawWindows)
	}
	if n == 0 {
		n = 1
	}

	legacy := legacyArchetype(doc)
	seen := make(map[string]bool, n)
	q.Windows = make([]entities.WindowInstance, 0, n)
	for i := 0; i < n; i++ {
		w := decodeWindow(doc, i, legacy)
		if w.ID == "" || seen[w.ID] {
			w.ID = uuid.NewString()
		}
		seen[w.ID] = true
		q.Windows = append(q.Windows, w)
	}

	active := Resolve("activeWindowId", toString, "",
		doc.raw.src(SourceRawBackup, "activeWindowId"),
		doc.root.src(SourceTopLevel, "activeWindowId"),
	).Value
	q.ActiveWindowID = active
	windows.EnsureWindows(&q, entities.DefaultArchetype)
	return q
}

func decodeMetadata(doc document) entities.Quotation {
	r, top := doc.raw, doc.root
	meta := func(field string, path ...string) string {
		return Resolve(field, toString, "", r.src(SourceRawBackup, path...), top.src(SourceTopLevel, path...)).Value
	}
	date := func(field string) time.Time {
		return Resolve(field, toDate, time.Time{}, r.src(SourceRawBackup, field), top.src(SourceTopLevel, field)).Value
	}

	q := entities.Quotation{
		Number:     meta("quotationNumber", "quotationNumber"),
		Date:       date("date"),
		ValidUntil: date("validUntil"),
		Notes:      meta("notes", "notes"),
		Client: entities.ClientInfo{
			Name:    Resolve("clientInfo.name", toString, "", r.src(SourceRawBackup, "clientInfo", "name"), top.src(SourceTopLevel, "clientInfo", "name"), top.src(SourceTopLevel, "clientName")).Value,
			Email:   meta("clientInfo.email", "clientInfo", "email"),
			Phone:   meta("clientInfo.phone", "clientInfo", "phone"),
			Address: meta("clientInfo.address", "clientInfo", "address"),
			Company: meta("clientInfo.company", "clientInfo", "company"),
		},
		Company: entities.CompanyInfo{
			Name:    meta("companyInfo.name", "companyInfo", "name"),
			GSTIN:   meta("companyInfo.gstin", "companyInfo", "gstin"),
			Phone:   meta("companyInfo.phone", "companyInfo", "phone"),
			Email:   meta("companyInfo.email", "companyInfo", "email"),
			Address: meta("companyInfo.address", "companyInfo", "address"),
		},
	}
	q.Status = Resolve("status", toStatus, entities.QuotationStatusDraft,
		r.src(SourceRawBackup, "status"), top.src(SourceTopLevel, "status")).Value
	return q
}

func toStatus(v any) (entities.QuotationStatus, bool) {
	s, ok := toEnum(v)
	if !ok {
		return "", false
	}
	st := entities.QuotationStatus(s)
	return st, st.Valid()
}

// legacyArchetype is the quotation-level archetype older single-window
// records carried, as an id or display name.
func legacyArchetype(doc document) Source {
	for _, s := range []Source{
		doc.raw.src(SourceRawBackup, "archetype"),
		doc.raw.src(SourceRawBackup, "windowType"),
		doc.root.src(SourceTopLevel, "windowType"),
		doc.root.src(SourceTopLevel, "archetype"),
	} {
		if _, ok := toArchetype(s.Value); s.OK && ok {
			return s
		}
	}
	return Source{}
}

func toArchetype(v any) (entities.WindowArchetype, bool) {
	s, ok := toString(v)
	if !ok {
		return "", false
	}
	return catalog.LookupArchetype(s)
}

func element(arr []any, i int) node {
	if i < len(arr) {
		return asNode(arr[i])
	}
	return nil
}

func decodeWindow(doc document, i int, legacy Source) entities.WindowInstance {
	raw := element(doc.rawWindows, i)
	flat := element(doc.flat, i)
	var level2 node
	if i == 0 {
		level2 = doc.raw
	}
	specs := flat.child("specifications")

	archetype := Resolve("archetype", toArchetype, entities.DefaultArchetype,
		raw.src(SourceRawWindow, "archetype"),
		raw.src(SourceRawWindow, "configuration", configTypeKey),
		legacy,
		flat.src(SourceFlat, "archetype"),
		flat.src(SourceFlat, "windowType"),
	).Value

	w := entities.WindowInstance{
		ID:        Resolve("id", toString, "", raw.src(SourceRawWindow, "id"), flat.src(SourceFlat, "id")).Value,
		Name:      Resolve("name", toString, windows.DefaultName(i+1), raw.src(SourceRawWindow, "name"), flat.src(SourceFlat, "name")).Value,
		Archetype: archetype,
	}
	w.Spec = decodeSpec(raw, level2, flat, specs)
	w.Configuration = decodeConfiguration(archetype, configSources(archetype,
		namedNode{SourceRawWindow, raw.child("configuration")},
		namedNode{SourceRawBackup, level2.child("configuration")},
		namedNode{SourceLegacySpec, specs},
	))
	w.Pricing = decodePricing(w, raw, level2, flat)
	return w
}

// quotationLevelKeys are rawBackup keys that belong to the quotation, not to
// a legacy single window.
var quotationLevelKeys = map[string]bool{"notes": true}

func decodeSpec(raw, level2, flat, specs node) entities.WindowSpec {
	spec := entities.DefaultWindowSpec()

	spec.Width = Resolve("width", toFloat, spec.Width,
		raw.src(SourceRawWindow, "spec", "width"),
		level2.src(SourceRawBackup, "spec", "width"),
		level2.src(SourceRawBackup, "width"),
		specs.srcAny(SourceLegacySpec, nil, "width"),
		flat.src(SourceFlat, "dimensions", "width"),
	).Value
	spec.Height = Resolve("height", toFloat, spec.Height,
		raw.src(SourceRawWindow, "spec", "height"),
		level2.src(SourceRawBackup, "spec", "height"),
		level2.src(SourceRawBackup, "height"),
		specs.srcAny(SourceLegacySpec, nil, "height"),
		flat.src(SourceFlat, "dimensions", "height"),
	).Value
	spec.Quantity = Resolve("quantity", toInt, spec.Quantity,
		raw.src(SourceRawWindow, "spec", "quantity"),
		level2.src(SourceRawBackup, "spec", "quantity"),
		level2.src(SourceRawBackup, "quantity"),
		specs.srcAny(SourceLegacySpec, nil, "quantity"),
		flat.src(SourceFlat, "quantity"),
		flat.src(SourceFlat, "pricing", "quantity"),
	).Value

	for _, f := range stringFields {
		ref := f.ref(&spec)
		names := append([]string{f.name}, f.aliases...)
		legacyConv := toString
		if f.enum {
			legacyConv = toEnum
		}
		// raw values are kept verbatim, empty ones included; older
		// locations are normalized first
		rawSources := []Source{
			raw.src(SourceRawWindow, "spec", f.name),
			level2.src(SourceRawBackup, "spec", f.name),
		}
		if !quotationLevelKeys[f.name] {
			rawSources = append(rawSources, level2.src(SourceRawBackup, f.name))
		}
		res := Resolve(f.name, toText, "", rawSources...)
		if res.Source == SourceDefault {
			res = Resolve(f.name, legacyConv, *ref, specs.srcAny(SourceLegacySpec, nil, names...))
		}
		*ref = res.Value
	}
	for _, f := range boolFields {
		ref := f.ref(&spec)
		names := append([]string{f.name}, f.aliases...)
		*ref = Resolve(f.name, toBool, *ref,
			raw.src(SourceRawWindow, "spec", f.name),
			level2.src(SourceRawBackup, "spec", f.name),
			level2.src(SourceRawBackup, f.name),
			specs.srcAny(SourceLegacySpec, nil, names...),
		).Value
	}
	return spec
}

// decodePricing resolves the four inputs and their override flags. Inputs
// with no stored value are computed from the decoded spec; totals are always
// re-derived. A record without override flags (legacy shape) marks every
// stored input that differs from the computed value as overridden, so the
// next reprice keeps it.
func decodePricing(w entities.WindowInstance, raw, level2, flat node) entities.PricingBreakdown {
	auto := pricing.Default().AutoPopulate(w).Pricing

	field := func(f entities.PricingField, computed float64) (float64, bool) {
		name := string(f)
		in := Resolve(name, toFloat, computed,
			raw.src(SourceRawWindow, "pricing", name),
			level2.src(SourceRawBackup, "pricing", name),
			level2.src(SourceRawBackup, name),
			flat.src(SourceFlat, "pricing", name),
		)
		flag := Resolve(name, toBool, false,
			raw.src(SourceRawWindow, "pricing", "overrides", name),
			level2.src(SourceRawBackup, "pricing", "overrides", name),
		)
		if flag.Source == SourceDefault && in.Source != SourceDefault {
			return in.Value, in.Value != computed
		}
		return in.Value, flag.Value
	}

	p := entities.PricingBreakdown{Quantity: w.Spec.Quantity}
	p.UnitPrice, p.Overrides.UnitPrice = field(entities.PricingUnitPrice, auto.UnitPrice)
	p.TransportationCost, p.Overrides.Transportation = field(entities.PricingTransportation, auto.TransportationCost)
	p.LoadingCost, p.Overrides.Loading = field(entities.PricingLoading, auto.LoadingCost)
	p.TaxRate, p.Overrides.TaxRate = field(entities.PricingTaxRate, auto.TaxRate)
	return pricing.Derive(p)
}
