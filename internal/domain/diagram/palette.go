package diagram

import "strings"

const (
	FallbackFrameColor  = "#9E9E9E"
	FallbackGlassColor  = "#CFE8F7"
	FallbackGrilleColor = "#FFFFFF"
)

type pair struct{ a, b string }

var framePalette = map[pair]string{
	{"aluminum", "white"}:   "#F4F4F4",
	{"aluminum", "black"}:   "#2B2B2B",
	{"aluminum", "silver"}:  "#C0C0C0",
	{"aluminum", "bronze"}:  "#8C6A3F",
	{"aluminum", "grey"}:    "#7D7F82",
	{"upvc", "white"}:       "#FAFAFA",
	{"upvc", "ivory"}:       "#F3EBD6",
	{"upvc", "grey"}:        "#8A8D90",
	{"upvc", "black"}:       "#333333",
	{"wood", "natural"}:     "#A0703C",
	{"wood", "walnut"}:      "#5D4037",
	{"wood", "teak"}:        "#8B5A2B",
	{"wood", "white"}:       "#EFE9E1",
	{"steel", "black"}:      "#1F1F1F",
	{"steel", "grey"}:       "#6E7378",
	{"fiberglass", "white"}: "#F7F7F5",
	{"composite", "grey"}:   "#767B80",
}

var glassPalette = map[pair]string{
	{"single", "clear"}:      "#CFE8F7",
	{"double", "clear"}:      "#C4E1F5",
	{"triple", "clear"}:      "#B9DAF2",
	{"low-e", "clear"}:       "#C9E6E8",
	{"laminated", "clear"}:   "#D3E9F5",
	{"tempered", "clear"}:    "#CDE6F6",
	{"single", "bronze"}:     "#C8A97E",
	{"double", "bronze"}:     "#BE9E72",
	{"single", "grey"}:       "#9EA7AD",
	{"double", "grey"}:       "#939CA3",
	{"single", "blue"}:       "#9CC3E0",
	{"double", "blue"}:       "#90B9D9",
	{"single", "green"}:      "#A8D5BA",
	{"double", "green"}:      "#9CCBAF",
	{"single", "reflective"}: "#B0BEC5",
	{"double", "reflective"}: "#A4B3BB",
}

var grillePalette = map[string]string{
	"white":  "#FFFFFF",
	"black":  "#212121",
	"bronze": "#8C6A3F",
	"brass":  "#B5A642",
	"silver": "#C0C0C0",
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// FrameColor resolves (material, color); unknown pairs get FallbackFrameColor.
func FrameColor(material, color string) string {
	if c, ok := framePalette[pair{norm(material), norm(color)}]; ok {
		return c
	}
	return FallbackFrameColor
}

// GlassColor resolves (glassType, tint); unknown pairs get FallbackGlassColor.
func GlassColor(glassType, tint string) string {
	if c, ok := glassPalette[pair{norm(glassType), norm(tint)}]; ok {
		return c
	}
	return FallbackGlassColor
}

func GrilleColor(color string) string {
	if c, ok := grillePalette[norm(color)]; ok {
		return c
	}
	return FallbackGrilleColor
}
