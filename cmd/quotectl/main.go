// quotectl works on window quotations without the HTTP service.
//
// Usage:
//
//	quotectl price --archetype sliding --width 1800 --height 1200 --qty 2
//	quotectl scene --archetype bay --panels 4
//	quotectl decode --file record.json
//	quotectl render --file record.json --out quotation.pdf
//	quotectl catalog
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"window_quotation/internal/adapter/persistence/repository"
	"window_quotation/internal/adapter/render"
	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/codec"
	"window_quotation/internal/domain/diagram"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"
	"window_quotation/internal/domain/windows"
	"window_quotation/internal/usecase"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "quotectl",
		Usage:   "Price, draw and inspect window quotations offline",
		Version: version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max-quantity",
				Value:   50,
				Usage:   "Largest quantity accepted for a single window",
				EnvVars: []string{"QUOTE_MAX_QUANTITY"},
			},
		},
		Commands: []*cli.Command{
			priceCommand(),
			sceneCommand(),
			decodeCommand(),
			renderCommand(),
			catalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func windowFlags() []cli.Flag {
	def := entities.DefaultWindowSpec()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "archetype",
			Aliases: []string{"a"},
			Value:   string(entities.DefaultArchetype),
			Usage:   "Window archetype id or display name",
		},
		&cli.Float64Flag{Name: "width", Value: def.Width, Usage: "Width in mm"},
		&cli.Float64Flag{Name: "height", Value: def.Height, Usage: "Height in mm"},
		&cli.IntFlag{Name: "qty", Value: def.Quantity, Usage: "Number of units"},
		&cli.StringFlag{Name: "frame", Value: def.FrameMaterial, Usage: "Frame material"},
		&cli.StringFlag{Name: "frame-color", Value: def.FrameColor, Usage: "Frame color"},
		&cli.StringFlag{Name: "glass", Value: def.GlassType, Usage: "Glass type"},
		&cli.StringFlag{Name: "tint", Value: def.GlassTint, Usage: "Glass tint"},
		&cli.StringFlag{Name: "grille", Value: def.GrilleStyle, Usage: "Grille style"},
		&cli.IntFlag{Name: "panels", Usage: "Panel count (sliding, bay, double-hung, single-hung)"},
		&cli.StringFlag{Name: "pattern", Usage: "Configuration pattern id"},
	}
}

// windowFromFlags builds a single priced window from the shared flags.
func windowFromFlags(c *cli.Context) (entities.WindowInstance, error) {
	archetype, ok := catalog.LookupArchetype(c.String("archetype"))
	if !ok {
		return entities.WindowInstance{}, fmt.Errorf("unknown archetype %q", c.String("archetype"))
	}
	w := windows.CreateDefault(archetype, 1)
	w.Spec.Width = c.Float64("width")
	w.Spec.Height = c.Float64("height")
	w.Spec.Quantity = c.Int("qty")
	w.Spec.FrameMaterial = strings.ToLower(c.String("frame"))
	w.Spec.FrameColor = strings.ToLower(c.String("frame-color"))
	w.Spec.GlassType = strings.ToLower(c.String("glass"))
	w.Spec.GlassTint = strings.ToLower(c.String("tint"))
	w.Spec.GrilleStyle = strings.ToLower(c.String("grille"))

	if errs := w.Spec.Validate(c.Int("max-quantity")); len(errs) > 0 {
		return entities.WindowInstance{}, errs
	}

	var err error
	if c.IsSet("panels") {
		if w, err = windows.SetPanelCount(w, c.Int("panels")); err != nil {
			return entities.WindowInstance{}, err
		}
	}
	if c.IsSet("pattern") {
		if w, err = windows.SelectPattern(w, c.String("pattern")); err != nil {
			return entities.WindowInstance{}, err
		}
	}
	return pricing.Default().AutoPopulate(w), nil
}

func priceCommand() *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "Price a single window",
		Flags: append(windowFlags(),
			&cli.Float64Flag{Name: "unit-price", Usage: "Manual unit price override"},
			&cli.Float64Flag{Name: "tax-rate", Usage: "Manual tax rate override (percent)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "table", Usage: "Output format (table, json)"},
		),
		Action: runPrice,
	}
}

func runPrice(c *cli.Context) error {
	w, err := windowFromFlags(c)
	if err != nil {
		return err
	}
	calc := pricing.Default()
	if c.IsSet("unit-price") {
		if w, err = calc.ApplyOverride(w, entities.PricingUnitPrice, c.Float64("unit-price")); err != nil {
			return err
		}
	}
	if c.IsSet("tax-rate") {
		if w, err = calc.ApplyOverride(w, entities.PricingTaxRate, c.Float64("tax-rate")); err != nil {
			return err
		}
	}

	if c.String("format") == "json" {
		return writeJSON(os.Stdout, w.Pricing)
	}

	p := w.Pricing
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Archetype\t%s\n", catalog.DisplayName(w.Archetype))
	fmt.Fprintf(tw, "Size\t%.0f x %.0f mm (%.3f sq ft)\n", w.Spec.Width, w.Spec.Height, pricing.AreaSqFt(w.Spec.Width, w.Spec.Height))
	fmt.Fprintf(tw, "Unit price\t%.2f\n", p.UnitPrice)
	fmt.Fprintf(tw, "Quantity\t%d\n", p.Quantity)
	fmt.Fprintf(tw, "Total\t%.2f\n", p.TotalPrice)
	fmt.Fprintf(tw, "Transportation\t%.2f\n", p.TransportationCost)
	fmt.Fprintf(tw, "Loading\t%.2f\n", p.LoadingCost)
	fmt.Fprintf(tw, "Tax (%.2f%%)\t%.2f\n", p.TaxRate, p.TaxAmount)
	fmt.Fprintf(tw, "Grand total\t%.2f\n", p.GrandTotal)
	return tw.Flush()
}

func sceneCommand() *cli.Command {
	return &cli.Command{
		Name:   "scene",
		Usage:  "Print the diagram scene of a single window as JSON",
		Flags:  windowFlags(),
		Action: runScene,
	}
}

func runScene(c *cli.Context) error {
	w, err := windowFromFlags(c)
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, diagram.MapToScene(w.Archetype, w.Configuration, w.Spec))
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a stored quotation record (any version) and print it in the current shape",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"i"}, Usage: "Record JSON file (- for stdin)", Value: "-"},
		},
		Action: runDecode,
	}
}

func runDecode(c *cli.Context) error {
	data, err := readInput(c.String("file"))
	if err != nil {
		return err
	}
	q, err := codec.DecodeOrDefault(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using a default window\n", err)
	}
	rec, err := codec.Encode(q, pricing.Default().Rollup(q))
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	out, err := codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render the diagram sheets of a stored quotation record to PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"i"}, Usage: "Record JSON file (- for stdin)", Value: "-"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output PDF path", Required: true},
			&cli.StringFlag{Name: "company", Usage: "Company name printed in the page footer", EnvVars: []string{"QUOTE_COMPANY_NAME"}},
		},
		Action: runRender,
	}
}

func runRender(c *cli.Context) error {
	ctx := context.Background()
	data, err := readInput(c.String("file"))
	if err != nil {
		return err
	}
	q, err := codec.DecodeOrDefault(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using a default window\n", err)
	}
	number := strings.TrimSpace(q.Number)
	if number == "" {
		number = "DRAFT"
	}

	store := repository.NewQuotationMemoryStore()
	defer store.Close()
	if err := store.Set(ctx, number, entities.StoredQuotation{
		ID:              uuid.NewString(),
		QuotationNumber: number,
		Record:          data,
	}); err != nil {
		return err
	}

	uc := usecase.NewQuotationUseCase(store, nil, render.NewPDFRenderer(c.String("company")), usecase.Options{
		MaxQuantity: c.Int("max-quantity"),
	})
	doc, err := uc.RenderDiagrams(ctx, number)
	if err != nil {
		return fmt.Errorf("render diagrams: %w", err)
	}
	if err := os.WriteFile(c.String("out"), doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.String("out"), err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d sheet(s) to %s\n", len(q.Windows), c.String("out"))
	return nil
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List archetypes and their configuration patterns",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, a := range catalog.Archetypes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, a.Name, a.Description)
				for _, n := range catalog.PanelCounts(a.ID) {
					for _, p := range catalog.GetPatterns(a.ID, n) {
						roles := make([]string, 0, len(p.Roles))
						for _, r := range p.Roles {
							roles = append(roles, string(r))
						}
						fmt.Fprintf(tw, "\t%d panels: %s\t%s (%s)\n", n, p.ID, p.Name, strings.Join(roles, ", "))
					}
				}
			}
			return tw.Flush()
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
