package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/codec"
	"window_quotation/internal/domain/diagram"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"
	"window_quotation/internal/domain/windows"
	"window_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrWindowNotFound         = windows.ErrWindowNotFound
	ErrInvalidQuotationNumber = errors.New("invalid quotation number")
	ErrUnknownArchetype       = errors.New("unknown window archetype")
	ErrInvalidStatus          = errors.New("invalid quotation status")
	ErrStoreNotConfigured     = errors.New("quotation store not configured")
	ErrRendererNotConfigured  = errors.New("diagram renderer not configured")
)

// IQuotationUseCase exposes the quotation editing session.
//
// Every mutation follows the same cycle:
//   - load the aggregate (local store, then remote)
//   - apply the change in memory; on error nothing is saved
//   - reprice the edited window
//   - save (local first, then remote create-or-update by quotation number)
type IQuotationUseCase interface {
	Create(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error)
	Get(ctx context.Context, number string) (entities.Quotation, error)
	Save(ctx context.Context, q entities.Quotation) (entities.Quotation, error)

	AddWindow(ctx context.Context, number string, archetype entities.WindowArchetype) (entities.WindowInstance, error)
	RemoveWindow(ctx context.Context, number, windowID string) (entities.Quotation, error)
	DuplicateWindow(ctx context.Context, number, windowID string) (entities.WindowInstance, error)
	RenameWindow(ctx context.Context, number, windowID, name string) (entities.WindowInstance, error)
	SetActiveWindow(ctx context.Context, number, windowID string) (entities.Quotation, error)

	UpdateSpec(ctx context.Context, number, windowID string, spec entities.WindowSpec) (entities.WindowInstance, error)
	UpdateConfiguration(ctx context.Context, number, windowID string, in ConfigurationInput) (entities.WindowInstance, error)
	SetPricingOverride(ctx context.Context, number, windowID string, field entities.PricingField, value float64) (entities.WindowInstance, error)
	AutoPopulatePricing(ctx context.Context, number, windowID string) (entities.WindowInstance, error)

	Totals(ctx context.Context, number string) (entities.QuotationTotals, error)
	Scene(ctx context.Context, number, windowID string) (diagram.SceneDescription, error)
	Validate(ctx context.Context, number string) (entities.ValidationErrors, error)
	Submit(ctx context.Context, number string) (entities.Quotation, error)
	SetStatus(ctx context.Context, number string, status entities.QuotationStatus) (entities.Quotation, error)
	RenderDiagrams(ctx context.Context, number string) ([]byte, error)
}

type CreateQuotationInput struct {
	Client    entities.ClientInfo
	Company   entities.CompanyInfo
	Archetype entities.WindowArchetype
	Notes     string
}

// ConfigurationInput changes a window's archetype and/or configuration.
// A zero Archetype keeps the current one; a nil Configuration keeps (or, on
// archetype change, resets to) the class defaults. PanelCount and PatternID
// are shortcuts for the patterned classes.
type ConfigurationInput struct {
	Archetype     entities.WindowArchetype
	Configuration entities.Configuration
	PanelCount    *int
	PatternID     *string
}

type Options struct {
	MaxQuantity  int
	ValidityDays int
	NumberPrefix string
}

type QuotationUseCase struct {
	store    interfaces.IQuotationStore
	remote   interfaces.IRemoteQuoteService
	renderer interfaces.IDiagramRenderer
	calc     *pricing.Calculator
	opts     Options
	now      func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

// NewQuotationUseCase wires the use case. remote and renderer may be nil.
func NewQuotationUseCase(store interfaces.IQuotationStore, remote interfaces.IRemoteQuoteService, renderer interfaces.IDiagramRenderer, opts Options) *QuotationUseCase {
	if opts.MaxQuantity <= 0 {
		opts.MaxQuantity = 50
	}
	if opts.ValidityDays <= 0 {
		opts.ValidityDays = 30
	}
	if strings.TrimSpace(opts.NumberPrefix) == "" {
		opts.NumberPrefix = "QT"
	}
	return &QuotationUseCase{
		store:    store,
		remote:   remote,
		renderer: renderer,
		calc:     pricing.Default(),
		opts:     opts,
		now:      time.Now,
	}
}

func (u *QuotationUseCase) Create(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error) {
	archetype := entities.WindowArchetype(strings.TrimSpace(string(in.Archetype)))
	if archetype == "" {
		archetype = entities.DefaultArchetype
	}
	if !catalog.IsArchetype(archetype) {
		log.Printf("[quotation][usecase] create rejected archetype=%q", in.Archetype)
		return entities.Quotation{}, ErrUnknownArchetype
	}

	today := u.today()
	q := entities.Quotation{
		Number:     u.newNumber(today),
		Date:       today,
		ValidUntil: today.AddDate(0, 0, u.opts.ValidityDays),
		Client:     in.Client,
		Company:    in.Company,
		Status:     entities.QuotationStatusDraft,
		Notes:      in.Notes,
	}
	windows.EnsureWindows(&q, archetype)
	log.Printf("[quotation][usecase] create number=%s archetype=%s", q.Number, archetype)
	return u.Save(ctx, q)
}

func (u *QuotationUseCase) Get(ctx context.Context, number string) (entities.Quotation, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Quotation{}, ErrInvalidQuotationNumber
	}
	stored, err := u.load(ctx, number)
	if err != nil {
		return entities.Quotation{}, err
	}
	q, err := codec.DecodeOrDefault(stored.Record)
	if err != nil {
		log.Printf("[quotation][usecase] corrupt record, falling back to default window number=%s bytes=%d err=%v", number, len(stored.Record), err)
	}
	if strings.TrimSpace(q.Number) == "" {
		q.Number = number
	}
	return q, nil
}

// load reads the local cache first and falls back to the remote service,
// caching a remote hit locally.
func (u *QuotationUseCase) load(ctx context.Context, number string) (entities.StoredQuotation, error) {
	if u.store == nil {
		return entities.StoredQuotation{}, ErrStoreNotConfigured
	}
	stored, err := u.store.Get(ctx, number)
	if err != nil {
		log.Printf("[quotation][usecase] local get failed number=%s err=%v", number, err)
		return entities.StoredQuotation{}, err
	}
	if stored.ID != "" {
		return stored, nil
	}
	if u.remote == nil {
		return entities.StoredQuotation{}, ErrQuotationNotFound
	}

	remote, err := u.remote.FindByNumber(ctx, number)
	if err != nil {
		log.Printf("[quotation][usecase] remote lookup unavailable number=%s err=%v", number, err)
		return entities.StoredQuotation{}, ErrQuotationNotFound
	}
	if remote.ID == "" {
		return entities.StoredQuotation{}, ErrQuotationNotFound
	}
	if err := u.store.Set(ctx, number, remote); err != nil {
		log.Printf("[quotation][usecase] local cache fill failed number=%s err=%v", number, err)
	}
	return remote, nil
}

// Save encodes and persists q. The local store must succeed; the remote
// service is best effort.
func (u *QuotationUseCase) Save(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if u.store == nil {
		return entities.Quotation{}, ErrStoreNotConfigured
	}
	q.Number = strings.TrimSpace(q.Number)
	if q.Number == "" {
		return entities.Quotation{}, ErrInvalidQuotationNumber
	}
	if !q.Status.Valid() {
		q.Status = entities.QuotationStatusDraft
	}
	windows.EnsureWindows(&q, entities.DefaultArchetype)

	totals := u.calc.Rollup(q)
	rec, err := codec.Encode(q, totals)
	if err != nil {
		return entities.Quotation{}, err
	}

	existing, err := u.store.Get(ctx, q.Number)
	if err != nil {
		return entities.Quotation{}, err
	}
	if kept := codec.CorruptPayload(existing.Record); kept != "" {
		log.Printf("[quotation][usecase] keeping unreadable payload number=%s bytes=%d", q.Number, len(kept))
		rec.CorruptBackup = kept
	}
	data, err := codec.Marshal(rec)
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("marshal quotation %s: %w", q.Number, err)
	}
	now := u.now().UTC()
	stored := entities.StoredQuotation{
		ID:              existing.ID,
		QuotationNumber: q.Number,
		Status:          q.Status,
		ClientName:      q.Client.Name,
		GrandTotal:      totals.GrandTotal,
		WindowCount:     len(q.Windows),
		Record:          data,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       now,
	}
	if stored.ID == "" {
		stored.ID = uuid.NewString()
		stored.CreatedAt = now
	}

	if err := u.store.Set(ctx, q.Number, stored); err != nil {
		log.Printf("[quotation][usecase] local save failed number=%s err=%v", q.Number, err)
		return entities.Quotation{}, err
	}
	u.syncRemote(ctx, stored)
	log.Printf("[quotation][usecase] saved number=%s windows=%d grand_total=%s", q.Number, len(q.Windows), floatToString(totals.GrandTotal))
	return q, nil
}

// syncRemote pushes a saved quotation to the remote service: update when the
// number already exists there, create otherwise. Failures are logged only.
func (u *QuotationUseCase) syncRemote(ctx context.Context, stored entities.StoredQuotation) {
	if u.remote == nil {
		return
	}
	found, err := u.remote.FindByNumber(ctx, stored.QuotationNumber)
	if err != nil {
		log.Printf("[quotation][usecase] remote unavailable, kept locally number=%s err=%v", stored.QuotationNumber, err)
		return
	}
	if found.ID != "" {
		stored.ID = found.ID
		stored.CreatedAt = found.CreatedAt
		if _, err := u.remote.Update(ctx, found.ID, stored); err != nil {
			log.Printf("[quotation][usecase] remote update failed number=%s id=%s err=%v", stored.QuotationNumber, found.ID, err)
		}
		return
	}
	if _, err := u.remote.Create(ctx, stored); err != nil {
		log.Printf("[quotation][usecase] remote create failed number=%s err=%v", stored.QuotationNumber, err)
	}
}

// mutate runs fn against a freshly loaded aggregate and saves the result.
// When fn fails nothing is persisted.
func (u *QuotationUseCase) mutate(ctx context.Context, number, op string, fn func(q *entities.Quotation) error) (entities.Quotation, error) {
	q, err := u.Get(ctx, number)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := fn(&q); err != nil {
		log.Printf("[quotation][usecase] %s rejected number=%s err=%v", op, q.Number, err)
		return entities.Quotation{}, err
	}
	return u.Save(ctx, q)
}

// editWindow applies fn to one window (the active one when windowID is
// empty), makes it active and reprices it.
func (u *QuotationUseCase) editWindow(ctx context.Context, number, windowID, op string, fn func(w entities.WindowInstance) (entities.WindowInstance, error)) (entities.WindowInstance, error) {
	var edited entities.WindowInstance
	_, err := u.mutate(ctx, number, op, func(q *entities.Quotation) error {
		idx, err := resolveWindow(q, windowID)
		if err != nil {
			return err
		}
		w, err := fn(q.Windows[idx])
		if err != nil {
			return err
		}
		edited = u.calc.Recalculate(w)
		q.Windows[idx] = edited
		q.ActiveWindowID = edited.ID
		return nil
	})
	if err != nil {
		return entities.WindowInstance{}, err
	}
	return edited, nil
}

func resolveWindow(q *entities.Quotation, windowID string) (int, error) {
	windowID = strings.TrimSpace(windowID)
	if windowID == "" {
		if idx := windows.ActiveIndex(q); idx >= 0 {
			return idx, nil
		}
		return -1, ErrWindowNotFound
	}
	idx, ok := windows.Find(q, windowID)
	if !ok {
		return -1, ErrWindowNotFound
	}
	return idx, nil
}

func (u *QuotationUseCase) AddWindow(ctx context.Context, number string, archetype entities.WindowArchetype) (entities.WindowInstance, error) {
	if archetype == "" {
		archetype = entities.DefaultArchetype
	}
	if !catalog.IsArchetype(archetype) {
		return entities.WindowInstance{}, ErrUnknownArchetype
	}
	var added entities.WindowInstance
	_, err := u.mutate(ctx, number, "add window", func(q *entities.Quotation) error {
		var err error
		added, err = windows.Add(q, windows.CreateDefault(archetype, windows.NextWindowNumber(q)))
		return err
	})
	if err != nil {
		return entities.WindowInstance{}, err
	}
	return added, nil
}

func (u *QuotationUseCase) RemoveWindow(ctx context.Context, number, windowID string) (entities.Quotation, error) {
	return u.mutate(ctx, number, "remove window", func(q *entities.Quotation) error {
		return windows.Remove(q, strings.TrimSpace(windowID))
	})
}

func (u *QuotationUseCase) DuplicateWindow(ctx context.Context, number, windowID string) (entities.WindowInstance, error) {
	var dup entities.WindowInstance
	_, err := u.mutate(ctx, number, "duplicate window", func(q *entities.Quotation) error {
		idx, err := resolveWindow(q, windowID)
		if err != nil {
			return err
		}
		dup, err = windows.Duplicate(q, q.Windows[idx].ID)
		return err
	})
	if err != nil {
		return entities.WindowInstance{}, err
	}
	return dup, nil
}

func (u *QuotationUseCase) RenameWindow(ctx context.Context, number, windowID, name string) (entities.WindowInstance, error) {
	var renamed entities.WindowInstance
	_, err := u.mutate(ctx, number, "rename window", func(q *entities.Quotation) error {
		idx, err := resolveWindow(q, windowID)
		if err != nil {
			return err
		}
		if _, err := windows.Rename(q, q.Windows[idx].ID, name); err != nil {
			return err
		}
		renamed = q.Windows[idx]
		return nil
	})
	if err != nil {
		return entities.WindowInstance{}, err
	}
	return renamed, nil
}

func (u *QuotationUseCase) SetActiveWindow(ctx context.Context, number, windowID string) (entities.Quotation, error) {
	return u.mutate(ctx, number, "set active window", func(q *entities.Quotation) error {
		return windows.SetActive(q, strings.TrimSpace(windowID))
	})
}

// UpdateSpec replaces a window's spec. Out-of-range values are stored as
// entered; they only block Submit.
func (u *QuotationUseCase) UpdateSpec(ctx context.Context, number, windowID string, spec entities.WindowSpec) (entities.WindowInstance, error) {
	return u.editWindow(ctx, number, windowID, "update spec", func(w entities.WindowInstance) (entities.WindowInstance, error) {
		w.Spec = spec
		return w, nil
	})
}

func (u *QuotationUseCase) UpdateConfiguration(ctx context.Context, number, windowID string, in ConfigurationInput) (entities.WindowInstance, error) {
	return u.editWindow(ctx, number, windowID, "update configuration", func(w entities.WindowInstance) (entities.WindowInstance, error) {
		var err error
		if in.Archetype != "" && in.Archetype != w.Archetype {
			if !catalog.IsArchetype(in.Archetype) {
				return w, ErrUnknownArchetype
			}
			if w, err = windows.ChangeArchetype(w, in.Archetype); err != nil {
				return w, err
			}
		}
		if in.Configuration != nil {
			if w, err = windows.Configure(w, in.Configuration); err != nil {
				return w, err
			}
		}
		if in.PanelCount != nil {
			if w, err = windows.SetPanelCount(w, *in.PanelCount); err != nil {
				return w, err
			}
		}
		if in.PatternID != nil {
			if w, err = windows.SelectPattern(w, strings.TrimSpace(*in.PatternID)); err != nil {
				return w, err
			}
		}
		return w, nil
	})
}

func (u *QuotationUseCase) SetPricingOverride(ctx context.Context, number, windowID string, field entities.PricingField, value float64) (entities.WindowInstance, error) {
	return u.editWindow(ctx, number, windowID, "pricing override", func(w entities.WindowInstance) (entities.WindowInstance, error) {
		return u.calc.ApplyOverride(w, field, value)
	})
}

// AutoPopulatePricing discards the manual pricing of one window only.
func (u *QuotationUseCase) AutoPopulatePricing(ctx context.Context, number, windowID string) (entities.WindowInstance, error) {
	return u.editWindow(ctx, number, windowID, "auto-populate pricing", func(w entities.WindowInstance) (entities.WindowInstance, error) {
		return u.calc.AutoPopulate(w), nil
	})
}

func (u *QuotationUseCase) Totals(ctx context.Context, number string) (entities.QuotationTotals, error) {
	q, err := u.Get(ctx, number)
	if err != nil {
		return entities.QuotationTotals{}, err
	}
	return u.calc.Rollup(q), nil
}

func (u *QuotationUseCase) Scene(ctx context.Context, number, windowID string) (diagram.SceneDescription, error) {
	q, err := u.Get(ctx, number)
	if err != nil {
		return diagram.SceneDescription{}, err
	}
	idx, err := resolveWindow(&q, windowID)
	if err != nil {
		return diagram.SceneDescription{}, err
	}
	w := q.Windows[idx]
	return diagram.MapToScene(w.Archetype, w.Configuration, w.Spec), nil
}

// Validate runs the full submit validation without changing anything.
func (u *QuotationUseCase) Validate(ctx context.Context, number string) (entities.ValidationErrors, error) {
	q, err := u.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	return u.validate(q), nil
}

func (u *QuotationUseCase) validate(q entities.Quotation) entities.ValidationErrors {
	var errs entities.ValidationErrors
	for _, w := range q.Windows {
		for _, e := range w.Spec.Validate(u.opts.MaxQuantity) {
			e.WindowID = w.ID
			errs = append(errs, e)
		}
		for _, e := range pricing.ValidatePricing(w, u.opts.MaxQuantity) {
			if e.Field == "quantity" {
				continue // already reported by the spec check
			}
			errs = append(errs, e)
		}
	}
	return errs
}

// Submit moves a draft to submitted once every window passes validation.
func (u *QuotationUseCase) Submit(ctx context.Context, number string) (entities.Quotation, error) {
	return u.mutate(ctx, number, "submit", func(q *entities.Quotation) error {
		if q.Status != entities.QuotationStatusDraft {
			return &entities.InvariantViolation{Operation: "submit", Reason: "quotation is " + string(q.Status)}
		}
		if errs := u.validate(*q); len(errs) > 0 {
			return errs
		}
		q.Status = entities.QuotationStatusSubmitted
		return nil
	})
}

// SetStatus stores an externally decided status. Submitting always goes
// through Submit's validation.
func (u *QuotationUseCase) SetStatus(ctx context.Context, number string, status entities.QuotationStatus) (entities.Quotation, error) {
	status = entities.QuotationStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return entities.Quotation{}, ErrInvalidStatus
	}
	if status == entities.QuotationStatusSubmitted {
		return u.Submit(ctx, number)
	}
	return u.mutate(ctx, number, "set status", func(q *entities.Quotation) error {
		q.Status = status
		return nil
	})
}

// RenderDiagrams renders one sheet per window, in window order.
func (u *QuotationUseCase) RenderDiagrams(ctx context.Context, number string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrRendererNotConfigured
	}
	q, err := u.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	sheets := make([]interfaces.DiagramSheet, 0, len(q.Windows))
	for _, w := range q.Windows {
		sheets = append(sheets, interfaces.DiagramSheet{
			Title:    w.Name,
			Subtitle: fmt.Sprintf("%s | %s x %s mm | qty %d", catalog.DisplayName(w.Archetype), floatToString(w.Spec.Width), floatToString(w.Spec.Height), w.Spec.Quantity),
			Scene:    diagram.MapToScene(w.Archetype, w.Configuration, w.Spec),
		})
	}
	return u.renderer.Render(ctx, q.Number, sheets)
}

func (u *QuotationUseCase) today() time.Time {
	t := u.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (u *QuotationUseCase) newNumber(day time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", u.opts.NumberPrefix, day.Format("20060102"), suffix)
}
