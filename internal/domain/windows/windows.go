// Package windows implements the multi-window operations of a quotation:
// creating, adding, removing, duplicating, renaming and selecting windows.
//
// Every operation works on the aggregate in place and leaves it untouched
// when it returns an error.
package windows

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrWindowNotFound = errors.New("window not found")

const copySuffix = " (Copy)"

var numberedName = regexp.MustCompile(`^Window (\d+)\b`)

// CreateDefault builds a window with class defaults, priced from the default
// table. Unknown archetypes become sliding.
func CreateDefault(archetype entities.WindowArchetype, number int) entities.WindowInstance {
	if !catalog.IsArchetype(archetype) {
		archetype = entities.DefaultArchetype
	}
	if number < 1 {
		number = 1
	}
	w := entities.WindowInstance{
		ID:            uuid.NewString(),
		Name:          DefaultName(number),
		Archetype:     archetype,
		Configuration: entities.DefaultConfiguration(archetype),
		Spec:          entities.DefaultWindowSpec(),
	}
	return pricing.Default().AutoPopulate(w)
}

func DefaultName(n int) string { return fmt.Sprintf("Window %d", n) }

// NextWindowNumber is one more than the highest "Window N" number in use,
// so removals and duplicates never cause a number to be reused.
func NextWindowNumber(q *entities.Quotation) int {
	max := 0
	for _, w := range q.Windows {
		m := numberedName.FindStringSubmatch(w.Name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

func Find(q *entities.Quotation, id string) (int, bool) {
	for i := range q.Windows {
		if q.Windows[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Add appends w and makes it the active window. An empty id is generated.
func Add(q *entities.Quotation, w entities.WindowInstance) (entities.WindowInstance, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	} else if _, ok := Find(q, w.ID); ok {
		return entities.WindowInstance{}, &entities.InvariantViolation{Operation: "add", Reason: "window id " + w.ID + " already exists"}
	}
	if strings.TrimSpace(w.Name) == "" {
		w.Name = DefaultName(NextWindowNumber(q))
	}
	if w.Configuration == nil || w.Configuration.Archetype() != w.Archetype {
		w.Configuration = entities.DefaultConfiguration(w.Archetype)
	}
	q.Windows = append(q.Windows, w)
	q.ActiveWindowID = w.ID
	return w, nil
}

// Remove deletes a window. Removing the last one is refused. When the active
// window goes, the next window (or the previous one at the end) takes over.
func Remove(q *entities.Quotation, id string) error {
	idx, ok := Find(q, id)
	if !ok {
		return ErrWindowNotFound
	}
	if len(q.Windows) <= 1 {
		return &entities.InvariantViolation{Operation: "remove", Reason: "a quotation must keep at least one window"}
	}
	wasActive := ActiveIndex(q) == idx
	q.Windows = append(q.Windows[:idx:idx], q.Windows[idx+1:]...)
	if wasActive {
		if idx >= len(q.Windows) {
			idx = len(q.Windows) - 1
		}
		q.ActiveWindowID = q.Windows[idx].ID
	}
	return nil
}

// Duplicate copies a window under a new id, names it "<name> (Copy)" and
// inserts it right after the source. The copy becomes active.
func Duplicate(q *entities.Quotation, id string) (entities.WindowInstance, error) {
	idx, ok := Find(q, id)
	if !ok {
		return entities.WindowInstance{}, ErrWindowNotFound
	}
	dup := q.Windows[idx].Clone()
	dup.ID = uuid.NewString()
	dup.Name = q.Windows[idx].Name + copySuffix

	out := make([]entities.WindowInstance, 0, len(q.Windows)+1)
	out = append(out, q.Windows[:idx+1]...)
	out = append(out, dup)
	out = append(out, q.Windows[idx+1:]...)
	q.Windows = out
	q.ActiveWindowID = dup.ID
	return dup, nil
}

// Rename sets a window's name. A blank name reverts to the next free
// "Window N".
func Rename(q *entities.Quotation, id, name string) (string, error) {
	idx, ok := Find(q, id)
	if !ok {
		return "", ErrWindowNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName(NextWindowNumber(q))
	}
	q.Windows[idx].Name = name
	return name, nil
}

func SetActive(q *entities.Quotation, id string) error {
	if _, ok := Find(q, id); !ok {
		return ErrWindowNotFound
	}
	q.ActiveWindowID = id
	return nil
}

// ActiveIndex returns the position of the active window, defaulting to the
// first when ActiveWindowID is unset or stale. -1 for an empty quotation.
func ActiveIndex(q *entities.Quotation) int {
	if len(q.Windows) == 0 {
		return -1
	}
	if idx, ok := Find(q, q.ActiveWindowID); ok {
		return idx
	}
	return 0
}

func Active(q *entities.Quotation) (entities.WindowInstance, bool) {
	idx := ActiveIndex(q)
	if idx < 0 {
		return entities.WindowInstance{}, false
	}
	return q.Windows[idx], true
}

// EnsureWindows restores the structural invariants: at least one window and
// a valid active id.
func EnsureWindows(q *entities.Quotation, archetype entities.WindowArchetype) {
	if len(q.Windows) == 0 {
		q.Windows = []entities.WindowInstance{CreateDefault(archetype, 1)}
	}
	q.ActiveWindowID = q.Windows[ActiveIndex(q)].ID
}
