package entities

// WindowArchetype identifies one of the fixed window categories a quotation
// line can be configured as.
type WindowArchetype string

const (
	ArchetypeSliding    WindowArchetype = "sliding"
	ArchetypeCasement   WindowArchetype = "casement"
	ArchetypeBay        WindowArchetype = "bay"
	ArchetypeAwning     WindowArchetype = "awning"
	ArchetypeFixed      WindowArchetype = "fixed"
	ArchetypePicture    WindowArchetype = "picture"
	ArchetypeDoubleHung WindowArchetype = "double-hung"
	ArchetypeSingleHung WindowArchetype = "single-hung"
	ArchetypePivot      WindowArchetype = "pivot"
)

// DefaultArchetype is used whenever a window has no resolvable archetype.
const DefaultArchetype = ArchetypeSliding

// ArchetypeInfo is the immutable catalog entry for an archetype.
type ArchetypeInfo struct {
	ID          WindowArchetype `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

// PanelRole tags a single panel of a configuration pattern.
type PanelRole string

const (
	RoleFixed      PanelRole = "Fixed"
	RoleSliding    PanelRole = "Sliding"
	RoleCasement   PanelRole = "Casement"
	RoleAwning     PanelRole = "Awning"
	RoleDoubleHung PanelRole = "DoubleHung"
	RoleSingleHung PanelRole = "SingleHung"
	RolePivot      PanelRole = "Pivot"
)

// ConfigurationPattern is a named, ordered sequence of panel roles valid for
// an archetype class and panel count. len(Roles) == PanelCount always holds.
type ConfigurationPattern struct {
	Class      WindowArchetype `json:"class"`
	PanelCount int             `json:"panelCount"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Roles      []PanelRole     `json:"roles"`
}
