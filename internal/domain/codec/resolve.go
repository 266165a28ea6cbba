package codec

// SourceDefault names the terminal fallback of a resolution.
const SourceDefault = "default"

// Source is one candidate location of a field. OK is false when the location
// does not exist in the record at all.
type Source struct {
	Name  string
	Value any
	OK    bool
}

// Resolution records the value a field resolved to and which source won.
type Resolution[T any] struct {
	Field  string
	Value  T
	Source string
}

// Resolve walks sources in order and returns the first value conv accepts.
// Missing or malformed candidates are skipped; fallback is used when none
// qualifies.
func Resolve[T any](field string, conv func(any) (T, bool), fallback T, sources ...Source) Resolution[T] {
	for _, s := range sources {
		if !s.OK || s.Value == nil {
			continue
		}
		if v, ok := conv(s.Value); ok {
			return Resolution[T]{Field: field, Value: v, Source: s.Name}
		}
	}
	return Resolution[T]{Field: field, Value: fallback, Source: SourceDefault}
}

// node is a loosely typed JSON object.
type node map[string]any

func asNode(v any) node {
	if m, ok := v.(map[string]any); ok {
		return node(m)
	}
	return nil
}

// get follows a path of object keys. It never panics on missing or
// wrongly-typed intermediate values.
func (n node) get(path ...string) (any, bool) {
	var cur any = map[string]any(n)
	if n == nil {
		return nil, false
	}
	for _, k := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func (n node) child(path ...string) node {
	v, _ := n.get(path...)
	return asNode(v)
}

func (n node) src(name string, path ...string) Source {
	v, ok := n.get(path...)
	return Source{Name: name, Value: v, OK: ok}
}

// srcAny returns the first existing key among names under prefix.
func (n node) srcAny(name string, prefix []string, names ...string) Source {
	for _, k := range names {
		p := append(append([]string{}, prefix...), k)
		if v, ok := n.get(p...); ok && v != nil {
			return Source{Name: name, Value: v, OK: true}
		}
	}
	return Source{Name: name}
}
