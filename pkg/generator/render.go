package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/target"
)

// Data is the read-only context handed to a template
type Data struct {
	Date      time.Time
	Language  string
	Package   string
	Externals []string
	Structs   []ir.Struct
	// Enums is every struct's enums flattened, for templates that emit them in one block
	Enums []ir.Enum
}

// FuncMap builds the template helpers bound to r. Helpers take precedence
// over sprig functions of the same name.
func FuncMap(r target.Resolver) template.FuncMap {
	funcMap := template.FuncMap{}
	for k, v := range sprig.TxtFuncMap() {
		funcMap[k] = v
	}

	for _, kind := range target.IdentifierKinds {
		kind := kind
		funcMap[string(kind)] = func(raw string) string { return r.ResolveIdentifier(kind, raw) }
	}
	funcMap["propType"] = func(p ir.Property) string { return r.ResolveType(p) }
	funcMap["isOptional"] = func(p ir.Property) bool { return !p.IsRequired }
	funcMap["comment"] = formatComment

	return funcMap
}

// Render executes a template over data. It performs no resolution of its own;
// every language decision goes through the resolver helpers.
func Render(name string, text []byte, r target.Resolver, data Data) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(FuncMap(r)).Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// formatComment prefixes every line of s, handling multiline descriptions
func formatComment(prefix, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			out = append(out, strings.TrimRight(prefix, " "))
		} else {
			out = append(out, prefix+line)
		}
	}
	return strings.Join(out, "\n")
}

// memoResolver caches resolved types so that a pre-pass can register every
// external before the template reaches its import block. Entries are keyed by
// struct and property: each struct's properties warn once, and template
// lookups reuse the pre-pass result.
type memoResolver struct {
	target.Resolver
	session *target.Session
	types   map[memoKey]string
	// byProp serves template lookups, which carry no struct context
	byProp map[ir.Property]string
}

type memoKey struct {
	Struct string
	Prop   ir.Property
}

func newMemoResolver(r target.Resolver, session *target.Session) *memoResolver {
	return &memoResolver{
		Resolver: r,
		session:  session,
		types:    make(map[memoKey]string),
		byProp:   make(map[ir.Property]string),
	}
}

func (m *memoResolver) ResolveType(p ir.Property) string {
	if t, ok := m.byProp[p]; ok {
		return t
	}
	t := m.Resolver.ResolveType(p)
	m.byProp[p] = t
	return t
}

func (m *memoResolver) resolveIn(structName string, p ir.Property) string {
	key := memoKey{Struct: structName, Prop: p}
	if t, ok := m.types[key]; ok {
		return t
	}
	t := m.Resolver.ResolveType(p)
	m.types[key] = t
	if _, ok := m.byProp[p]; !ok {
		m.byProp[p] = t
	}
	return t
}

// resolveAll resolves every property of every struct once
func (m *memoResolver) resolveAll(structs []ir.Struct) {
	defer m.session.SetDefinition("")
	for _, s := range structs {
		m.session.SetDefinition(s.Name)
		for _, p := range s.Properties {
			m.resolveIn(s.Name, p)
		}
	}
}
