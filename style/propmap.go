package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/style/css"
)

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map contains zero or more property groups.
//
// PropertyMap implements cascade.Declaration.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

// PropertyMapFactory is a cascade.DeclarationFactory for property maps.
func PropertyMapFactory() cascade.Declaration {
	return NewPropertyMap()
}

var _ cascade.Declaration = &PropertyMap{}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Set sets a property, overwriting an existing value.
func (pmap *PropertyMap) Set(key string, value Property) {
	pmap.group(GroupNameFromPropertyKey(key)).Set(key, value)
}

// Add adds a property to this property map, if it is not already set.
func (pmap *PropertyMap) Add(key string, value Property) {
	pmap.group(GroupNameFromPropertyKey(key)).Add(key, value)
}

func (pmap *PropertyMap) group(groupname string) *PropertyGroup {
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	return group
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// Values are copied; the property map will not share the group with
// other maps.
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if group.Size() == 0 {
		return pmap
	}
	g := pmap.group(group.name)
	for k, v := range group.propsDict {
		if overwrite {
			g.Set(k, v)
		} else {
			g.Add(k, v)
		}
	}
	return pmap
}

// IsEmpty is true if no property is set.
//
// Interface cascade.Declaration
func (pmap *PropertyMap) IsEmpty() bool {
	if pmap == nil {
		return true
	}
	for _, g := range pmap.m {
		if g.Size() > 0 {
			return false
		}
	}
	return true
}

// ParseAttribute sets a property from its textual value. Compound properties
// like "margin" are split into their components. Unknown properties and
// malformed lengths are rejected.
//
// Interface cascade.Declaration
func (pmap *PropertyMap) ParseAttribute(name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty value for property %q", name)
	}
	if IsCompoundProperty(name) {
		kvs, err := SplitCompoundProperty(name, Property(value))
		if err != nil {
			return err
		}
		for _, kv := range kvs {
			if err := checkValue(kv.Key, kv.Value); err != nil {
				return err
			}
		}
		for _, kv := range kvs {
			pmap.Set(kv.Key, kv.Value)
		}
		return nil
	}
	if !IsKnownProperty(name) {
		return fmt.Errorf("unknown property %q", name)
	}
	if err := checkValue(name, Property(value)); err != nil {
		return err
	}
	pmap.Set(name, Property(value))
	return nil
}

func checkValue(key string, value Property) error {
	if key == "display" {
		if _, err := css.ParseDisplay(value.String()); err != nil {
			return fmt.Errorf("property %s: %w", key, err)
		}
		return nil
	}
	if !isDimension[key] || !looksNumeric(value.String()) {
		return nil
	}
	if _, err := css.ParseDimen(value.String()); err != nil {
		return fmt.Errorf("property %s: %w", key, err)
	}
	return nil
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// Dimension returns the value of a length property as a css.DimenT. Unset
// or non-dimension values yield css.Unset().
func (pmap *PropertyMap) Dimension(key string) css.DimenT {
	p, ok := pmap.Property(key)
	if !ok {
		return css.Unset()
	}
	d, err := css.ParseDimen(p.String())
	if err != nil {
		return css.Unset()
	}
	return d
}

// DisplayMode returns the value of property "display" as mode flags.
// Unset or unknown values yield css.NoMode.
func (pmap *PropertyMap) DisplayMode() css.DisplayMode {
	p, ok := pmap.Property("display")
	if !ok {
		return css.NoMode
	}
	mode, _ := css.ParseDisplay(p.String())
	return mode
}

// ComplementWith adds every property of other which is not set in pmap.
// other has to be a *PropertyMap, otherwise it is ignored.
//
// Interface cascade.Declaration
func (pmap *PropertyMap) ComplementWith(other cascade.Declaration) {
	o, ok := other.(*PropertyMap)
	if !ok {
		tracer().Errorf("property map cannot be complemented with %T", other)
		return
	}
	if o == nil {
		return
	}
	for _, g := range o.m {
		pmap.AddAllFromGroup(g, false)
	}
}

// String returns the properties as "key: value;" pairs, sorted by key.
//
// Interface cascade.Declaration
func (pmap *PropertyMap) String() string {
	if pmap == nil {
		return ""
	}
	var kvs []KeyValue
	for _, g := range pmap.m {
		kvs = append(kvs, g.Properties()...)
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	s := make([]string, len(kvs))
	for i, kv := range kvs {
		s[i] = kv.Key + ": " + kv.Value.String() + ";"
	}
	return strings.Join(s, " ")
}
