package structured

// Type is the JSON type of a schema node.
type Type string

const (
	TypeObject Type = "object"
	TypeArray  Type = "array"
	TypeString Type = "string"
)

// Schema describes the shape a backend is asked to produce. Backends translate
// it into their own structured-output format. Bounds declared here are guidance
// for the model; the decoded result is checked against the validate tags of the
// destination type.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	Required    []string
	// Order lists property names in the order they should be generated.
	Order     []string
	Items     *Schema
	MinLength *int64
	MaxLength *int64
	MinItems  *int64
	MaxItems  *int64
}

// Property is a named member of an object schema.
type Property struct {
	Name     string
	Schema   *Schema
	Optional bool
}

// Field declares a required object property.
func Field(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// OptionalField declares an object property the model may omit.
func OptionalField(name string, s *Schema) Property {
	return Property{Name: name, Schema: s, Optional: true}
}

// Object builds an object schema preserving property order.
func Object(props ...Property) *Schema {
	s := &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema, len(props)),
	}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
		if !p.Optional {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

// String builds a string schema bounded to [min, max] characters. A zero max
// leaves the upper bound open.
func String(min, max int64) *Schema {
	s := &Schema{Type: TypeString}
	if min > 0 {
		s.MinLength = &min
	}
	if max > 0 {
		s.MaxLength = &max
	}
	return s
}

// Text builds an unbounded string schema.
func Text() *Schema {
	return &Schema{Type: TypeString}
}

// ArrayOf builds an array schema holding exactly n items.
func ArrayOf(items *Schema, n int64) *Schema {
	return &Schema{Type: TypeArray, Items: items, MinItems: &n, MaxItems: &n}
}

// Describe sets the description and returns the schema.
func (s *Schema) Describe(description string) *Schema {
	s.Description = description
	return s
}
