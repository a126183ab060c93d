package models

// FieldComponent is the editor component backing a field.
type FieldComponent string

const (
	ComponentText     FieldComponent = "text"
	ComponentRichText FieldComponent = "richtext"
	ComponentRef      FieldComponent = "reference"
)

// Field describes one piece of authorable content. Names are unique within
// their scope (container and item scopes are separate namespaces) and the
// slice order is positionally meaningful to downstream consumers.
type Field struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Component   FieldComponent `json:"component"`
	ValueType   string         `json:"value_type"`
	Required    bool           `json:"required"`
	MaxLength   int            `json:"max_length,omitempty"`
	Description string         `json:"description,omitempty"`
}

// FieldNames returns the names of the given fields in order.
func FieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// HasField reports whether a field with the given name exists in the slice.
func HasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
