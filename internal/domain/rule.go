package domain

// FieldType is the kind of a dynamic meta field.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeSelect FieldType = "select"
	FieldTypeDate   FieldType = "date"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeSelect, FieldTypeDate:
		return true
	}
	return false
}

// MetaFieldSpec describes one type-specific extra field. Options is set only
// for select fields and must be non-empty there. The JSON shape is a wire
// contract: downstream forms render directly from it.
type MetaFieldSpec struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// TypeRule is the structural requirement set for one transaction type.
// Immutable after registry construction.
type TypeRule struct {
	RequiresAccount       bool            `json:"requiresAccount"`
	RequiresStock         bool            `json:"requiresStock"`
	RequiresCash          bool            `json:"requiresCash"`
	RequiresReferenceCode bool            `json:"requiresReferenceCode"`
	MetaSchema            []MetaFieldSpec `json:"metaSchema,omitempty"`
}
