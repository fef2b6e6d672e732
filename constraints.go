package modelcheck

// Model is the object under validation: an opaque mapping from field names to
// arbitrary values. The engine only reads it and never keeps a reference
// beyond a single validation call.
type Model map[string]any

// Constraint names form a closed set; anything outside it is a configuration
// error, not a validation failure.
type Constraint string

const (
	ConstraintPresence     Constraint = "presence"
	ConstraintAbsence      Constraint = "absence"
	ConstraintType         Constraint = "type"
	ConstraintInstance     Constraint = "instance"
	ConstraintLength       Constraint = "length"
	ConstraintEmail        Constraint = "email"
	ConstraintFormat       Constraint = "format"
	ConstraintConfirmation Constraint = "confirmation"
	ConstraintInclusion    Constraint = "inclusion"
	ConstraintExclusion    Constraint = "exclusion"
	ConstraintUUID         Constraint = "uuid"
	ConstraintCustom       Constraint = "custom"
)

// TypeTag is one of the canonical runtime type tags accepted by the type
// constraint. Number covers every integer, unsigned, and float kind; non-nil
// pointers classify as what they point to; nil values of any kind are nil.
type TypeTag string

const (
	TypeBool   TypeTag = "bool"
	TypeNumber TypeTag = "number"
	TypeString TypeTag = "string"
	TypeFunc   TypeTag = "func"
	TypeSlice  TypeTag = "slice"
	TypeMap    TypeTag = "map"
	TypeStruct TypeTag = "struct"
	TypeNil    TypeTag = "nil"
)

// Check pairs a constraint name with its options. A zero-value Options means
// "use the constraint's defaults".
type Check struct {
	Name    Constraint
	Options Options
}

// FieldConstraints is the ordered list of checks for one field. Slice order
// is execution order.
type FieldConstraints []Check

// FieldRules binds one field to its ordered constraints.
type FieldRules struct {
	Field       string
	Constraints FieldConstraints
}

// ModelConstraints is the ordered list of per-field rules for a whole model.
// Slice order is field execution order.
type ModelConstraints []FieldRules

// IntPtr is a convenience for building length bounds inline.
func IntPtr(n int) *int {
	return &n
}
