package domain

// missing is the type of [Missing].
type missing struct{}

// String implements [fmt.Stringer].
func (missing) String() string { return "undefined" }

// Missing is returned by [Resolver.Resolve] when a path cannot be followed.
// It plays the role of an undefined value: operators receive it as the
// resolved value and it is never returned as an error.
var Missing any = missing{}

// IsMissing reports whether v is [Missing].
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// FilterFunc is a binary predicate receiving the resolved value (or the whole
// item) and the operand bound when the filter was built.
type FilterFunc = func(value any, operand any) bool

// Operator is a named entry of a [Catalog].
type Operator struct {
	// Name is the name the operator was looked up by.
	Name string
	// Fn evaluates a value against an operand.
	Fn FilterFunc
	// Prepare validates and normalizes an operand once, when a filter is
	// built. It may be nil.
	Prepare func(operand any) (any, error)
}

// Coercion identifies the conversion applied to an order key.
type Coercion uint8

// Supported coercions.
const (
	NoCoercion Coercion = iota
	String
	Number
	Boolean
	Date
)

// String implements [fmt.Stringer].
func (c Coercion) String() string {
	switch c {
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Date:
		return "Date"
	default:
		return ""
	}
}

// OrderTerm represents a single key of a multi-key sort.
type OrderTerm struct {
	// Path is the property path of the key.
	Path []string
	// Coercion is applied to the resolved key before comparing.
	Coercion Coercion
	// Descending reverses the order of this key.
	Descending bool
}

// SelectTerm represents one field of a projected record.
type SelectTerm struct {
	// Path is the source property path.
	Path []string
	// Alias is the key of the value in the projected record.
	Alias string
}

// Record is the output of a projection.
type Record = map[string]any

// Pagination is the result of eagerly splitting a result set in pages.
type Pagination struct {
	TotalResults int
	TotalPages   int
	Pages        [][]any
}
