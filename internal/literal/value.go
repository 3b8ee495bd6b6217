package literal

// FilePath is a parsed path literal.
type FilePath string

// Entry is one key/value pair of a dictionary literal. Dictionaries keep
// their entries in source order and may have keys of any type.
type Entry struct {
	Key   any
	Value any
}

// Variant is a parsed union literal. Payload is nil for a unit variant.
type Variant struct {
	Name    string
	Payload any
}
