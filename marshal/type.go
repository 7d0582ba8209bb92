package marshal

// Kind identifies the shape a Type forces a value into.
type Kind int

const (
	KindAny Kind = iota
	KindBool
	KindInt
	KindDouble
	KindDecimal
	KindChar
	KindString
	KindCode
	KindList
	KindMap
)

var kindNames = [...]string{
	KindAny:     "any",
	KindBool:    "bool",
	KindInt:     "int",
	KindDouble:  "double",
	KindDecimal: "decimal",
	KindChar:    "char",
	KindString:  "string",
	KindCode:    "code",
	KindList:    "list",
	KindMap:     "map",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Type describes how a value is marshalled. The zero Type is Any.
type Type struct {
	kind Kind
	key  *Type
	elem *Type
}

var (
	// Any detects the representation from the dynamic type of the value.
	Any = Type{kind: KindAny}
	// Bool accepts booleans only.
	Bool = Type{kind: KindBool}
	// Int renders numbers as integers, truncating fractions.
	Int = Type{kind: KindInt}
	// Double renders numbers as floating point literals.
	Double = Type{kind: KindDouble}
	// Decimal renders numbers with their exact decimal text.
	Decimal = Type{kind: KindDecimal}
	// Char renders a rune or a one character string as a string literal.
	Char = Type{kind: KindChar}
	// String renders text and scalars as quoted strings.
	String = Type{kind: KindString}
	// Code inserts a string or a node as JavaScript source without quoting.
	Code = Type{kind: KindCode}
)

// ListOf returns the type of an array whose elements are marshalled as elem.
func ListOf(elem Type) Type {
	return Type{kind: KindList, elem: &elem}
}

// MapOf returns the type of an object literal. Keys are marshalled as key and
// must produce a scalar; values are marshalled as value.
func MapOf(key, value Type) Type {
	return Type{kind: KindMap, key: &key, elem: &value}
}

func (t Type) Kind() Kind {
	return t.kind
}

// Elem returns the element type of a list or the value type of a map, and
// Any for everything else.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Any
	}
	return *t.elem
}

// Key returns the key type of a map, and Any for everything else.
func (t Type) Key() Type {
	if t.key == nil {
		return Any
	}
	return *t.key
}

func (t Type) String() string {
	switch t.kind {
	case KindList:
		return "list<" + t.Elem().String() + ">"
	case KindMap:
		return "map<" + t.Key().String() + "," + t.Elem().String() + ">"
	}
	return t.kind.String()
}

// Rune marks a value as a single character. A plain rune is an int32 and
// marshals as a number.
type Rune rune

// Pair is one entry of an OrderedMap.
type Pair struct {
	Key   any
	Value any
}

// OrderedMap is a map that keeps its insertion order when marshalled. Later
// pairs overwrite the value of an earlier pair with the same key.
type OrderedMap []Pair

// Set appends a pair.
func (m *OrderedMap) Set(key, value any) *OrderedMap {
	*m = append(*m, Pair{Key: key, Value: value})
	return m
}
