// Package marshal converts Go values into JavaScript literal source.
//
// Values are first turned into ast expressions which are then rendered with
// the minimum code size printer, so the output of ToJSLiteral is exactly what
// the same expression would look like inside a generated program.
package marshal

import (
	"cmp"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/generator"
)

var (
	// ErrUnsupportedType is returned for values that have no JavaScript
	// literal form, e.g. structs, channels and funcs.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrTypeMismatch is returned when a value cannot be converted to the
	// requested Type.
	ErrTypeMismatch = errors.New("type mismatch")
)

var minimal = generator.Settings{MinimumCodeSize: true}

type options struct {
	surroundingVar bool
}

// Option configures ToJSLiteral and ToJSLiteralAs.
type Option func(*options)

// WithSurroundingVar renders a top-level array or object as
// "var x=<literal>;x", a program that evaluates to the value.
func WithSurroundingVar(v bool) Option {
	return func(o *options) {
		o.surroundingVar = v
	}
}

// ToJSLiteral detects the representation of v and returns its JavaScript
// source.
func ToJSLiteral(v any, opts ...Option) (string, error) {
	return ToJSLiteralAs(v, Any, opts...)
}

// ToJSLiteralAs returns the JavaScript source of v marshalled as t. A
// statement passed with type Any or Code is rendered as is.
func ToJSLiteralAs(v any, t Type, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if st, ok := v.(ast.Stmt); ok && (t.kind == KindAny || t.kind == KindCode) {
		return generator.Generate(st, minimal), nil
	}

	e, err := ToExprAs(v, t)
	if err != nil {
		return "", err
	}
	code := generator.Generate(e, minimal)
	if o.surroundingVar {
		switch e.(type) {
		case *ast.ArrayLiteral, *ast.ObjectLiteral:
			code = "var x=" + code + ";x"
		}
	}
	return code, nil
}

// ToExpr detects the representation of v and returns it as an expression.
func ToExpr(v any) (ast.Expr, error) {
	return ToExprAs(v, Any)
}

// ToExprAs returns v marshalled as t.
func ToExprAs(v any, t Type) (ast.Expr, error) {
	return expr(v, t)
}

func expr(v any, t Type) (ast.Expr, error) {
	v, err := resolve(v)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return ast.Null(), nil
	}

	switch t.kind {
	case KindAny:
		return auto(v)
	case KindBool:
		if b, ok := reflectBool(v); ok {
			return ast.Bool(b), nil
		}
	case KindInt:
		return toInt(v)
	case KindDouble:
		return toDouble(v)
	case KindDecimal:
		if d, ok := toDecimal(v); ok {
			return ast.Decimal(d), nil
		}
	case KindChar:
		return toChar(v)
	case KindString:
		return toString(v)
	case KindCode:
		return toCode(v)
	case KindList:
		return list(v, t.Elem())
	case KindMap:
		return object(v, t.Key(), t.Elem())
	}
	return nil, mismatch(v, t)
}

func mismatch(v any, t Type) error {
	return fmt.Errorf("%w: cannot marshal %T as %s", ErrTypeMismatch, v, t)
}

func unsupported(v any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// resolve strips pointers and turns YAML scalars, aliases and documents into
// plain Go values. Sequence and mapping nodes are kept.
func resolve(v any) (any, error) {
	for {
		switch x := v.(type) {
		case nil:
			return nil, nil
		case ast.Node:
			if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
				return nil, nil
			}
			return x, nil
		case *big.Int:
			if x == nil {
				return nil, nil
			}
			return x, nil
		case yaml.Node:
			v = &x
			continue
		case *yaml.Node:
			if x == nil {
				return nil, nil
			}
			switch x.Kind {
			case yaml.DocumentNode:
				if len(x.Content) == 0 {
					return nil, nil
				}
				v = x.Content[0]
				continue
			case yaml.AliasNode:
				v = x.Alias
				continue
			case yaml.ScalarNode:
				return scalar(x)
			}
			return x, nil
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			return v, nil
		}
		if rv.IsNil() {
			return nil, nil
		}
		v = rv.Elem().Interface()
	}
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: yaml bool %q: %v", ErrTypeMismatch, n.Value, err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(n.Value, "_", ""))
		if err != nil {
			return nil, fmt.Errorf("%w: yaml int %q: %v", ErrTypeMismatch, n.Value, err)
		}
		return d, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: yaml float %q: %v", ErrTypeMismatch, n.Value, err)
		}
		return f, nil
	}
	return n.Value, nil
}

func auto(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case ast.Expr:
		return x, nil
	case ast.Node:
		return ast.Direct(generator.Generate(x, minimal)), nil
	case Rune:
		return ast.Char(rune(x)), nil
	case []byte:
		return ast.String(string(x)), nil
	case json.Number:
		return number(x)
	case decimal.Decimal:
		return ast.Decimal(x), nil
	case *big.Int:
		return ast.Decimal(decimal.NewFromBigInt(x, 0)), nil
	case *yaml.Node:
		switch x.Kind {
		case yaml.SequenceNode:
			return list(x, Any)
		case yaml.MappingNode:
			return object(x, Any, Any)
		}
		return nil, unsupported(v)
	case OrderedMap:
		return object(x, Any, Any)
	case map[string]any:
		return stringMap(x)
	case encoding.TextMarshaler:
		return text(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return ast.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintExpr(rv.Uint()), nil
	case reflect.Float32:
		return ast.Float(float32(rv.Float())), nil
	case reflect.Float64:
		return ast.Double(rv.Float()), nil
	case reflect.String:
		return ast.String(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return ast.String(string(rv.Bytes())), nil
		}
		return list(v, Any)
	case reflect.Array:
		return list(v, Any)
	case reflect.Map:
		return object(v, Any, Any)
	}
	return nil, unsupported(v)
}

// text covers values such as time.Time that know their own textual form.
func text(m encoding.TextMarshaler) (ast.Expr, error) {
	b, err := m.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrTypeMismatch, m, err)
	}
	return ast.String(string(b)), nil
}

func uintExpr(u uint64) ast.Expr {
	if u > math.MaxInt64 {
		return ast.Decimal(decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0))
	}
	return ast.Int(u)
}

// number keeps integral JSON numbers exact and renders every other number
// with its decimal text.
func number(n json.Number) (ast.Expr, error) {
	if i, err := n.Int64(); err == nil {
		return ast.Int(i), nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil, fmt.Errorf("%w: json number %q", ErrTypeMismatch, n.String())
	}
	return ast.Decimal(d), nil
}

func reflectBool(v any) (bool, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

func toInt(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ast.Int(i), nil
		}
		if d, ok := toDecimal(x); ok {
			return ast.Decimal(d.Truncate(0)), nil
		}
	case decimal.Decimal:
		return ast.Decimal(x.Truncate(0)), nil
	case *big.Int:
		return ast.Decimal(decimal.NewFromBigInt(x, 0)), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintExpr(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := math.Trunc(rv.Float())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return ast.Int(int64(f)), nil
		}
		return ast.Decimal(decimal.NewFromFloat(f)), nil
	}
	return nil, mismatch(v, Int)
}

func toDouble(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return ast.Double(f), nil
		}
	case decimal.Decimal:
		f, _ := x.Float64()
		return ast.Double(f), nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return ast.Double(f), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.Double(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ast.Double(float64(rv.Uint())), nil
	case reflect.Float32:
		return ast.Float(float32(rv.Float())), nil
	case reflect.Float64:
		return ast.Double(rv.Float()), nil
	}
	return nil, mismatch(v, Double)
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case decimal.Decimal:
		return x, true
	case *big.Int:
		return decimal.NewFromBigInt(x, 0), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}
		if rv.Kind() == reflect.Float32 {
			return decimal.NewFromFloat32(float32(f)), true
		}
		return decimal.NewFromFloat(f), true
	}
	return decimal.Decimal{}, false
}

func toChar(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case Rune:
		return ast.Char(rune(x)), nil
	case json.Number:
		return nil, mismatch(v, Char)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int32, reflect.Uint16:
		var r rune
		if rv.Kind() == reflect.Int32 {
			r = rune(rv.Int())
		} else {
			r = rune(rv.Uint())
		}
		if utf8.ValidRune(r) {
			return ast.Char(r), nil
		}
	case reflect.String:
		if s := rv.String(); utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			return ast.Char(r), nil
		}
	}
	return nil, mismatch(v, Char)
}

func toString(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case Rune:
		return ast.Char(rune(x)), nil
	case []byte:
		return ast.String(string(x)), nil
	case json.Number:
		return ast.String(x.String()), nil
	case decimal.Decimal:
		return ast.String(x.String()), nil
	case *big.Int:
		return ast.String(x.String()), nil
	case encoding.TextMarshaler:
		return text(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return ast.String(rv.String()), nil
	case reflect.Bool:
		return ast.String(strconv.FormatBool(rv.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.String(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ast.String(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32:
		return ast.String(strconv.FormatFloat(rv.Float(), 'g', -1, 32)), nil
	case reflect.Float64:
		return ast.String(strconv.FormatFloat(rv.Float(), 'g', -1, 64)), nil
	}
	return nil, mismatch(v, String)
}

func toCode(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case ast.Expr:
		return x, nil
	case ast.Node:
		return ast.Direct(generator.Generate(x, minimal)), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return ast.Direct(rv.String()), nil
	}
	return nil, mismatch(v, Code)
}

func list(v any, elem Type) (ast.Expr, error) {
	arr := ast.Array()
	add := func(e any) error {
		x, err := expr(e, elem)
		if err != nil {
			return err
		}
		arr.Add(x)
		return nil
	}

	if n, ok := v.(*yaml.Node); ok {
		if n.Kind != yaml.SequenceNode {
			return nil, mismatch(v, ListOf(elem))
		}
		for _, c := range n.Content {
			if err := add(c); err != nil {
				return nil, err
			}
		}
		return arr, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return ast.Null(), nil
		}
	case reflect.Array:
	default:
		return nil, mismatch(v, ListOf(elem))
	}
	for i := 0; i < rv.Len(); i++ {
		if err := add(rv.Index(i).Interface()); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

func object(v any, key, value Type) (ast.Expr, error) {
	obj := ast.Object()
	add := func(k, val any) error {
		name, err := keyName(k, key)
		if err != nil {
			return err
		}
		x, err := expr(val, value)
		if err != nil {
			return err
		}
		obj.Add(name, x)
		return nil
	}

	switch x := v.(type) {
	case OrderedMap:
		for _, p := range x {
			if err := add(p.Key, p.Value); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case *yaml.Node:
		if x.Kind != yaml.MappingNode {
			return nil, mismatch(v, MapOf(key, value))
		}
		for i := 0; i+1 < len(x.Content); i += 2 {
			if err := add(x.Content[i], x.Content[i+1]); err != nil {
				return nil, err
			}
		}
		return obj, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, mismatch(v, MapOf(key, value))
	}
	if rv.IsNil() {
		return ast.Null(), nil
	}
	// NaN keys cannot be looked up again, so pairs are taken from the iterator.
	type entry struct{ k, v reflect.Value }
	entries := make([]entry, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		entries = append(entries, entry{it.Key(), it.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return compareKeys(a.k, b.k) })
	for _, e := range entries {
		if err := add(e.k.Interface(), e.v.Interface()); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// stringMap is the common shape of decoded JSON and YAML documents.
func stringMap(m map[string]any) (ast.Expr, error) {
	keys := maps.Keys(m)
	slices.Sort(keys)
	obj := ast.Object()
	for _, k := range keys {
		x, err := expr(m[k], Any)
		if err != nil {
			return nil, err
		}
		obj.Add(k, x)
	}
	return obj, nil
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return strings.Compare(a.String(), b.String())
		}
	}
	return strings.Compare(fmt.Sprint(valueOf(a)), fmt.Sprint(valueOf(b)))
}

func valueOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// keyName marshals k as t and returns the text of the resulting scalar.
// Object keys cannot hold arrays or objects.
func keyName(k any, t Type) (string, error) {
	e, err := expr(k, t)
	if err != nil {
		return "", err
	}
	switch x := e.(type) {
	case *ast.StringLiteral:
		return x.Value, nil
	case *ast.IntLiteral:
		return x.Literal(), nil
	case *ast.DoubleLiteral:
		return x.Literal(), nil
	case *ast.DecimalLiteral:
		return x.Literal(), nil
	case *ast.BooleanLiteral:
		return strconv.FormatBool(x.Value), nil
	case *ast.NullLiteral:
		return "null", nil
	case *ast.Identifier:
		return x.Name, nil
	}
	return "", fmt.Errorf("%w: object key %T is not a scalar", ErrUnsupportedType, k)
}
