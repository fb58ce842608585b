package typer

import (
	"sort"
	"strings"

	"github.com/graph-gophers/graphql-go/introspection"
)

// TypeIsObject returns the first type in the tree of t named name.
func (t *Type) TypeIsObject(name string) *Type {
	return t.find(name, map[*Type]bool{})
}

func (t *Type) find(name string, seen map[*Type]bool) *Type {
	if t == nil || seen[t] {
		return nil
	}
	seen[t] = true

	if t.Named == name {
		return t
	}

	if t.Nullable != nil {
		return t.Nullable.find(name, seen)
	}

	if t.List != nil {
		return t.List.find(name, seen)
	}

	for _, v := range t.Object {
		if found := v.Field.find(name, seen); found != nil {
			return found
		}
	}
	return nil
}

// Type is a representation of a graphql primative (nullable, scalar, list, object or enum).
type Type struct {
	Nullable   *Type
	Scalar     Kind
	List       *Type
	Named      string
	Input      bool
	Interface  bool
	Implements []string
	Object     map[string]ObjectField
	Enum       []string
}

// Kind is the base value of a scalar.
type Kind struct {
	Value string
}

// ObjectField is a field of a graphql object. This is the underlying field, as well as any arguments to the
// function to fetch the field.
type ObjectField struct {
	Arguments []Argument
	Field     *Type
}

// Argument is a graphql function argument that has a name and a type.
type Argument struct {
	Name string
	Type *Type
}

// String returns the type in SDL notation, e.g. `[Creature]` or `String!`.
// Named types are referenced by name only.
func (t *Type) String() string {
	if t == nil {
		return "invalid nil type"
	}
	if t.Nullable != nil {
		return t.Nullable.base()
	}
	return t.base() + "!"
}

func (t *Type) base() string {
	switch {
	case t.Named != "":
		return t.Named
	case t.List != nil:
		return "[" + t.List.String() + "]"
	}
	return t.Scalar.Value
}

// Signature renders a field with its arguments, e.g.
// `CreatureByName(name: String!): Creature`.
func (f ObjectField) Signature(name string) string {
	var b strings.Builder
	b.WriteString(name)
	if len(f.Arguments) > 0 {
		b.WriteByte('(')
		for i, arg := range f.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Type.String())
		}
		b.WriteByte(')')
	}
	b.WriteString(": ")
	b.WriteString(f.Field.String())
	return b.String()
}

// Unwrap returns t without its nullable wrapper.
func (t *Type) Unwrap() *Type {
	if t.Nullable != nil {
		return t.Nullable
	}
	return t
}

// TypeTracker is used to cache type names and references to them. It's sole purpose is to
// resolver recusive references to graphql types.
type TypeTracker struct {
	atoms map[string]*Type
}

func wrap(nullable bool, t *Type) *Type {
	if nullable {
		return &Type{
			Nullable: t,
		}
	}
	return t
}

// resolveType attempts to rescusively resolve the graphql type a type. Nullable is a boxing around an internal type, so we have to unbox
// null tell the inner type that it's parent was nullable
func (tt *TypeTracker) resolveType(nullable bool, t *introspection.Type) *Type {

	switch t.Kind() {
	case "NON_NULL":
		return tt.resolveType(false, t.OfType())

	case "SCALAR":
		kindValue := "invalid scalar"
		if t.Name() != nil {
			kindValue = *t.Name()
		}
		r, ok := tt.atoms[kindValue]
		if !ok {
			r = &Type{
				Scalar: Kind{
					Value: kindValue,
				},
			}
			tt.atoms[kindValue] = r
		}
		return wrap(nullable, r)

		// An INPUT_OBJECT is walked like an object, its fields come from
		// InputFields and never take arguments.
	case "OBJECT", "INTERFACE", "INPUT_OBJECT":

		var interfaces []string
		if t.Interfaces() != nil {
			for _, i := range *t.Interfaces() {
				if i.Name() != nil {
					interfaces = append(interfaces, *i.Name())
				}
			}
		}

		obj := &Type{
			Implements: interfaces,
			Interface:  t.Kind() == "INTERFACE",
			Input:      t.Kind() == "INPUT_OBJECT",
		}

		if t.Name() != nil {
			obj.Named = *t.Name()
			r, ok := tt.atoms[*t.Name()]
			if ok {
				return wrap(nullable, r)
			}
			tt.atoms[*t.Name()] = obj
		}

		fields := make(map[string]ObjectField)

		if t.Fields(nil) != nil {
			for _, field := range *t.Fields(nil) {
				var fieldArgs []Argument
				for _, arg := range field.Args() {
					fieldArgs = append(fieldArgs, Argument{
						Name: arg.Name(),
						Type: tt.resolveType(true, arg.Type()),
					})
				}

				fields[field.Name()] = ObjectField{
					Field:     tt.resolveType(true, field.Type()),
					Arguments: fieldArgs,
				}
			}
		}

		if t.InputFields() != nil {
			for _, field := range *t.InputFields() {
				fields[field.Name()] = ObjectField{
					Field: tt.resolveType(true, field.Type()),
				}
			}
		}

		obj.Object = fields
		return wrap(nullable, obj)

	case "LIST":
		return wrap(nullable, &Type{
			List: tt.resolveType(true, t.OfType()),
		})

	case "ENUM":

		var valSet []string
		values := t.EnumValues(nil)
		if values != nil {
			for _, val := range *values {
				valSet = append(valSet, val.Name())
			}
		}

		e := &Type{
			Enum: valSet,
		}
		if t.Name() != nil {
			e.Named = *t.Name()
		}
		return wrap(nullable, e)
	}

	// Unions are not part of any schema we walk.
	return nil
}

// ParseTypes gets our type representation from a graphql schema. The returned
// map holds every named type reached, scalars included.
func ParseTypes(input []*introspection.Type) ([]*Type, map[string]*Type) {

	tt := TypeTracker{
		atoms: make(map[string]*Type),
	}

	var types []*Type

	for _, t := range input {

		// Skip interal types that are always in a graphql schema.
		if t.Name() == nil {
			continue
		} else if strings.HasPrefix(*t.Name(), "_") {
			continue
		} else {
			switch *t.Name() {
			case "String", "Boolean", "Float", "Int", "ID":
				continue
			}
		}

		r := tt.resolveType(true, t)
		if r == nil {
			continue
		}

		// All top level objects are nullable in a graphql schema.
		types = append(types, r)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].Unwrap().Named < types[j].Unwrap().Named
	})

	return types, tt.atoms
}

// Render prints types as SDL-like blocks, fields sorted by name.
func Render(types []*Type) string {
	var b strings.Builder
	for i, t := range types {
		t = t.Unwrap()
		if i > 0 {
			b.WriteByte('\n')
		}

		keyword := "type"
		switch {
		case t.Input:
			keyword = "input"
		case t.Interface:
			keyword = "interface"
		case t.Enum != nil:
			keyword = "enum"
		}
		b.WriteString(keyword + " " + t.Named + " {\n")

		for _, v := range t.Enum {
			b.WriteString("  " + v + "\n")
		}

		names := make([]string, 0, len(t.Object))
		for name := range t.Object {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString("  " + t.Object[name].Signature(name) + "\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
