package checkenv

import (
	"fmt"
	"reflect"
)

// NameList is an ordered list of environment variable names.
// An empty string is a placeholder for a conditionally omitted name and is
// skipped during normalization.
type NameList []string

// One wraps a lone name.
func One(name string) NameList { return NameList{name} }

// When returns name if cond holds and the empty placeholder otherwise.
//
//	Required: checkenv.NameList{"API_KEY", checkenv.When(prod, "SENTRY_DSN")}
func When(cond bool, name string) string {
	if !cond {
		return ""
	}
	return name
}

// Names coerces loosely typed values into a NameList. Strings, including
// named string types, are kept and *string is dereferenced. nil, false,
// numeric zero and "" are treated as placeholders. Anything else is rejected
// with ErrInvalidName.
func Names(vals ...any) (NameList, error) {
	out := make(NameList, 0, len(vals))
	for i, v := range vals {
		name, err := coerceName(v)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidName, i, err)
		}
		if name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}

// MustNames is like Names but panics on an invalid entry.
func MustNames(vals ...any) NameList {
	list, err := Names(vals...)
	if err != nil {
		panic(err)
	}
	return list
}

func coerceName(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case *string:
		if x == nil {
			return "", nil
		}
		return *x, nil
	case bool:
		if x {
			return "", fmt.Errorf("unexpected true")
		}
		return "", nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		if rv.IsZero() {
			return "", nil
		}
		return "", fmt.Errorf("unexpected non-zero number %v", v)
	case reflect.String:
		return rv.String(), nil
	}
	return "", fmt.Errorf("unsupported type %T", v)
}

// Normalize returns the names in declaration order with placeholders removed.
// Duplicates are kept.
func (l NameList) Normalize() []string {
	out := make([]string, 0, len(l))
	for _, name := range l {
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
