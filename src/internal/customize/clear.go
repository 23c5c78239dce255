package customize

import (
	"reflect"

	"publist/src/internal/entry"
)

// ClearEmpty deletes every field whose value is empty: nil, "", false, zero
// numbers and empty lists or maps.
func ClearEmpty(e entry.Entry) entry.Entry {
	for k, v := range e {
		if isEmpty(v) {
			delete(e, k)
		}
	}
	return e
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
