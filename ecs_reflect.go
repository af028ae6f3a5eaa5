package trilight

import (
	"reflect"
)

// Archetypes store one column per component type, each held as an
// `any` wrapping a []T built at runtime. These helpers cover the
// reflect plumbing for those columns.

func makeColumn(elem reflect.Type) any {
	return reflect.MakeSlice(reflect.SliceOf(elem), 0, 1).Interface()
}

func columnGet(column any, row int) reflect.Value {
	return reflect.ValueOf(column).Index(row)
}

func columnSet(column any, row int, val reflect.Value) {
	reflect.ValueOf(column).Index(row).Set(val)
}

func columnAppend(column any, val reflect.Value) any {
	return reflect.Append(reflect.ValueOf(column), val).Interface()
}

func columnLen(column any) int {
	return reflect.ValueOf(column).Len()
}
