package trilight

import (
	"reflect"
	"testing"
)

func TestMakeColumn(t *testing.T) {
	col := makeColumn(reflect.TypeOf(0))
	if _, ok := col.([]int); !ok {
		t.Errorf("Expected []int column, got %T", col)
	}

	type pos struct{ X, Y float32 }
	col = makeColumn(reflect.TypeOf(pos{}))
	if _, ok := col.([]pos); !ok {
		t.Errorf("Expected []pos column, got %T", col)
	}
	if columnLen(col) != 0 {
		t.Errorf("Expected empty column, got len %d", columnLen(col))
	}
}

func TestColumnAppendGet(t *testing.T) {
	col := makeColumn(reflect.TypeOf(0))
	col = columnAppend(col, reflect.ValueOf(7))
	col = columnAppend(col, reflect.ValueOf(11))

	if columnLen(col) != 2 {
		t.Fatalf("Expected len 2, got %d", columnLen(col))
	}
	if got := columnGet(col, 1).Interface().(int); got != 11 {
		t.Errorf("Expected 11 at row 1, got %d", got)
	}
}

func TestColumnSet(t *testing.T) {
	col := makeColumn(reflect.TypeOf(0))
	col = columnAppend(col, reflect.ValueOf(1))
	columnSet(col, 0, reflect.ValueOf(42))

	if got := columnGet(col, 0).Interface().(int); got != 42 {
		t.Errorf("Expected 42 after set, got %d", got)
	}
}
