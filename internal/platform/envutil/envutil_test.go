package envutil

import (
	"reflect"
	"testing"
)

func TestParsersFallBackToDefault(t *testing.T) {
	t.Setenv("TN_INT", "nope")
	t.Setenv("TN_BOOL", "maybe")
	t.Setenv("TN_FLOAT", "")
	if got := Int("TN_INT", 4); got != 4 {
		t.Fatalf("Int: want=4 got=%d", got)
	}
	if got := Bool("TN_BOOL", true); !got {
		t.Fatalf("Bool: want default true")
	}
	if got := Float("TN_FLOAT", 0.5); got != 0.5 {
		t.Fatalf("Float: want=0.5 got=%v", got)
	}
}

func TestListSplitsAndTrims(t *testing.T) {
	t.Setenv("TN_LIST", " a, ,b ,c")
	got := List("TN_LIST", nil)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("List: got %v", got)
	}
	t.Setenv("TN_LIST", " , ")
	if got := List("TN_LIST", []string{"x"}); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("List default: got %v", got)
	}
}
