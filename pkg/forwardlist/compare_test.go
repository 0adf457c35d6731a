// File: pkg/forwardlist/compare_test.go
package forwardlist

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"both empty", nil, nil, true},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different length", []int{1, 2}, []int{1, 2, 3}, false},
		{"different element", []int{1, 2, 3}, []int{1, 9, 3}, false},
		{"empty vs non-empty", nil, []int{1}, false},
	}

	for _, tc := range tests {
		a, b := Of(tc.a...), Of(tc.b...)
		if got := Equal(a, b); got != tc.want {
			t.Errorf("%s: Equal = %v, want %v", tc.name, got, tc.want)
		}
		if got := Equal(b, a); got != tc.want {
			t.Errorf("%s: Equal is not symmetric: %v, want %v", tc.name, got, tc.want)
		}
		if !Equal(a, a) {
			t.Errorf("%s: Equal(a, a) should always hold", tc.name)
		}
	}
}

func TestCompareLexicographic(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2}, []int{1, 2}, 0},
		{"both empty", nil, nil, 0},
		{"prefix sorts first", []int{1, 2}, []int{1, 2, 3}, -1},
		{"element decides", []int{1, 2, 3}, []int{1, 3}, -1},
		{"first element decides", []int{2}, []int{1, 9, 9}, 1},
		{"empty sorts first", nil, []int{1}, -1},
	}

	for _, tc := range tests {
		a, b := Of(tc.a...), Of(tc.b...)
		if got := Compare(a, b); got != tc.want {
			t.Errorf("%s: Compare = %d, want %d", tc.name, got, tc.want)
		}
		if got := Compare(b, a); got != -tc.want {
			t.Errorf("%s: Compare reversed = %d, want %d", tc.name, got, -tc.want)
		}
	}
}

func TestOrderingOperators(t *testing.T) {
	small := Of(1, 2)
	middle := Of(1, 2, 3)
	large := Of(1, 3)
	equal := Of(1, 2)

	if !Less(small, middle) || !Less(middle, large) {
		t.Error("expected [1,2] < [1,2,3] < [1,3]")
	}
	if Less(small, equal) {
		t.Error("Less should be false for equal lists")
	}
	if !LessOrEqual(small, equal) || !LessOrEqual(small, middle) {
		t.Error("LessOrEqual should hold for equal and smaller lists")
	}
	if !Greater(large, small) {
		t.Error("expected [1,3] > [1,2]")
	}
	if !GreaterOrEqual(equal, small) || GreaterOrEqual(small, large) {
		t.Error("GreaterOrEqual mismatch")
	}
	if !Equal(small, equal) {
		t.Error("expected [1,2] == [1,2]")
	}
}

func TestEqualFunc(t *testing.T) {
	a := Of("Go", "List")
	b := Of("go", "list")

	if Equal(a, b) {
		t.Error("case-sensitive Equal should differ")
	}
	if !EqualFunc(a, b, strings.EqualFold) {
		t.Error("case-insensitive EqualFunc should match")
	}
}

func TestCompareFunc(t *testing.T) {
	a := Of("b", "a")
	b := Of("B", "c")

	if got := CompareFunc(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}); got != -1 {
		t.Errorf("CompareFunc = %d, want -1", got)
	}
}
