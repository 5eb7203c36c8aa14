package sorting

import (
	"math/rand"
	"slices"
	"testing"
)

func TestMergeSort(t *testing.T) {
	data := []int{7, 3, 9, 1, 5, 8, 2}
	original := slices.Clone(data)

	got := MergeSort(data)
	want := []int{1, 2, 3, 5, 7, 8, 9}
	if !slices.Equal(got, want) {
		t.Fatalf("MergeSort = %v, want %v", got, want)
	}
	if !slices.Equal(data, original) {
		t.Fatalf("MergeSort modified its input: %v", data)
	}

	if MergeSort[int](nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
	if got := MergeSort([]int{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestQuickSort(t *testing.T) {
	data := []int{7, 3, 9, 1, 5, 8, 2, 3}
	QuickSort(data)
	if !slices.IsSorted(data) {
		t.Fatalf("QuickSort result not sorted: %v", data)
	}

	strs := []string{"pear", "apple", "fig"}
	QuickSort(strs)
	if !slices.Equal(strs, []string{"apple", "fig", "pear"}) {
		t.Fatalf("QuickSort strings = %v", strs)
	}

	QuickSort([]int(nil))
}

func TestSortsMatchStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(20) - 10
		}
		want := slices.Clone(data)
		slices.Sort(want)

		if got := MergeSort(data); !slices.Equal(got, want) {
			t.Fatalf("MergeSort(%v) = %v, want %v", data, got, want)
		}
		quick := slices.Clone(data)
		QuickSort(quick)
		if !slices.Equal(quick, want) {
			t.Fatalf("QuickSort(%v) = %v, want %v", data, quick, want)
		}
	}
}

func TestLinearSearch(t *testing.T) {
	if got := LinearSearch([]int{10, 50, 20}, 20); got != 2 {
		t.Fatalf("LinearSearch = %d, want 2", got)
	}
	if got := LinearSearch([]int{10, 50, 20}, 99); got != -1 {
		t.Fatalf("LinearSearch = %d, want -1", got)
	}
	if got := LinearSearch[int](nil, 1); got != -1 {
		t.Fatalf("LinearSearch(nil) = %d, want -1", got)
	}
}

func TestBinarySearch(t *testing.T) {
	sorted := []int{1, 2, 3, 5, 7, 8, 9}
	for i, v := range sorted {
		if got := BinarySearch(sorted, v); got != i {
			t.Errorf("BinarySearch(%d) = %d, want %d", v, got, i)
		}
	}
	if got := BinarySearch(sorted, 4); got != -1 {
		t.Fatalf("BinarySearch(4) = %d, want -1", got)
	}
	if got := BinarySearch([]int{}, 4); got != -1 {
		t.Fatalf("BinarySearch(empty) = %d, want -1", got)
	}
}
