// Package sorting implements merge sort, quicksort and the two classic
// searches over ordered slices.
package sorting

import "cmp"

// MergeSort returns a sorted copy of s. The input is left untouched and a
// nil input yields nil.
func MergeSort[T cmp.Ordered](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	if len(out) <= 1 {
		return out
	}
	tmp := make([]T, len(out))
	mergeSort(out, tmp, 0, len(out)-1)
	return out
}

func mergeSort[T cmp.Ordered](a, tmp []T, l, r int) {
	if l >= r {
		return
	}
	m := int(uint(l+r) >> 1)
	mergeSort(a, tmp, l, m)
	mergeSort(a, tmp, m+1, r)

	i, j, k := l, m+1, l
	for i <= m && j <= r {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:m+1])
	copy(tmp[k:], a[j:r+1])
	copy(a[l:r+1], tmp[l:r+1])
}

// QuickSort sorts s in place using Hoare partitioning around the middle
// element.
func QuickSort[T cmp.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}
	quickSort(s, 0, len(s)-1)
}

func quickSort[T cmp.Ordered](a []T, l, r int) {
	i, j := l, r
	pivot := a[int(uint(l+r)>>1)]
	for i <= j {
		for a[i] < pivot {
			i++
		}
		for a[j] > pivot {
			j--
		}
		if i <= j {
			a[i], a[j] = a[j], a[i]
			i++
			j--
		}
	}
	if l < j {
		quickSort(a, l, j)
	}
	if i < r {
		quickSort(a, i, r)
	}
}

// LinearSearch returns the index of the first occurrence of target, or -1.
func LinearSearch[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return -1
}

// BinarySearch returns an index of target in s, which must be sorted in
// ascending order, or -1 when target is absent.
func BinarySearch[T cmp.Ordered](s []T, target T) int {
	l, r := 0, len(s)-1
	for l <= r {
		m := int(uint(l+r) >> 1)
		switch {
		case s[m] == target:
			return m
		case s[m] < target:
			l = m + 1
		default:
			r = m - 1
		}
	}
	return -1
}
