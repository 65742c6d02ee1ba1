// Package reference holds plain sorting routines over []int with no step
// instrumentation. Each returns a new slice and leaves its input untouched.
package reference

import "slices"

type Sort func([]int) []int

func Bubble(in []int) []int {
	a := slices.Clone(in)
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
	return a
}

func Selection(in []int) []int {
	a := slices.Clone(in)
	for i := 0; i < len(a)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
	}
	return a
}

func Insertion(in []int) []int {
	a := slices.Clone(in)
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
	return a
}

func Heap(in []int) []int {
	a := slices.Clone(in)
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for i := n - 1; i > 0; i-- {
		a[0], a[i] = a[i], a[0]
		siftDown(a, 0, i)
	}
	return a
}

func siftDown(a []int, root, size int) {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < size && a[l] > a[largest] {
			largest = l
		}
		if r < size && a[r] > a[largest] {
			largest = r
		}
		if largest == root {
			return
		}
		a[root], a[largest] = a[largest], a[root]
		root = largest
	}
}

// Merge is the top-down variant.
func Merge(in []int) []int {
	if len(in) <= 1 {
		return slices.Clone(in)
	}
	mid := len(in) / 2
	return merge(Merge(in[:mid]), Merge(in[mid:]))
}

func merge(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// Quick partitions around the last element (Lomuto).
func Quick(in []int) []int {
	a := slices.Clone(in)
	quick(a, 0, len(a)-1)
	return a
}

func quick(a []int, start, end int) {
	if start >= end {
		return
	}
	pivot := a[end]
	j := start - 1
	for i := start; i <= end; i++ {
		if a[i] > pivot {
			continue
		}
		j++
		if i > j {
			a[i], a[j] = a[j], a[i]
		}
	}
	quick(a, start, j-1)
	quick(a, j+1, end)
}

// ByName maps the algorithm names used across the CLI to their plain sorts.
var ByName = map[string]Sort{
	"bubble":    Bubble,
	"selection": Selection,
	"insertion": Insertion,
	"heap":      Heap,
	"merge":     Merge,
	"quick":     Quick,
}
