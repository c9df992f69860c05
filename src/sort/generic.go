package sort

import "golang.org/x/exp/constraints"

// Ordered sorts x in place in non-decreasing order.
func Ordered[E constraints.Ordered](x []E) {
	OrderedStats(x)
}

func OrderedStats[E constraints.Ordered](x []E) Stats {
	return SliceFuncStats(x, func(a, b E) bool { return a < b })
}

// SliceFunc sorts x in place using less as the strict ordering. Elements for
// which neither less(a, b) nor less(b, a) holds keep their relative order.
func SliceFunc[E any](x []E, less func(a, b E) bool) {
	SliceFuncStats(x, less)
}

func SliceFuncStats[E any](x []E, less func(a, b E) bool) Stats {
	return bubble(funcSlice[E]{x, less}, nil)
}

// SliceErr sorts x in place with a comparison that may fail. cmp returns a
// negative number, zero or a positive number when a is less than, equal to
// or greater than b. The first error from cmp stops the sort and is returned
// as is; x is then still a permutation of its original elements.
func SliceErr[E any](x []E, cmp func(a, b E) (int, error)) (Stats, error) {
	var st Stats
	n := len(x)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			st.Comparisons++
			c, err := cmp(x[j], x[j+1])
			if err != nil {
				return st, err
			}
			if c > 0 {
				x[j], x[j+1] = x[j+1], x[j]
				st.Exchanges++
				swapped = true
			}
		}
		st.Passes++
		if !swapped {
			st.EarlyExit = i < n-2
			break
		}
	}
	return st, nil
}

type funcSlice[E any] struct {
	x    []E
	less func(a, b E) bool
}

func (s funcSlice[E]) Len() int { return len(s.x) }

func (s funcSlice[E]) Less(i, j int) bool { return s.less(s.x[i], s.x[j]) }

func (s funcSlice[E]) Swap(i, j int) { s.x[i], s.x[j] = s.x[j], s.x[i] }
