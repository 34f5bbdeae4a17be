package offheapint

import "cmp"

// insertionSortThreshold is the partition length below which insertion sort
// replaces quicksort.
const insertionSortThreshold = 47

// ordering lets one quicksort body serve both natural and comparator order.
type ordering interface {
	compare(a, b int32) int
}

type naturalOrdering struct{}

func (naturalOrdering) compare(a, b int32) int { return cmp.Compare(a, b) }

type funcOrdering Comparator

func (f funcOrdering) compare(a, b int32) int { return f(a, b) }

// Sort sorts s in ascending order.
func Sort(s Addressable) {
	dualPivotSort(s, naturalOrdering{}, 0, s.Size()-1)
}

// SortRange sorts [from, to) of s in ascending order.
func SortRange(s Addressable, from, to int64) error {
	if err := checkRange(from, to, s.Size()); err != nil {
		return err
	}
	dualPivotSort(s, naturalOrdering{}, from, to-1)
	return nil
}

// SortFunc sorts s in the order defined by c. A nil c is treated as
// NaturalOrder.
func SortFunc(s Addressable, c Comparator) {
	if c == nil {
		Sort(s)
		return
	}
	dualPivotSort(s, funcOrdering(c), 0, s.Size()-1)
}

// SortRangeFunc sorts [from, to) of s in the order defined by c.
func SortRangeFunc(s Addressable, from, to int64, c Comparator) error {
	if c == nil {
		return SortRange(s, from, to)
	}
	if err := checkRange(from, to, s.Size()); err != nil {
		return err
	}
	dualPivotSort(s, funcOrdering(c), from, to-1)
	return nil
}

// IsSorted reports whether s is in ascending order.
func IsSorted(s Addressable) bool {
	return isSorted(s, naturalOrdering{})
}

// IsSortedFunc reports whether s is in the order defined by c.
func IsSortedFunc(s Addressable, c Comparator) bool {
	if c == nil {
		return IsSorted(s)
	}
	return isSorted(s, funcOrdering(c))
}

func isSorted[O ordering](s Addressable, o O) bool {
	n := s.Size()
	if n < 2 {
		return true
	}
	prev := s.Get(0)
	for i := int64(1); i < n; i++ {
		cur := s.Get(i)
		if o.compare(cur, prev) < 0 {
			return false
		}
		prev = cur
	}
	return true
}

// dualPivotSort sorts the inclusive range [left, right].
func dualPivotSort[O ordering](s Addressable, o O, left, right int64) {
	for {
		length := right - left + 1
		if length < insertionSortThreshold {
			insertionSort(s, o, left, right)
			return
		}

		// Five evenly spaced sample points around the center.
		seventh := (length >> 3) + (length >> 6) + 1
		e3 := int64(uint64(left+right) >> 1) //nolint:gosec // left+right is non-negative
		e2 := e3 - seventh
		e1 := e2 - seventh
		e4 := e3 + seventh
		e5 := e4 + seventh
		sortSamples(s, o, [5]int64{e1, e2, e3, e4, e5})

		less := left   // first element of the center part
		great := right // last element before the right part

		if o.compare(s.Get(e1), s.Get(e2)) != 0 &&
			o.compare(s.Get(e2), s.Get(e3)) != 0 &&
			o.compare(s.Get(e3), s.Get(e4)) != 0 &&
			o.compare(s.Get(e4), s.Get(e5)) != 0 {
			pivot1 := s.Get(e2)
			pivot2 := s.Get(e4)

			// The pivots leave the range; their slots are refilled from the ends
			// and the pivots are swapped into place after partitioning.
			s.Set(e2, s.Get(left))
			s.Set(e4, s.Get(right))

			for less++; o.compare(s.Get(less), pivot1) < 0; less++ {
			}
			for great--; o.compare(s.Get(great), pivot2) > 0; great-- {
			}

			//   left part     center part                   right part
			// +--------------------------------------------------------------+
			// |  < pivot1  |  pivot1 <= && <= pivot2  |    ?    |  > pivot2  |
			// +--------------------------------------------------------------+
			//               ^                          ^       ^
			//               less                       k       great
		outer:
			for k := less; k <= great; k++ {
				ak := s.Get(k)
				if o.compare(ak, pivot1) < 0 {
					s.Set(k, s.Get(less))
					s.Set(less, ak)
					less++
				} else if o.compare(ak, pivot2) > 0 {
					for o.compare(s.Get(great), pivot2) > 0 {
						if great == k {
							great--
							break outer
						}
						great--
					}
					if o.compare(s.Get(great), pivot1) < 0 {
						s.Set(k, s.Get(less))
						s.Set(less, s.Get(great))
						less++
					} else {
						s.Set(k, s.Get(great))
					}
					s.Set(great, ak)
					great--
				}
			}

			s.Set(left, s.Get(less-1))
			s.Set(less-1, pivot1)
			s.Set(right, s.Get(great+1))
			s.Set(great+1, pivot2)

			parts := [3][2]int64{{left, less - 2}, {great + 2, right}}

			// A center part wider than the sample spread is likely full of pivot
			// duplicates: move them out so only strictly-between values recurse.
			if less < e1 && e5 < great {
				for o.compare(s.Get(less), pivot1) == 0 {
					less++
				}
				for o.compare(s.Get(great), pivot2) == 0 {
					great--
				}

			center:
				for k := less; k <= great; k++ {
					ak := s.Get(k)
					if o.compare(ak, pivot1) == 0 {
						s.Set(k, s.Get(less))
						s.Set(less, ak)
						less++
					} else if o.compare(ak, pivot2) == 0 {
						for o.compare(s.Get(great), pivot2) == 0 {
							if great == k {
								great--
								break center
							}
							great--
						}
						if ag := s.Get(great); o.compare(ag, pivot1) == 0 {
							s.Set(k, s.Get(less))
							s.Set(less, ag)
							less++
						} else {
							s.Set(k, s.Get(great))
						}
						s.Set(great, ak)
						great--
					}
				}
			}

			parts[2] = [2]int64{less, great}
			left, right = sortSmallerParts(s, o, parts)
			continue
		}

		// Equal samples: partition three ways around a single pivot so runs of
		// duplicates are never recursed into.
		pivot := s.Get(e3)

		//   left part  center part              right part
		// +-------------------------------------------------+
		// |  < pivot  |   == pivot   |    ?    |  > pivot  |
		// +-------------------------------------------------+
		//              ^              ^        ^
		//              less           k        great
		for k := less; k <= great; k++ {
			ak := s.Get(k)
			c := o.compare(ak, pivot)
			if c == 0 {
				continue
			}
			if c < 0 {
				s.Set(k, s.Get(less))
				s.Set(less, ak)
				less++
				continue
			}
			for o.compare(s.Get(great), pivot) > 0 {
				great--
			}
			if ag := s.Get(great); o.compare(ag, pivot) < 0 {
				s.Set(k, s.Get(less))
				s.Set(less, ag)
				less++
			} else {
				// Equal under the ordering is not identity for comparators.
				s.Set(k, ag)
			}
			s.Set(great, ak)
			great--
		}

		left, right = sortSmallerParts(s, o, [3][2]int64{{left, less - 1}, {great + 1, right}, {0, -1}})
	}
}

// sortSmallerParts sorts every part but the longest and returns the longest
// for the caller to continue with. A recursed part is never longer than half
// its parent, so the stack depth stays below log2 of the range length.
func sortSmallerParts[O ordering](s Addressable, o O, parts [3][2]int64) (int64, int64) {
	longest := 0
	for i, p := range parts {
		if p[1]-p[0] > parts[longest][1]-parts[longest][0] {
			longest = i
		}
	}
	for i, p := range parts {
		if i != longest && p[0] < p[1] {
			dualPivotSort(s, o, p[0], p[1])
		}
	}
	return parts[longest][0], parts[longest][1]
}

func insertionSort[O ordering](s Addressable, o O, left, right int64) {
	for i := left + 1; i <= right; i++ {
		v := s.Get(i)
		j := i - 1
		for j >= left {
			aj := s.Get(j)
			if o.compare(v, aj) >= 0 {
				break
			}
			s.Set(j+1, aj)
			j--
		}
		s.Set(j+1, v)
	}
}

// sortSamples orders the values at the five sample positions in place.
func sortSamples[O ordering](s Addressable, o O, idx [5]int64) {
	for i := 1; i < len(idx); i++ {
		v := s.Get(idx[i])
		j := i - 1
		for ; j >= 0; j-- {
			aj := s.Get(idx[j])
			if o.compare(v, aj) >= 0 {
				break
			}
			s.Set(idx[j+1], aj)
		}
		s.Set(idx[j+1], v)
	}
}
