package offheapint

// BinarySearch searches the whole of s, which must be sorted ascending, for
// value. It returns the index of a matching element or ^insertionPoint when
// value is absent. With duplicates the returned match is unspecified.
func BinarySearch(s Addressable, value int32) int64 {
	return binarySearch(s, 0, s.Size(), value)
}

// BinarySearchIn searches [from, to) of s, which must be sorted ascending.
// It returns ErrInvalidRange if from < 0, from > to or to > s.Size().
func BinarySearchIn(s Addressable, from, to int64, value int32) (int64, error) {
	if err := checkRange(from, to, s.Size()); err != nil {
		return 0, err
	}
	return binarySearch(s, from, to, value), nil
}

func binarySearch(s Addressable, from, to int64, value int32) int64 {
	lo := from
	hi := to - 1
	for lo <= hi {
		mid := int64(uint64(lo+hi) >> 1) //nolint:gosec // lo+hi is non-negative
		midVal := s.Get(mid)

		switch {
		case midVal < value:
			lo = mid + 1
		case midVal > value:
			hi = mid - 1
		default:
			return mid
		}
	}
	return ^lo // value not present
}

// BinarySearchFunc is BinarySearch for a sequence sorted by cmp.
// A nil cmp is treated as NaturalOrder.
func BinarySearchFunc(s Addressable, value int32, cmp Comparator) int64 {
	return binarySearchFunc(s, 0, s.Size(), value, cmp)
}

// BinarySearchInFunc is BinarySearchIn for a sequence sorted by cmp.
func BinarySearchInFunc(s Addressable, from, to int64, value int32, cmp Comparator) (int64, error) {
	if err := checkRange(from, to, s.Size()); err != nil {
		return 0, err
	}
	return binarySearchFunc(s, from, to, value, cmp), nil
}

func binarySearchFunc(s Addressable, from, to int64, value int32, cmp Comparator) int64 {
	if cmp == nil {
		return binarySearch(s, from, to, value)
	}
	lo := from
	hi := to - 1
	for lo <= hi {
		mid := int64(uint64(lo+hi) >> 1) //nolint:gosec // lo+hi is non-negative
		c := cmp(s.Get(mid), value)

		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid
		}
	}
	return ^lo
}

// BinarySearchRange finds the run of elements equal to value in the whole of
// s and stores it in out. If value is absent, out becomes empty and both of
// its bounds hold ^insertionPoint.
func BinarySearchRange(s Addressable, value int32, out *IndexRange) {
	searchRange(s, 0, s.Size(), value, out)
}

// BinarySearchRangeIn is BinarySearchRange restricted to [from, to).
// The reported run never extends outside [from, to).
func BinarySearchRangeIn(s Addressable, from, to int64, value int32, out *IndexRange) error {
	if err := checkRange(from, to, s.Size()); err != nil {
		return err
	}
	searchRange(s, from, to, value, out)
	return nil
}

func searchRange(s Addressable, from, to int64, value int32, out *IndexRange) {
	ind := binarySearch(s, from, to, value)
	if ind < 0 {
		out.setEmpty(ind)
		return
	}

	lo := ind
	for lo > from && s.Get(lo-1) == value {
		lo--
	}
	hi := ind
	for hi < to-1 && s.Get(hi+1) == value {
		hi++
	}
	out.set(lo, hi)
}
