package browser

const (
	// ItemHeight is the number of scroll-indicator units one row occupies.
	ItemHeight = 4

	// PageSize is the fixed pagination window: at most this many rows are
	// handed to the renderer per frame, regardless of table size.
	PageSize = 100
)

// wrapNext advances an index over a list of the given length, wrapping from
// the last index back to 0. Zero stays put on an empty list.
func wrapNext(i, length int) int {
	if length == 0 {
		return 0
	}
	if i >= length-1 {
		return 0
	}
	return i + 1
}

// wrapPrev moves an index backwards, wrapping from 0 to the last index.
func wrapPrev(i, length int) int {
	if length == 0 {
		return 0
	}
	if i == 0 {
		return length - 1
	}
	return i - 1
}

// Page returns which pagination window a cursor falls in.
func Page(cursor int) int {
	return cursor / PageSize
}

// WindowIndex returns the cursor's position within its pagination window.
func WindowIndex(cursor int) int {
	return cursor % PageSize
}

// scrollBound is the maximum scroll-indicator position for a list.
func scrollBound(count int) int {
	if count == 0 {
		return 0
	}
	return (count - 1) * ItemHeight
}
