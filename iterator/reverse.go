package iterator

// Reverse consumes it and returns an iterator over the same cursor and
// bounds walking the opposite direction. it must not be used afterwards.
//
// Before the first Next the cursor is moved to the edge the new direction
// starts from: the last key when turning reverse, the first key when turning
// forward. After iteration started the cursor stays where it is and the
// next entry is the neighbour of the current one in the new direction, so
// entries already visited come back in reverse order. An exhausted
// iterator stays exhausted.
func (it *Iterator) Reverse() *Iterator {
	rev := it.take()
	rev.dir = rev.dir.Opposite()
	if rev.state == notStarted {
		rev.seekInitial()
	}
	return rev
}
