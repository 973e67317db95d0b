package native

// Remove - Deletes the entry at the given occupied bucket and repairs the probe chain in place.
//
// Open addressing without tombstones requires that every remaining entry stays reachable by
// probing from its ideal bucket, so after punching a hole in a run of occupied buckets the run
// is compacted by the backward-shift algorithm:
//
//  1. Clear the slot and decrement count.
//  2. Scan backward from the hole to find start, the first bucket of the unbroken occupied run.
//  3. Scan forward from the hole to find lastInChain, the last bucket of that run.
//  4. Walk backward from lastInChain looking for an entry whose ideal bucket lies within the
//     circular range [start, hole]; move it into the hole, making its old bucket the new hole,
//     and repeat until no displaced entry remains.
//
// Both scans terminate because at least one slot is always empty. Cost is proportional to the
// length of the occupied run containing the hole.
func (S *Store[K, V]) Remove(position int) {
	S.slots[position].Clear()
	S.count--

	hole := position

	// First bucket of the unbroken occupied run containing the hole
	start := hole
	for S.slots[S.prev(start)].Occupied {
		start = S.prev(start)
	}

	// Last occupied bucket of that run
	lastInChain := hole
	for S.slots[S.next(lastInChain)].Occupied {
		lastInChain = S.next(lastInChain)
	}

	for hole != lastInChain {
		// Walk backward from the end of the chain looking for an entry that belongs at or
		// before the hole. The range [start, hole] may wrap around the end of the array.
		b := lastInChain
		for b != hole {
			ideal := S.BucketIndex(S.slots[b].Key)

			var inRange bool
			if start <= hole {
				inRange = ideal >= start && ideal <= hole
			} else {
				inRange = ideal >= start || ideal <= hole
			}
			if inRange {
				break
			}

			b = S.prev(b)
		}

		if b == hole {
			break
		}

		// Move the displaced entry into the hole and continue with its old bucket as the new hole
		S.slots[hole] = S.slots[b]
		S.slots[b].Clear()
		hole = b
	}
}
