// Package tx provides a transactional overlay over a read-only list.
//
// An overlay stages replacements and appends in a private Patch while reads see
// the merged view. Nothing touches the base until Apply writes the patch into a
// real mutable list, so several overlays can be built over the same base and
// compared before one of them is committed.
//
//	base := list.VecOf(2, 3)
//	ov := tx.New[int](base)
//	m, _ := ov.GetMut(0)
//	m.Set(5)
//	m.Set(8)          // overwrites the staged value in place
//	ov.Push(4)
//	_ = ov.Apply(base) // base is now [8 3 4]
//
// Handles returned by GetMut over an untouched base item are lazy: the first Set
// creates the replacement entry, later Sets reuse it. A transaction that only
// reads never allocates patch entries.
package tx
