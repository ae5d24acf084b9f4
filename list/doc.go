// Package list defines the minimal ordered-sequence abstraction that backs a slab.
//
// A List only knows how to report its length, append, and hand out items by
// index. Removal and slot reuse are not part of the contract; they belong to the
// slab that owns the list.
//
// # Backends
//
// A Storage is a factory that produces lists for one item type. Two backends
// ship with the package:
//
//   - VecStorage: a growable slice (the default)
//   - SegmentedStorage: fixed-size pages with stable element addresses
//
// # Optional capabilities
//
// Backends may implement extra interfaces that callers discover with a type
// assertion, the same way io.WriterTo is discovered on an io.Reader:
//
//   - Clearer: drop all items at once
//   - Slicer: expose a contiguous []E view (Vec only)
//   - RefItem: turn an ItemMut into a plain *E (Vec and Segmented handles)
//
// The transactional overlay in package tx implements List but none of the
// optional capabilities.
package list
