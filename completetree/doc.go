// Package completetree exposes a caller owned slice as a complete tree of
// fixed arity in heap layout.
//
// Nothing here allocates element storage and nothing changes the tree's
// size: the tree is exactly as long as the slice it views. Parent and child
// relationships are pure arithmetic on flat positions (see package index),
// and traversal order comes from package traverse, which produces positions
// only. The adapters turn positions into element values for shared access,
// or into pointers for exclusive access.
//
// # Exclusive access
//
// The pointer producing traversals (the ...Ptr methods) visit each position
// at most once per pass, so a single pass never hands out two pointers to the
// same element. Go can not stop a caller from running a pointer pass while
// another pass over the same slice is live. Callers that share a tree between
// goroutines should use Locked (or LockedBinary), which runs shared passes
// under a read lock and exclusive passes under the write lock.
package completetree
