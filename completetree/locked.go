package completetree

import "sync"

// Locked guards a Tree with a read / write lock so the one writer or many
// readers rule holds at runtime for trees shared between goroutines.
//
// View hands fn a Reader which cannot be converted back into the Tree. The
// Reader and Tree passed to the callbacks, and any sequences obtained from
// them, must not be retained after the callback returns.
type Locked[T any] struct {
	mu   sync.RWMutex
	tree Tree[T]
}

func NewLocked[T any](tree Tree[T]) *Locked[T] {
	return &Locked[T]{tree: tree}
}

// View runs fn with shared access. Any number of View calls may run at once.
func (l *Locked[T]) View(fn func(Reader[T]) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(readOnly[T]{l.tree})
}

// Update runs fn with exclusive access to the whole tree.
func (l *Locked[T]) Update(fn func(Tree[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.tree)
}

func (l *Locked[T]) Len() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// LockedBinary is Locked for binary trees, so in-order passes can run under
// the lock as well.
type LockedBinary[T any] struct {
	mu   sync.RWMutex
	tree BinaryTree[T]
}

func NewLockedBinary[T any](tree BinaryTree[T]) *LockedBinary[T] {
	return &LockedBinary[T]{tree: tree}
}

func (l *LockedBinary[T]) View(fn func(BinaryReader[T]) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(readOnlyBinary[T]{l.tree})
}

func (l *LockedBinary[T]) Update(fn func(BinaryTree[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.tree)
}

func (l *LockedBinary[T]) Len() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// readOnly and readOnlyBinary expose only the shared method set of the tree
// they wrap.
type readOnly[T any] struct{ Reader[T] }

type readOnlyBinary[T any] struct{ BinaryReader[T] }
