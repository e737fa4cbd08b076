package completetree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/forestrie/go-ntree/index"
)

const defaultIndent = 4

// RenderOptions controls how Render draws a tree of T.
type RenderOptions[T any] struct {
	indent int
	format func(T) string
}

type RenderOption[T any] func(*RenderOptions[T])

// WithIndent sets the width of each nesting step. It must be at least 1.
func WithIndent[T any](indent int) RenderOption[T] {
	return func(o *RenderOptions[T]) {
		o.indent = indent
	}
}

// WithFormatter sets how each element is printed. The default is %v.
func WithFormatter[T any](format func(T) string) RenderOption[T] {
	return func(o *RenderOptions[T]) {
		o.format = format
	}
}

// stems returns the four prefixes used to draw the tree, in order: an
// ancestor with a later sibling, an ancestor without one, a node with a later
// sibling and a node without one.
func stems(indent int) [4]string {
	s := [4]string{
		"│" + strings.Repeat(" ", indent-1),
		strings.Repeat(" ", indent),
		"├" + strings.Repeat("─", indent-1),
		"└" + strings.Repeat("─", indent-1),
	}
	if indent > 2 {
		s[2] = strings.TrimSuffix(s[2], "─") + " "
		s[3] = strings.TrimSuffix(s[3], "─") + " "
	}
	return s
}

// Render writes t depth first, one element per line, with box drawing stems
// showing the structure. For the seven node binary tree holding 0..6:
//
//	0
//	├── 1
//	│   ├── 3
//	│   └── 4
//	└── 2
//	    ├── 5
//	    └── 6
func Render[T any](w io.Writer, t Reader[T], opts ...RenderOption[T]) error {
	options := RenderOptions[T]{indent: defaultIndent, format: func(v T) string { return fmt.Sprint(v) }}
	for _, o := range opts {
		o(&options)
	}
	if options.indent < 1 {
		return ErrBadIndent
	}
	s := stems(options.indent)

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for ix, v := range t.PreOrderIndexed() {
		line.Reset()
		writePrefix(&line, ix, t.Len(), s)
		line.WriteString(options.format(v))
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderString is Render to a string, without the trailing newline.
func RenderString[T any](t Reader[T], opts ...RenderOption[T]) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, t, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// writePrefix draws one stem per ancestor below the root, then the stem for
// ix. Siblings are contiguous in flat order, so a node has a later sibling
// exactly when it is not its parent's last child and the next position is
// occupied.
func writePrefix(sb *strings.Builder, ix index.Index, treeLen uint64, s [4]string) {
	if ix.Depth() == 0 {
		return
	}
	path := make([]bool, ix.Depth())
	for at, d := ix, ix.Depth(); d > 0; d-- {
		path[d-1] = hasLaterSibling(at, treeLen)
		at, _ = at.Parent()
	}
	for _, later := range path[:len(path)-1] {
		if later {
			sb.WriteString(s[0])
		} else {
			sb.WriteString(s[1])
		}
	}
	if path[len(path)-1] {
		sb.WriteString(s[2])
	} else {
		sb.WriteString(s[3])
	}
}

func hasLaterSibling(ix index.Index, treeLen uint64) bool {
	return ix.ChildPosition() < ix.Arity()-1 && ix.Flatten()+1 < treeLen
}
