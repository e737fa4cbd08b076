package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-ntree/traverse"
)

const (
	orderCmdUse    = "order <level|pre|post|in>"
	orderCmdShort  = "Print the positions of a tree in traversal order"
	orderArgCount  = 1
	coordsFlag     = "coords"
	coordsUsage    = "print (depth,offset) coordinates instead of flat positions"
	maxOrderLength = 1 << 20
)

var (
	// ErrUnknownOrder is returned for an order name other than level, pre,
	// post or in.
	ErrUnknownOrder = errors.New("unknown traversal order")
	// ErrInOrderArity is returned when an in-order traversal is asked of a
	// tree which is not binary.
	ErrInOrderArity = errors.New("in-order traversal needs arity 2")
	// ErrTooLarge is returned when a command would print more positions
	// than is useful on a terminal.
	ErrTooLarge = fmt.Errorf("tree length exceeds %d", maxOrderLength)
)

var orderNames = map[string]string{
	"level": "level-order",
	"pre":   "pre-order",
	"post":  "post-order",
	"in":    "in-order",
}

func newOrderCommand(st *state) *cobra.Command {
	var coords bool

	cmd := &cobra.Command{
		Use:       orderCmdUse,
		Short:     orderCmdShort,
		Args:      cobra.ExactArgs(orderArgCount),
		ValidArgs: []string{"level", "pre", "post", "in"},
		RunE: func(cmd *cobra.Command, args []string) error {
			arity, treeLen := st.cfg.Tree.Arity, st.cfg.Tree.Length
			if treeLen > maxOrderLength {
				return ErrTooLarge
			}

			it, err := newIterator(args[0], arity, treeLen)
			if err != nil {
				return err
			}
			st.log.Debug("traversing", "order", args[0], "arity", arity, "length", treeLen)

			out := cmd.OutOrStdout()
			color.New(color.FgCyan).Fprintf(out, "%s, arity %d, %d nodes\n", orderNames[args[0]], arity, treeLen)

			parts := make([]string, 0, treeLen)
			for ix := range traverse.Seq(it) {
				if coords {
					parts = append(parts, ix.String())
				} else {
					parts = append(parts, fmt.Sprint(ix.Flatten()))
				}
			}
			_, err = fmt.Fprintln(out, strings.Join(parts, " "))
			return err
		},
	}

	cmd.Flags().BoolVar(&coords, coordsFlag, false, coordsUsage)

	return cmd
}

func newIterator(order string, arity, treeLen uint64) (traverse.Iterator, error) {
	switch order {
	case "level":
		return traverse.NewLevelOrder(arity, treeLen), nil
	case "pre":
		return traverse.NewPreOrder(arity, treeLen), nil
	case "post":
		return traverse.NewPostOrder(arity, treeLen), nil
	case "in":
		if arity != 2 {
			return nil, ErrInOrderArity
		}
		return traverse.NewInOrder(treeLen), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
}
