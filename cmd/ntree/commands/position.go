package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-ntree/index"
)

const (
	flattenCmdUse     = "flatten <depth> <offset>"
	flattenCmdShort   = "Print the flat position of a (depth, offset) coordinate"
	flattenArgCount   = 2
	unflattenCmdUse   = "unflatten <position>"
	unflattenCmdShort = "Print the (depth, offset) coordinate of a flat position"
	unflattenArgCount = 1
)

// ErrOutOfRange is returned for a coordinate or position beyond the largest
// one representable for the configured arity.
var ErrOutOfRange = errors.New("position is not representable")

func newFlattenCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   flattenCmdUse,
		Short: flattenCmdShort,
		Args:  cobra.ExactArgs(flattenArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := parseUint("depth", args[0])
			if err != nil {
				return err
			}
			offset, err := parseUint("offset", args[1])
			if err != nil {
				return err
			}

			arity := st.cfg.Tree.Arity
			ix, ok := index.New(arity, depth, offset)
			if !ok {
				return fmt.Errorf("%w: (%d,%d) with arity %d, the last is %s",
					ErrOutOfRange, depth, offset, arity, index.Max(arity))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ix.Flatten())
			return err
		},
	}
}

func newUnflattenCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   unflattenCmdUse,
		Short: unflattenCmdShort,
		Args:  cobra.ExactArgs(unflattenArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseUint("position", args[0])
			if err != nil {
				return err
			}
			if pos > index.MaxPosition {
				return fmt.Errorf("%w: %d, the last is %d", ErrOutOfRange, pos, uint64(index.MaxPosition))
			}

			ix := index.FromFlattened(st.cfg.Tree.Arity, pos)
			st.log.Debug("unflattened", "position", pos, "depth", ix.Depth(), "offset", ix.Offset())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ix)
			return err
		},
	}
}

func parseUint(name, arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}
