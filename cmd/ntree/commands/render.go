package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-ntree/completetree"
	"github.com/forestrie/go-ntree/index"
	"github.com/forestrie/go-ntree/internal/config"
)

const (
	renderCmdUse   = "render"
	renderCmdShort = "Draw a tree whose elements are their flat positions"
	indentFlag     = "indent"
	indentUsage    = "width of each nesting step"
	coordValues    = "coords"
	coordUsage     = "label nodes with (depth,offset) instead of flat positions"
	maxRenderLen   = 1 << 16
)

func newRenderCommand(st *state) *cobra.Command {
	var coords bool

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			treeLen := st.cfg.Tree.Length
			if treeLen > maxRenderLen {
				return fmt.Errorf("render: tree length %d exceeds %d", treeLen, maxRenderLen)
			}

			tree, err := positionTree(st.cfg.Tree.Arity, treeLen)
			if err != nil {
				return err
			}

			opts := []completetree.RenderOption[uint64]{completetree.WithIndent[uint64](st.cfg.Render.Indent)}
			if coords {
				opts = append(opts, completetree.WithFormatter(coordLabel(st.cfg.Tree.Arity)))
			}
			st.log.Debug("rendering", "length", treeLen, "indent", st.cfg.Render.Indent)

			return completetree.Render(cmd.OutOrStdout(), tree, opts...)
		},
	}

	cmd.Flags().Int(indentFlag, config.DefaultIndent, indentUsage)
	cmd.Flags().BoolVar(&coords, coordValues, false, coordUsage)

	return cmd
}

// positionTree builds a tree whose element at each flat position is that
// position.
func positionTree(arity, treeLen uint64) (*completetree.Slice[uint64], error) {
	nodes := make([]uint64, treeLen)
	for i := range nodes {
		nodes[i] = uint64(i)
	}
	return completetree.NewSlice(arity, nodes)
}

func coordLabel(arity uint64) func(uint64) string {
	return func(pos uint64) string {
		return index.FromFlattened(arity, pos).String()
	}
}
