package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-ntree/index"
	"github.com/forestrie/go-ntree/traverse"
)

const (
	levelsCmdUse   = "levels"
	levelsCmdShort = "Tabulate the levels of a tree: widths and position ranges"
	allFlag        = "all"
	allUsage       = "list every level up to the representable boundary, not just the occupied ones"
	maxLevelRows   = 64
)

func newLevelsCommand(st *state) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   levelsCmdUse,
		Short: levelsCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := levelsTable(st.cfg.Tree.Arity, st.cfg.Tree.Length, all)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&all, allFlag, false, allUsage)

	return cmd
}

// levelsTable lists one row per level. Occupied counts only positions below
// treeLen; first and last are the flat bounds of the nominal level.
func levelsTable(arity, treeLen uint64, all bool) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Depth", "Width", "Occupied", "First", "Last"})

	last := index.Max(arity).Depth()
	if !all {
		height, ok := traverse.Height(arity, treeLen)
		if !ok {
			return tbl
		}
		last = height
	}

	// unary trees are one level per position
	shown := min(last, maxLevelRows-1)
	for depth := uint64(0); depth <= shown; depth++ {
		level := index.Level(arity, depth)
		start, end := level.Bounds()
		width := level.Len()
		if w, ok := index.LevelWidth(arity, depth); ok {
			width = w
		}
		tbl.AppendRow(table.Row{depth, width, level.Cap(treeLen).Len(), start, end - 1})
	}
	if shown < last {
		tbl.AppendFooter(table.Row{fmt.Sprintf("%d more levels", last-shown)})
	}

	return tbl
}
