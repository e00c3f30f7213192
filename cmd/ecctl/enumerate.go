package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/protocol/enumerate"
)

func enumerateCmd(st *state) *cobra.Command {
	var (
		x     int64
		limit int
	)

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Build the point table of a small curve",
		Long: "Evaluate the curve equation at every x in [0, p) and record both square roots " +
			"whenever it is a quadratic residue. Only curves with p below 2^24 are supported.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := st.context(cmd)
			defer cancel()

			table, err := enumerate.BuildPointTable(ctx, st.params,
				enumerate.WithWorkers(st.cfg.Workers),
				enumerate.WithLogger(st.logger))
			if err != nil {
				return err
			}
			order, err := enumerate.SubgroupOrder(st.params, st.params.G)
			if err != nil {
				return err
			}
			cofactor, err := table.Cofactor(st.params, st.params.G)
			if err != nil {
				return err
			}

			rec := yaml.MapSlice{
				{Key: "curve", Value: st.params.Name},
				{Key: "p", Value: st.params.P.String()},
				{Key: "points", Value: table.Count().String()},
				{Key: "base", Value: st.params.G.String()},
				{Key: "order", Value: order.String()},
				{Key: "cofactor", Value: cofactor.String()},
			}

			if cmd.Flags().Changed("x") {
				if x < 0 || x >= int64(table.Size()) {
					return errors.Errorf("--x must be in [0, %d)", table.Size())
				}
				rec = append(rec, yaml.MapItem{Key: "roots", Value: formatRoots(table.Lookup(x))})
			}

			if limit > 0 {
				var lines []string
				for i := int64(0); i < int64(table.Size()) && len(lines) < limit; i++ {
					if r := table.Lookup(i); r != nil {
						lines = append(lines, fmt.Sprintf("%d: %s", i, formatRoots(r)))
					}
				}
				rec = append(rec, yaml.MapItem{Key: "table", Value: lines})
			}

			st.logger.Debug("enumerated curve", zap.String("points", table.Count().String()))
			return st.render(cmd, rec)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&x, "x", 0, "print the roots recorded for this x coordinate")
	flags.IntVar(&limit, "limit", 0, "print the first n table entries that have points")
	return cmd
}

func formatRoots(r *enumerate.Roots) string {
	if r == nil {
		return "none"
	}
	return fmt.Sprintf("(%s, %s)", r.Y, r.NegY)
}
