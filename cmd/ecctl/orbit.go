package main

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/protocol/enumerate"
)

func orbitCmd(st *state) *cobra.Command {
	var (
		baseHex string
		steps   int
	)

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Walk the cyclic subgroup generated by a base point",
		Long: "Print 2B, 3B, ... for the base point B (the curve generator by default). " +
			"The order of B is reported on curves with p below 2^24.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := st.params.G
			if baseHex != "" {
				var err error
				if base, err = st.params.ParsePoint(baseHex); err != nil {
					return errors.WithMessage(err, "invalid --base")
				}
			}
			if steps < 0 {
				return errors.New("--steps must not be negative")
			}

			pts, err := enumerate.Orbit(st.params, base, steps)
			if err != nil {
				return err
			}

			rec := yaml.MapSlice{
				{Key: "curve", Value: st.params.Name},
				{Key: "base", Value: base.String()},
			}
			if st.params.P.Cmp(big.NewInt(enumerate.MaxFieldSize)) <= 0 {
				order, err := enumerate.SubgroupOrder(st.params, base)
				if err != nil {
					return err
				}
				rec = append(rec, yaml.MapItem{Key: "order", Value: order.String()})
			}

			lines := make([]string, len(pts))
			for i, pt := range pts {
				lines[i] = pt.String()
			}
			rec = append(rec, yaml.MapItem{Key: "points", Value: lines})
			return st.render(cmd, rec)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baseHex, "base", "", "base point as SEC 1 hex (default: the curve generator)")
	flags.IntVar(&steps, "steps", 16, "number of points to print")
	return cmd
}
