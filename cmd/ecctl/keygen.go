package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
)

func keygenCmd(st *state) *cobra.Command {
	var (
		privHex string
		prove   bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long:  "Generate a key pair on the configured curve, or derive the public key of --private.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				kp  *keygen.KeyPair
				err error
			)
			if privHex != "" {
				d, perr := parseScalar("private key", privHex)
				if perr != nil {
					return perr
				}
				kp, err = keygen.FromPrivate(st.params, d)
			} else {
				kp, err = keygen.Generate(st.params, nil)
			}
			if err != nil {
				return err
			}
			st.logger.Debug("key pair ready", zap.String("curve", st.params.Name), zap.Bool("derived", privHex != ""))

			rec := yaml.MapSlice{
				{Key: "curve", Value: st.params.Name},
				{Key: "private", Value: hexOf(kp.D)},
				{Key: "public", Value: st.params.EncodePoint(kp.Q, false)},
				{Key: "compressed", Value: st.params.EncodePoint(kp.Q, true)},
			}
			if prove {
				proof, err := kp.ProvePossession(st.params, nil)
				if err != nil {
					return err
				}
				rec = append(rec,
					yaml.MapItem{Key: "proof_r", Value: st.params.EncodePoint(proof.R, true)},
					yaml.MapItem{Key: "proof_s", Value: hexOf(proof.S)})
			}
			return st.render(cmd, rec)
		},
	}

	cmd.Flags().StringVar(&privHex, "private", "", "derive the key pair from this private key (hex)")
	cmd.Flags().BoolVar(&prove, "prove", false, "attach a Schnorr proof of possession of the private key")
	return cmd
}
