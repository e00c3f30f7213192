package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/protocol/sign"
)

func signCmd(st *state) *cobra.Command {
	var keyHex, msg, file string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseScalar("--key", keyHex)
			if err != nil {
				return err
			}
			m, err := readMessage(msg, file)
			if err != nil {
				return err
			}
			hash, err := st.cfg.Hash.Sum(m)
			if err != nil {
				return err
			}

			sig, err := sign.Sign(st.params, d, hash, nil, sign.WithLogger(st.logger))
			if err != nil {
				return err
			}

			rec := yaml.MapSlice{
				{Key: "curve", Value: st.params.Name},
				{Key: "hash", Value: st.cfg.Hash.String()},
				{Key: "digest", Value: hex.EncodeToString(hash)},
				{Key: "r", Value: hexOf(sig.R)},
				{Key: "s", Value: hexOf(sig.S)},
				{Key: "signature", Value: hex.EncodeToString(sig.Bytes(st.params))},
			}
			if curves.IsSecp256k1(st.params) {
				der, err := sig.SerializeDER(st.params)
				if err != nil {
					return err
				}
				rec = append(rec, yaml.MapItem{Key: "der", Value: hex.EncodeToString(der)})
			}
			return st.render(cmd, rec)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&keyHex, "key", "", "private key (hex)")
	flags.StringVar(&msg, "message", "", "message to sign")
	flags.StringVar(&file, "file", "", "read the message from this file")
	return cmd
}
