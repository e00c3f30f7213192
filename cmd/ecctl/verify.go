package main

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/protocol/sign"
)

// errInvalidSignature makes verify exit with a non-zero status.
var errInvalidSignature = errors.New("signature is invalid")

func verifyCmd(st *state) *cobra.Command {
	var pubHex, msg, file, sigHex, rHex, sHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a public key",
		Long: "Verify a signature given either as --signature (r||s hex) or as --r and --s. " +
			"The command exits with a non-zero status when the signature is invalid.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Q, err := st.params.ParsePoint(pubHex)
			if err != nil {
				return errors.WithMessage(err, "invalid --pub")
			}
			sig, err := readSignature(st, sigHex, rHex, sHex)
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

			ok, err := sign.Verify(st.params, Q, hash, sig)
			if err != nil {
				return err
			}
			st.logger.Debug("verified signature", zap.Bool("valid", ok))

			if err := st.render(cmd, yaml.MapSlice{
				{Key: "curve", Value: st.params.Name},
				{Key: "digest", Value: hex.EncodeToString(hash)},
				{Key: "valid", Value: ok},
			}); err != nil {
				return err
			}
			if !ok {
				return errInvalidSignature
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&pubHex, "pub", "", "public key as SEC 1 hex")
	flags.StringVar(&msg, "message", "", "signed message")
	flags.StringVar(&file, "file", "", "read the signed message from this file")
	flags.StringVar(&sigHex, "signature", "", "signature as r||s hex")
	flags.StringVar(&rHex, "r", "", "signature r (hex)")
	flags.StringVar(&sHex, "s", "", "signature s (hex)")
	return cmd
}

func readSignature(st *state, sigHex, rHex, sHex string) (*sign.Signature, error) {
	if sigHex != "" {
		if rHex != "" || sHex != "" {
			return nil, errors.New("--signature cannot be combined with --r or --s")
		}
		raw, err := hex.DecodeString(cleanHex(sigHex))
		if err != nil {
			return nil, errors.Wrap(err, "invalid --signature")
		}
		return sign.ParseSignature(st.params, raw)
	}

	r, err := parseScalar("--r", rHex)
	if err != nil {
		return nil, err
	}
	s, err := parseScalar("--s", sHex)
	if err != nil {
		return nil, err
	}
	return &sign.Signature{R: r, S: s}, nil
}
