package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/config"
)

// render writes rec in the configured output format. Text output prints one
// "key: value" line per item, with list values indented below their key.
func (st *state) render(cmd *cobra.Command, rec yaml.MapSlice) error {
	w := cmd.OutOrStdout()
	if st.cfg.Output == config.OutputYAML {
		out, err := yaml.Marshal(rec)
		if err != nil {
			return errors.Wrap(err, "error encoding output")
		}
		_, err = w.Write(out)
		return err
	}

	for _, item := range rec {
		if list, ok := item.Value.([]string); ok {
			fmt.Fprintf(w, "%s:\n", item.Key)
			for _, line := range list {
				fmt.Fprintf(w, "  %s\n", line)
			}
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", item.Key, item.Value)
	}
	return nil
}

func hexOf(x *big.Int) string {
	return x.Text(16)
}

func parseScalar(label, s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Errorf("%s is required", label)
	}
	v, ok := new(big.Int).SetString(cleanHex(s), 16)
	if !ok {
		return nil, errors.Errorf("%s is not valid hex: %q", label, s)
	}
	return v, nil
}

func cleanHex(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// readMessage returns the message given inline or read from file.
func readMessage(msg, file string) ([]byte, error) {
	switch {
	case msg != "" && file != "":
		return nil, errors.New("--message and --file are mutually exclusive")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading message file %s", file)
		}
		return b, nil
	case msg != "":
		return []byte(msg), nil
	}
	return nil, errors.New("one of --message or --file is required")
}
