// Command ecctl generates keys, signs and verifies messages, and enumerates
// the points of small curves.
package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/logging"
)

func main() {
	// On failure Cobra prints the error string, so we only need to exit
	// with a non-0 status.
	if newRootCmd(config.New()).Execute() != nil {
		os.Exit(1)
	}
}

// state is filled in by the root command before any subcommand runs.
type state struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	params *curves.Params
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	st := &state{v: v}
	var cfgFile string

	root := &cobra.Command{
		Use:          "ecctl",
		Short:        "Elliptic curve arithmetic and ECDSA over short-Weierstrass curves",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cfgFile, cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.String("curve", curves.NameSecp256k1, "curve preset: secp256k1 or toy9739")
	flags.String("hash", "sha256", "message digest: sha1, sha256, sha3-256 or blake2b-256")
	flags.Int("workers", 0, "goroutines used to enumerate points (0 means one per CPU)")
	flags.Duration("timeout", 0, "abort long running commands after this duration")
	flags.StringP("output", "o", config.OutputText, "output format: text or yaml")
	flags.String("log-level", logging.DefaultLevel, "log level")
	bindFlags(v, flags, map[string]string{
		"curve":     "curve",
		"hash":      "hash",
		"workers":   "workers",
		"timeout":   "timeout",
		"output":    "output",
		"log.level": "log-level",
	})

	root.AddCommand(keygenCmd(st))
	root.AddCommand(signCmd(st))
	root.AddCommand(verifyCmd(st))
	root.AddCommand(enumerateCmd(st))
	root.AddCommand(orbitCmd(st))
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (st *state) load(path string, errOut io.Writer) error {
	cfg, err := config.Load(st.v, path)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, errOut)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	st.cfg, st.logger, st.params = cfg, logger.Named("ecctl"), params
	st.logger.Debug("configuration loaded",
		zap.String("curve", cfg.Curve),
		zap.String("hash", cfg.Hash.String()),
		zap.Int("workers", cfg.Workers),
		zap.Duration("timeout", cfg.Timeout))
	return nil
}

// context returns the command context bounded by the configured timeout.
func (st *state) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if st.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, st.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
