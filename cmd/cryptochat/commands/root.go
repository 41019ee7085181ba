package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cryptochat/internal/app"
)

// cli carries flag values and the wired app between the root command and
// its subcommands.
type cli struct {
	home       string
	configPath string
	curve      string
	logLevel   string
	logJSON    bool
	passphrase string

	wire *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "cryptochat",
		Short:        "End-to-end encrypted chat playground",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.home, "home", "", "config dir (default ~/.cryptochat)")
	pf.StringVar(&c.configPath, "config", "", "YAML config file (default <home>/config.yaml)")
	pf.StringVar(&c.curve, "curve", "", "key-agreement curve (P-256, P-384, P-521, X25519)")
	pf.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&c.logJSON, "log-json", false, "log as JSON")
	pf.StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase for keys and sealed text")

	root.AddCommand(
		demoCmd(c),
		keygenCmd(c),
		deriveCmd(c),
		hashCmd(c),
		signCmd(c),
		sealCmd(c),
		openCmd(c),
	)
	return root
}

// setup resolves the config and builds the wire.
func (c *cli) setup(cmd *cobra.Command) error {
	if c.home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.home = filepath.Join(dir, ".cryptochat")
	}
	if c.configPath == "" {
		c.configPath = filepath.Join(c.home, "config.yaml")
	}

	cfg, err := app.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	cfg.Home = c.home

	flags := cmd.Flags()
	if flags.Changed("curve") {
		cfg.Curve = c.curve
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = c.logJSON
	}

	w, err := app.NewWire(cfg)
	if err != nil {
		return err
	}
	c.wire = w
	return nil
}
