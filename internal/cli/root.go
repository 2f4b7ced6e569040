package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

const selfLogger = "logfacade.cli"

type app struct {
	configPath string
	backend    string
	level      string
	registry   *logger.Registry
}

// NewRootCommand builds the logfacade command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "logfacade",
		Short:         "Inspect and exercise the logging facade",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.registry == nil {
				return nil
			}
			if err := syncError(a.registry.Sync()); err != nil {
				return fmt.Errorf("sync: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (overrides "+config.EnvConfig+")")
	root.PersistentFlags().StringVarP(&a.backend, "backend", "b", "", "backend: auto, zap or slog (overrides "+config.EnvBackend+")")
	root.PersistentFlags().StringVarP(&a.level, "threshold", "t", "", "root threshold (overrides "+config.EnvLevel+")")

	root.AddCommand(a.emitCommand(), a.levelsCommand(), a.backendCommand())
	return root
}

// Execute runs the command with args and returns its error.
func Execute(version string, args []string) error {
	root := NewRootCommand(version)
	root.SetArgs(args)
	return root.Execute()
}

// syncError drops the errors a terminal or pipe reports for fsync and
// keeps the rest, such as failures flushing a file output.
func syncError(err error) error {
	var kept error
	for _, e := range multierr.Errors(err) {
		if errors.Is(e, syscall.EINVAL) || errors.Is(e, syscall.ENOTTY) {
			continue
		}
		kept = multierr.Append(kept, e)
	}
	return kept
}

// setup layers the configuration: the file (--config, else
// LOGFACADE_CONFIG), then the environment overrides, then the flags.
func (a *app) setup() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	if a.level != "" {
		if cfg.Level, err = core.ParseLevel(a.level); err != nil {
			return err
		}
	}

	r, err := logger.NewDefaultRegistry(cfg)
	if err != nil {
		return err
	}
	logger.SetDefault(r)
	a.registry = r
	return nil
}

func (a *app) loadConfig() (config.Config, error) {
	if a.configPath == "" {
		return config.FromEnv()
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	return config.OverrideFromEnv(cfg)
}

func (a *app) emitCommand() *cobra.Command {
	var (
		name    string
		level   string
		errText string
	)
	cmd := &cobra.Command{
		Use:   "emit MESSAGE...",
		Short: "Emit one record through the facade",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := core.ParseLevel(level)
			if err != nil {
				return err
			}
			l, err := a.registry.Logger(name)
			if err != nil {
				return err
			}

			var cause error
			if errText != "" {
				cause = errors.New(errText)
			}
			if err := l.LogErr(lvl, strings.Join(args, " "), cause); err != nil {
				return fmt.Errorf("emit: %w", err)
			}

			self, err := a.registry.Logger(selfLogger)
			if err != nil {
				return err
			}
			return self.Debug("emitted one " + lvl.String() + " record for " + name)
		},
	}
	cmd.Flags().StringVarP(&name, "logger", "n", "logfacade", "logger name")
	cmd.Flags().StringVarP(&level, "level", "l", "info", "record level")
	cmd.Flags().StringVarP(&errText, "error", "e", "", "attach an error with this text")
	return cmd
}

func (a *app) levelsCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show which levels are enabled for a logger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.registry.Logger(name)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, lvl := range core.AllLevels() {
				enabled, err := l.IsEnabled(lvl)
				if err != nil {
					return err
				}
				rows = append(rows, []string{lvl.String(), strconv.FormatBool(enabled)})
			}

			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header([]string{"Level", "Enabled"})
			if err := table.Bulk(rows); err != nil {
				return err
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&name, "logger", "n", "logfacade", "logger name")
	return cmd
}

func (a *app) backendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Print the backend the registry selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.registry.Backend()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), b.Name())
			return err
		},
	}
}
