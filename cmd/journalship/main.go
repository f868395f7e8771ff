package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/journalship/internal/cliconfig"
	"github.com/bft-labs/journalship/internal/journal"
	"github.com/bft-labs/journalship/pkg/log"
)

const helpDescription = `
Ship messages to the systemd journal over its native protocol.

With message arguments, sends a single record and exits. Without
arguments, reads standard input and sends one record per line, like
systemd-cat. Structured fields, the syslog identifier and the record
priority come from flags, JOURNALSHIP_* environment variables, or a
TOML config file, in that order of precedence.
`

var exampleUsage = strings.TrimSpace(`
  journalship "deploy finished"
  make build 2>&1 | journalship --identifier build --priority warn
  journalship --field ENV=prod --field REGION=eu-1 --follow < /var/log/app.pipe
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// shipper is the current logging state. Follow mode swaps it
// atomically when the config file changes.
type shipper struct {
	logger log.Logger
	level  journal.Level
}

func (s *shipper) ship(msg string) {
	switch s.level {
	case journal.LevelError:
		s.logger.Error(msg)
	case journal.LevelWarn:
		s.logger.Warn(msg)
	case journal.LevelDebug:
		s.logger.Debug(msg)
	case journal.LevelTrace:
		s.logger.Trace(msg)
	default:
		s.logger.Info(msg)
	}
}

// parseExtraFields turns KEY=value pairs into façade fields. Validate
// has already rejected malformed entries.
func parseExtraFields(pairs []string) []log.Field {
	fields := make([]log.Field, 0, len(pairs))
	for _, kv := range pairs {
		key, value, _ := strings.Cut(kv, "=")
		fields = append(fields, log.String(key, value))
	}
	return fields
}

// buildShipper constructs the journal logger for cfg, falling back to
// stderr via zerolog when configured and the journal is unreachable.
func buildShipper(cfg cliconfig.Config) (*shipper, error) {
	logger, err := log.NewJournalLogger(log.Options{
		Identifier:  cfg.Identifier,
		Target:      cfg.Target,
		SocketPath:  cfg.SocketPath,
		ExtraFields: parseExtraFields(cfg.ExtraFields),
	})
	if err != nil {
		if !cfg.StderrFallback {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "journalship: journal unreachable, writing to stderr: %v\n", err)
		return &shipper{logger: log.NewZerologAdapter(), level: cfg.Level()}, nil
	}
	return &shipper{logger: logger, level: cfg.Level()}, nil
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	diag := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "journalship [message...]",
		Short:   "Ship messages to the systemd journal",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.journalship/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			s, err := buildShipper(cfg)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				s.ship(strings.Join(args, " "))
				return nil
			}

			var cur atomic.Pointer[shipper]
			cur.Store(s)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Follow && cfgFile != "" {
				watcher := cliconfig.NewWatcher(cfgFile, cfg, changed, func(next cliconfig.Config) {
					ns, err := buildShipper(next)
					if err != nil {
						diag.Warn().Err(err).Msg("config reloaded but logger rebuild failed")
						return
					}
					cur.Store(ns)
					diag.Info().Str("priority", next.Priority).Msg("configuration reloaded")
				})
				go watcher.Run(ctx)
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
			for scanner.Scan() {
				if ctx.Err() != nil {
					break
				}
				cur.Load().ship(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.journalship/config.toml)")
	root.Flags().StringVar(&cfg.Identifier, "identifier", cfg.Identifier, "syslog identifier (defaults to the executable name)")
	root.Flags().StringVar(&cfg.Target, "target", cfg.Target, "TARGET field attached to every record (defaults to the identifier)")
	root.Flags().StringVar(&cfg.Priority, "priority", cfg.Priority, "record priority: error, warn, info, debug or trace")
	root.Flags().StringArrayVar(&cfg.ExtraFields, "field", cfg.ExtraFields, "extra KEY=value field attached to every record (repeatable)")
	root.Flags().BoolVar(&cfg.StderrFallback, "stderr-fallback", cfg.StderrFallback, "write to stderr instead of failing when the journal is unreachable")
	root.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "keep reading stdin and reload the config file on changes")

	root.Flags().StringVar(&cfg.SocketPath, "socket", cfg.SocketPath, "journal socket path (override only for testing)")
	if err := root.Flags().MarkHidden("socket"); err != nil {
		diag.Info().Err(err).Msg("failed to hide socket flag")
	}

	if err := root.Execute(); err != nil {
		diag.Error().Err(err).Msg("journalship")
		os.Exit(1)
	}
}
