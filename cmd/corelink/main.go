package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/bft-labs/corelink/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/corelink/internal/adapters/http"
	"github.com/bft-labs/corelink/internal/cliconfig"
	"github.com/bft-labs/corelink/pkg/corelink"
	logPkg "github.com/bft-labs/corelink/pkg/log"
)

const helpDescription = `
Keep a registered session with link.apphash.io for the lifetime of this process.

Highlights:
  - Registers a session on startup and releases it on shutdown, with a bounded
    teardown grace period.
  - Sends periodic heartbeats so the control plane knows the node is alive.
  - Configure via file, environment (CORELINK_*), or flags.

Docs: https://docs.apphash.io/corelink
Contact: actor93kor@gmail.com
`

var exampleUsage = strings.TrimSpace(`
  corelink --node-id my-node --auth-key <api-key>
  corelink --config $HOME/.corelink/config.toml --shutdown-at-exit
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var debugLog bool

	root := &cobra.Command{
		Use:     "corelink",
		Short:   "Keep a registered session with link.apphash.io for this process",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cliconfig.Logger(debugLog)

			// Load config file first (default $HOME/.corelink/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

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

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logCfg := cfg
			if len(logCfg.AuthKey) > 0 {
				logCfg.AuthKey = "*****"
			}
			log.Info().Interface("config", logCfg).Msg("configuration")

			zerologAdapter := logPkg.NewZerologAdapterWithLogger(log)

			sessions := fsAdapter.NewSessionFileRepository(cfg.StateDir)
			driver := httpAdapter.NewSessionDriver(
				httpAdapter.SessionConfig{
					ServiceURL: cfg.ServiceURL,
					AuthKey:    cfg.AuthKey,
					NodeID:     cfg.NodeID,
				},
				&http.Client{Timeout: cfg.HTTPTimeout},
				sessions,
				zerologAdapter,
			)

			inst := corelink.NewGlobalInstance(
				corelink.Options{
					ShutdownGracePeriod: cfg.ShutdownGrace,
					CallShutdownAtExit:  cfg.ShutdownAtExit,
				},
				corelink.WithDriver(driver),
				corelink.WithLogger(zerologAdapter),
			)
			if st := inst.Status(); !st.IsOK() {
				return fmt.Errorf("initialize: %s", st)
			}
			defer inst.Close()
			log.Info().Str("session", driver.Session().ID).Msg("session registered")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				watcher := cliconfig.NewWatcher(cfgFile, zerologAdapter)
				go func() {
					if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
						log.Warn().Err(err).Msg("config watcher stopped")
					}
				}()
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			ticker := time.NewTicker(cfg.HeartbeatInterval)
			defer ticker.Stop()

			for {
				select {
				case <-sigCh:
					log.Info().Msg("received signal, shutting down...")
					if st := inst.Shutdown(); !st.IsOK() {
						return fmt.Errorf("shutdown: %s", st)
					}
					return nil
				case <-ticker.C:
					if err := driver.Heartbeat(ctx); err != nil {
						log.Warn().Err(err).Msg("heartbeat failed")
					}
				}
			}
		},
	}

	log := cliconfig.Logger(false)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.corelink/config.toml)")
	root.Flags().StringVar(&cfg.NodeID, "node-id", cfg.NodeID, "node identifier reported to the service")
	root.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, fmt.Sprintf("base service URL (defaults to %s; override only for internal testing)", cliconfig.DefaultServiceURL))
	if err := root.Flags().MarkHidden("service-url"); err != nil {
		log.Info().Err(err).Msg("failed to hide service-url flag")
	}
	root.Flags().StringVar(&cfg.AuthKey, "auth-key", cfg.AuthKey, "API key for authentication")
	root.Flags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "state directory for session.json (default: $HOME/.corelink)")
	if err := root.Flags().MarkHidden("state-dir"); err != nil {
		log.Info().Err(err).Msg("failed to hide state-dir flag")
	}

	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	root.Flags().DurationVar(&cfg.HeartbeatInterval, "heartbeat", cfg.HeartbeatInterval, "heartbeat interval")
	root.Flags().DurationVar(&cfg.ShutdownGrace, "grace", cfg.ShutdownGrace, "maximum time to wait for session teardown")
	root.Flags().BoolVar(&cfg.ShutdownAtExit, "shutdown-at-exit", cfg.ShutdownAtExit, "arm the automatic shutdown hook")
	root.Flags().BoolVar(&debugLog, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("corelink")
		os.Exit(1)
	}
}
