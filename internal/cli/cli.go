// Package cli implements the lehmer command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lehmer/pkg/buildinfo"
	"github.com/matzehuels/lehmer/pkg/cache"
	"github.com/matzehuels/lehmer/pkg/config"
	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/service"
	"github.com/matzehuels/lehmer/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lehmer"

	// defaultEnumerateLimit caps enumerate output unless --limit is given.
	defaultEnumerateLimit = 1000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lehmer",
		Short:        "Lehmer converts permutations to and from their lexicographic rank",
		Long:         `Lehmer encodes a permutation as its Lehmer code, the 0-indexed position among all permutations of the same length in lexicographic order, and decodes codes back into permutations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.SetLevel(resolveLevel(c.verbose, c.Logger.GetLevel()))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lehmer/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable result caching")

	// Register all subcommands
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.factorialCommand())
	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
// The configured log level applies unless --verbose was given.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	c.Logger.SetLevel(resolveLevel(c.verbose, cfg.LogLevel()))
	return cfg, nil
}

// newRunner builds a service runner from the configuration. The caller
// must Close it.
func (c *CLI) newRunner(ctx context.Context) (*service.Runner, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	rc, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	st, err := c.newStore(ctx, cfg)
	if err != nil {
		_ = rc.Close()
		return nil, cfg, err
	}

	var keyer cache.Keyer
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Prefix)
	}

	r := service.NewRunner(rc, keyer, st, c.Logger)
	r.CacheThreshold = cfg.Cache.Threshold
	r.TTL = cfg.Cache.TTL.Duration
	return r, cfg, nil
}

func (c *CLI) newCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil

	case config.CacheRedis:
		spinner := newSpinnerWithContext(ctx, "Connecting to redis at "+cfg.Cache.RedisAddr)
		spinner.Start()
		var rc *cache.RedisCache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			rc, err = cache.DialRedis(ctx, cfg.Cache.RedisAddr)
			return err
		})
		if err != nil {
			spinner.StopWithError("Redis unreachable")
			return nil, lerrors.Wrap(lerrors.ErrCodeCacheUnavailable, err, "connect to redis at %s", cfg.Cache.RedisAddr)
		}
		spinner.Stop()
		c.Logger.Debug("using redis cache", "addr", cfg.Cache.RedisAddr)
		return rc, nil

	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				c.Logger.Warn("no cache directory, caching disabled", "err", err)
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using file cache", "dir", fc.Dir())
		return fc, nil
	}
}

func (c *CLI) newStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil

	case config.StoreMongo:
		spinner := newSpinnerWithContext(ctx, "Connecting to mongodb")
		spinner.Start()
		st, err := store.DialMongo(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase)
		if err != nil {
			spinner.StopWithError("MongoDB unreachable")
			return nil, err
		}
		spinner.Stop()
		c.Logger.Debug("using mongodb store", "database", cfg.Store.MongoDatabase)
		return st, nil

	default:
		st, err := store.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, lerrors.Wrap(lerrors.ErrCodeStoreUnavailable, err, "open ordering store")
		}
		st.Logger = c.Logger
		c.Logger.Debug("using file store", "dir", st.Dir())
		return st, nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lehmer/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
