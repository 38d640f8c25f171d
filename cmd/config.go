package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config is the explicit environment-backed configuration: the default book,
// the recognized book aliases with their resolved paths, and the cache
// location for exported account lists. Alias lookup fails explicitly; there
// is no unset-variable fallback.
type Config struct {
	// Book is the default book path or alias when -book is not given.
	Book string `env:"GC_BOOK"`
	// Books maps short aliases to book paths, e.g.
	// GC_BOOKS="perso=/home/u/perso.gnucash,assoc=/home/u/assoc.gnucash".
	Books map[string]string `env:"GC_BOOKS" envKeyValSeparator:"="`
	// CacheDir holds exported account indexes. Defaults to the user cache.
	CacheDir string `env:"GC_CACHE_DIR"`
	// Index is the file name of the exported account list inside CacheDir.
	Index string `env:"GC_INDEX" envDefault:"accounts.txt"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err == nil {
			cfg.CacheDir = filepath.Join(base, "gcbook")
		}
	}
	return cfg, nil
}

// ResolveBook turns the -book argument into a file path: an existing file
// path wins, then a configured alias. With an empty argument the configured
// default book is resolved the same way.
func (c *Config) ResolveBook(arg string) (string, error) {
	name := arg
	if name == "" {
		name = c.Book
	}
	if name == "" {
		return "", fmt.Errorf("no book selected: set GC_BOOK or pass -book")
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if path, ok := c.Books[name]; ok {
		return path, nil
	}
	if len(c.Books) == 0 {
		return "", fmt.Errorf("book %q is neither a file nor a configured alias (GC_BOOKS is empty)", name)
	}
	aliases := make([]string, 0, len(c.Books))
	for a := range c.Books {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	return "", fmt.Errorf("book %q is neither a file nor a configured alias (known: %s)", name, strings.Join(aliases, ", "))
}

// IndexPath is the default destination of the exported account list.
func (c *Config) IndexPath() string {
	return filepath.Join(c.CacheDir, c.Index)
}
