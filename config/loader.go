package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadOptions controls where Load reads the regulation catalog and
// current-regulation override from, mirroring the teacher's --config
// flag plus env-prefix pattern.
type LoadOptions struct {
	// CatalogPath is the JSON catalog file to read. Required.
	CatalogPath string
	// EnvPrefix is the viper env-var prefix, e.g. "VGC" reads VGC_REGULATION.
	EnvPrefix string
}

// LoadFromFile reads the regulation catalog at opts.CatalogPath, applies
// a VGC_REGULATION (or opts.EnvPrefix-prefixed) environment override to
// CurrentRegulation if set, stores the result process-wide via Store, and
// returns it.
func LoadFromFile(opts LoadOptions) (Catalog, error) {
	f, err := os.Open(opts.CatalogPath)
	if err != nil {
		return Catalog{}, fmt.Errorf("open regulation catalog %q: %w", opts.CatalogPath, err)
	}
	defer f.Close()

	catalog, err := ParseCatalog(f)
	if err != nil {
		return Catalog{}, err
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = "VGC"
	}
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := v.GetString("regulation"); override != "" {
		if _, ok := catalog.Regulations[override]; ok {
			catalog.CurrentRegulation = override
		}
	}

	Store(catalog)
	return catalog, nil
}
