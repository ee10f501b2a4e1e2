package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/sw33tLie/catalogo/internal/utils"
	"github.com/sw33tLie/catalogo/pkg/browse"
	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/sw33tLie/catalogo/pkg/source"
	"github.com/sw33tLie/catalogo/pkg/taxonomy"
)

func sourceOptions() source.Options {
	return source.Options{
		Timeout: viper.GetDuration("fetch.timeout"),
		Retries: viper.GetInt("fetch.retries"),
		Log:     utils.Log,
	}
}

func loadTaxonomy() (*taxonomy.Taxonomy, error) {
	path := viper.GetString("taxonomy")
	tax, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading taxonomy %s: %w", path, err)
	}
	return tax, nil
}

func loadItems(ctx context.Context) ([]catalog.Item, error) {
	return source.Load(ctx, viper.GetString("source"), sourceOptions())
}

// loadSession loads the taxonomy and the collection. A collection that fails
// to load is not an error here: the session carries the failure and renders
// the load failure message.
func loadSession(ctx context.Context) (*browse.Session, error) {
	tax, err := loadTaxonomy()
	if err != nil {
		return nil, err
	}
	items, loadErr := loadItems(ctx)
	if loadErr != nil {
		utils.Log.Warnf("Continuing with an empty catalog: %v", loadErr)
	}
	return browse.NewSession(items, tax, loadErr), nil
}
