package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
)

var cacheHistoryLimit int

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the incremental cache",
	RunE:  runCacheStatus,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cached schema hashes",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cache, forcing full regeneration on the next run",
	RunE:  runCacheClear,
}

var cacheHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generation runs",
	Long: `Shows run metadata recorded by the cache store. Only the sqlite cache
keeps history; the flat file cache does not.`,
	RunE: runCacheHistory,
}

func init() {
	cacheHistoryCmd.Flags().IntVarP(&cacheHistoryLimit, "limit", "n", 10, "maximum number of runs to show")
	cacheCmd.AddCommand(cacheStatusCmd, cacheClearCmd, cacheHistoryCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openConfiguredCache() (driven.CacheStore, error) {
	if app == nil || app.OpenCache == nil {
		return nil, errors.New("cache not configured")
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.OpenCache(cfg, filepath.Dir(flagConfig))
}

func runCacheStatus(cmd *cobra.Command, _ []string) error {
	cache, err := openConfiguredCache()
	if err != nil {
		return err
	}
	entries, err := cache.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load cache: %w", err)
	}
	if len(entries) == 0 {
		cmd.Println("cache is empty")
		return nil
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Printf("%d cached schemas:\n", len(names))
	for _, name := range names {
		hash := entries[name]
		if len(hash) > 12 {
			hash = hash[:12]
		}
		cmd.Printf("  %s  %s\n", mutedStyle.Render(hash), name)
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	cache, err := openConfiguredCache()
	if err != nil {
		return err
	}
	if err := cache.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	cmd.Println("cache cleared")
	return nil
}

func runCacheHistory(cmd *cobra.Command, _ []string) error {
	cache, err := openConfiguredCache()
	if err != nil {
		return err
	}
	history, ok := cache.(driven.RunHistory)
	if !ok {
		return errors.New("the configured cache store does not keep run history (set cache = \"sqlite\")")
	}

	runs, err := history.Runs(cmd.Context(), cacheHistoryLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("no recorded runs")
		return nil
	}
	for _, run := range runs {
		id := run.ID
		if len(id) > 8 {
			id = id[:8]
		}
		cmd.Printf("%s  %s  %d generated, %d removed\n",
			mutedStyle.Render(id), run.StartedAt, run.Regenerated, run.Removed)
	}
	return nil
}
