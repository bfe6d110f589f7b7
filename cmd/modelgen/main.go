// modelgen generates statically typed Dart models from OpenAPI and Swagger
// schema documents.
package main

import (
	"fmt"
	"os"

	filecache "github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/cache/file"
	sqlitecache "github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/cache/sqlite"
	configfile "github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/config/file"
	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/emitters/builtvalue"
	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/emitters/jsonserial"
	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/emitters/manual"
	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/loader/openapi"
	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/output"
	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driving/cli"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/core/services"
)

func main() {
	registry := services.NewBackendRegistry(
		manual.New(),
		jsonserial.New(),
		builtvalue.New(),
	)

	cli.SetApp(&cli.App{
		LoadConfig: func(path string) (driven.ConfigStore, error) {
			return configfile.NewConfigStore(path)
		},
		OpenCache: func(cfg driven.ConfigStore, projectDir string) (driven.CacheStore, error) {
			switch cfg.CacheKind() {
			case "", "file":
				return filecache.NewStore(projectDir), nil
			case "sqlite":
				return sqlitecache.NewStore(projectDir)
			default:
				return nil, fmt.Errorf("unknown cache kind %q", cfg.CacheKind())
			}
		},
		NewPipeline: func(cfg driven.ConfigStore, backendName string, cache driven.CacheStore, outputDir string) (cli.Pipeline, error) {
			backend, err := registry.Lookup(backendName)
			if err != nil {
				return nil, err
			}
			return services.NewGenerator(
				openapi.NewLoader(),
				backend,
				cache,
				output.NewWriter(),
				services.NewLinter(cfg),
				outputDir,
			), nil
		},
		Registry: registry,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
