package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/wardfinder/backend/internal/adapters/registry"
	"github.com/wardfinder/backend/internal/adapters/source"
	"github.com/wardfinder/backend/internal/application/services"
	"github.com/wardfinder/backend/pkg/config"
)

// globalOptions override the environment configuration for one invocation
type globalOptions struct {
	dataDir       string
	hospitalsFile string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "wardctl",
		Short:         "Hospital ward search from the command line",
		Long:          "wardctl searches, inspects and verifies hospital ward data files using the same pipeline as the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory containing hospital data files (default $DATA_DIR or ./data)")
	rootCmd.PersistentFlags().StringVar(&opts.hospitalsFile, "hospitals-file", "", "YAML hospital registry (default $HOSPITALS_FILE or built-in hospitals)")

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newInspectCmd(opts),
		newVerifyCmd(opts),
		newHospitalsCmd(opts),
	)
	return rootCmd
}

// buildService wires the registry, loader and search service from
// configuration plus flag overrides
func buildService(opts *globalOptions) (*services.WardSearchService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.Data.Dir = opts.dataDir
	}
	if opts.hospitalsFile != "" {
		cfg.Data.HospitalsFile = opts.hospitalsFile
	}

	hospitalRegistry, err := registry.New(cfg.Data.Dir, cfg.Data.HospitalsFile)
	if err != nil {
		return nil, err
	}

	return services.NewWardSearchService(
		hospitalRegistry,
		source.NewFileLoader(cfg.Data.ReadTimeout),
		cfg.App.ServiceName,
	), nil
}

func writeJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
