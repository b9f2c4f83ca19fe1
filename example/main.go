// Command stldemo appends integers to a vector, sorts them through cursors and
// prints the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/d3phys/stl"
	"github.com/d3phys/stl/algo"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:          "stldemo",
		Short:        "Sort integers held in an stl.Vector",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg := defaultConfig()
				if err := loadConfig(configPath, &fileCfg); err != nil {
					return err
				}
				overrideFlags(cmd.Flags(), &fileCfg, cfg)
				cfg = fileCfg
			}
			logger, err := cfg.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(cfg, cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.IntSliceVar(&cfg.Values, "values", cfg.Values, "values to append")
	flags.IntVar(&cfg.Resize, "resize", cfg.Resize, "resize the sorted vector (negative keeps it)")
	flags.Uint64Var(&cfg.MemoryLimit, "memory-limit", cfg.MemoryLimit, "byte limit for element blocks (0 is unlimited)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flags.BoolVar(&cfg.Development, "development", cfg.Development, "human readable logs")
	flags.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print memory metrics")
	return cmd
}

// overrideFlags copies explicitly set flags from flagCfg over the file config.
func overrideFlags(flags *pflag.FlagSet, dst *Config, flagCfg Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "values":
			dst.Values = flagCfg.Values
		case "resize":
			dst.Resize = flagCfg.Resize
		case "memory-limit":
			dst.MemoryLimit = flagCfg.MemoryLimit
		case "log-level":
			dst.LogLevel = flagCfg.LogLevel
		case "development":
			dst.Development = flagCfg.Development
		case "metrics":
			dst.Metrics = flagCfg.Metrics
		}
	})
}

func run(cfg Config, out io.Writer, logger *zap.Logger) error {
	var memory stl.Memory = stl.HeapMemory()
	if cfg.MemoryLimit > 0 {
		memory = stl.NewBudget(uintptr(cfg.MemoryLimit), stl.WithBudgetLogger(logger))
	}
	metrics := stl.NewMetricsMemory(memory, "stldemo")

	vec, err := stl.NewVector[int](0, stl.WithMemory(metrics), stl.WithLogger(logger))
	if err != nil {
		return err
	}
	defer vec.Release()

	if err := vec.Append(cfg.Values...); err != nil {
		return err
	}
	algo.Sort(vec.Begin(), vec.End())

	if cfg.Resize >= 0 {
		if err := vec.Resize(cfg.Resize); err != nil {
			return err
		}
	}

	logger.Info("vector ready", zap.Int("len", vec.Len()), zap.Int("cap", vec.Cap()))
	for it := vec.Begin(); !it.Equal(vec.End()); it = it.Next() {
		fmt.Fprintf(out, "elem = %d\n", it.Get())
	}

	if cfg.Metrics {
		return dumpMetrics(out, metrics)
	}
	return nil
}

func dumpMetrics(out io.Writer, c prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
