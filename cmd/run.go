package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/prabhavk/entwine/internal/config"
	"github.com/prabhavk/entwine/internal/graft"
	"github.com/prabhavk/entwine/internal/ingest"
	"github.com/prabhavk/entwine/internal/netdump"
	"github.com/prabhavk/entwine/internal/network"
	"github.com/prabhavk/entwine/internal/table"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build a reassortment network from a mutations table",
	Long: `Run reads a mutations table, grafts each sample into a network in
table order, and writes the resulting network dump.

The first row is bootstrapped at the root; every later row is placed by
the general grafter, which may introduce hidden (bifurcation) or
reassortment nodes as needed.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("mutations", "", "Path to the mutations table (CSV)")
	runCmd.Flags().String("network", "", "Path to write the network dump to")
	runCmd.Flags().String("config", "", "Path to an optional YAML config file")
	_ = runCmd.MarkFlagRequired("mutations")
	_ = runCmd.MarkFlagRequired("network")
}

// runOpts holds the resolved configuration for a single run invocation.
type runOpts struct {
	mutationsPath string
	networkPath   string
	configPath    string
}

func runRun(cmd *cobra.Command, args []string) error {
	mutationsPath, _ := cmd.Flags().GetString("mutations")
	networkPath, _ := cmd.Flags().GetString("network")
	configPath, _ := cmd.Flags().GetString("config")

	opts := runOpts{
		mutationsPath: mutationsPath,
		networkPath:   networkPath,
		configPath:    configPath,
	}

	return executeRun(opts, cmd.OutOrStdout())
}

// executeRun wires the input table, configuration, network, and grafter
// together and drives the ingest loop to completion, then writes the
// resulting network dump. It is kept free of cobra so it can be tested
// directly.
func executeRun(opts runOpts, w io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config %q: %w", opts.configPath, err)
	}

	in, err := os.Open(opts.mutationsPath)
	if err != nil {
		return fmt.Errorf("opening mutations table %q: %w", opts.mutationsPath, err)
	}
	defer in.Close()

	src, err := table.Open(in)
	if err != nil {
		return fmt.Errorf("parsing mutations table %q: %w", opts.mutationsPath, err)
	}

	net := network.New(src.Segments(), cfg.PlaceholderDate)
	g := graft.New(cfg.SearchBoundMultiplier, cfg.PlaceholderDate)

	stats, err := ingest.Run(net, g, src)
	if err != nil {
		return fmt.Errorf("ingesting %q: %w", opts.mutationsPath, err)
	}
	fmt.Fprintf(w, "grafted %d sample(s)\n", stats.RowsGrafted)

	out, err := os.Create(opts.networkPath)
	if err != nil {
		return fmt.Errorf("creating network output %q: %w", opts.networkPath, err)
	}
	defer out.Close()

	if err := netdump.Write(out, net); err != nil {
		return fmt.Errorf("writing network output %q: %w", opts.networkPath, err)
	}
	return nil
}
