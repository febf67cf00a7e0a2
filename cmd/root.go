package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// These are set at build time via -ldflags
// "-X github.com/prabhavk/entwine/cmd.buildVersion=0.2.0 -X github.com/prabhavk/entwine/cmd.buildCommit=abc123 -X github.com/prabhavk/entwine/cmd.buildDate=2026-02-27".
var (
	buildVersion = "dev"
	buildCommit  = ""
	buildDate    = ""
)

var rootCmd = &cobra.Command{
	Use:   "entwine",
	Short: "Build a phylogenetic reassortment network from a mutations table",
	Long: `entwine incrementally grafts segmented-genome virus samples into a
reassortment network. Each sample is placed, per segment, against the
network built from every sample before it, introducing a bifurcation or
a reassortment junction only where the data actually forces one.`,
}

func init() {
	rootCmd.Version = resolveVersion()
}

// resolveVersion reports the ldflags-injected build identity for
// --version, falling back to debug.ReadBuildInfo's VCS stamp when
// ldflags were never set (go install, go run).
func resolveVersion() string {
	commit := buildCommit
	date := buildDate
	dirty := false

	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					commit = s.Value
				case "vcs.time":
					date = s.Value
				case "vcs.modified":
					dirty = s.Value == "true"
				}
			}
		}
	}

	if commit == "" {
		return buildVersion
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if dirty {
		commit += "-dirty"
	}

	parts := []string{commit}
	if date != "" {
		parts = append(parts, date)
	}
	return fmt.Sprintf("%s (%s)", buildVersion, strings.Join(parts, ", "))
}

func Execute() error {
	return rootCmd.Execute()
}
