package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the triviaz version and the Go toolchain it was built with",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString(version, readBuildInfo()))
	},
}

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

// versionString prefers the linker-set version, then the module version
// from `go install`, then the VCS revision the binary was built from.
func versionString(linked string, info *debug.BuildInfo) string {
	v := linked
	if v == "" && info != nil {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			v = mv
		} else {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 12 {
					v = "devel-" + s.Value[:12]
				}
			}
		}
	}
	if v == "" {
		v = "(devel)"
	}
	return fmt.Sprintf("triviaz %s (%s %s/%s)", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
