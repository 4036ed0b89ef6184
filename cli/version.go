package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/hqpr/simple-blog/loadmore"

	"github.com/spf13/cobra"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

type buildInfo struct {
	Version   string `json:"version"`
	Module    string `json:"module,omitempty"`
	Revision  string `json:"revision,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	Endpoint  string `json:"endpoint"`
}

// currentBuildInfo merges the ldflags version with what the toolchain
// stamped into the binary. A "dev" version falls back to the module version.
func currentBuildInfo() buildInfo {
	info := buildInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Endpoint:  loadmore.Endpoint,
	}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	info.Module = bi.Main.Path
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
			if len(info.Revision) > 12 {
				info.Revision = info.Revision[:12]
			}
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		info := currentBuildInfo()

		switch {
		case short:
			fmt.Fprintln(cmd.OutOrStdout(), info.Version)
			return nil
		case jsonOutput:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		printer.Info("blogctl %s", info.Version)
		if info.Module != "" {
			printer.Field("module", info.Module)
		}
		if info.Revision != "" {
			rev := info.Revision
			if info.Modified {
				rev += " (modified)"
			}
			printer.Field("revision", rev)
		}
		if info.Time != "" {
			printer.Field("built from", info.Time)
		}
		printer.Field("go", info.GoVersion)
		printer.Field("platform", info.Platform)
		printer.Field("endpoint", info.Endpoint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "print the version only")
	versionCmd.Flags().Bool("json", false, "print build information as JSON")
}
