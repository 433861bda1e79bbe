package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/mcp"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
)

// versionInfo is the structured form of the version command's output.
type versionInfo struct {
	Version    string `json:"version" yaml:"version"`
	MCPVersion string `json:"mcpVersion" yaml:"mcpVersion"`
	GoVersion  string `json:"goVersion" yaml:"goVersion"`
	Platform   string `json:"platform" yaml:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := versionInfo{
			Version:    version,
			MCPVersion: mcp.Version,
			GoVersion:  runtime.Version(),
			Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		}
		if f := format(); f != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), f, info)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "clipscope version %s\n", info.Version)
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  mcp server %s\n  %s %s\n", info.MCPVersion, info.GoVersion, info.Platform)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
