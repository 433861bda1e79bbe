package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read and classify the clipboard",
	Long: `Reads every type currently on the system clipboard, classifies each
entry and prints its metadata. Falls back to plain-text access when the
structured clipboard tool is unavailable.`,
	Args: cobra.NoArgs,
	RunE: runRead,
}

var parseCmd = &cobra.Command{
	Use:   "parse <files...>",
	Short: "Classify local files as if they were dropped",
	Long: `Builds a drop payload from the given files and runs it through the
same pipeline as a drag-and-drop. Identical files are collapsed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(parseCmd)
}

func runRead(cmd *cobra.Command, _ []string) error {
	if inspectorService == nil {
		return errors.New("inspector service not configured")
	}

	result := inspectorService.Read(cmd.Context())
	if err := emitResult(cmd, render.Result(result)); err != nil {
		return err
	}
	if !result.Success {
		return errors.New(result.Message)
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	if inspectorService == nil {
		return errors.New("inspector service not configured")
	}

	payload := transfer.NewDataTransfer()
	for _, path := range args {
		f, err := transfer.OpenFile(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		payload.AddFile(f)
	}

	result := inspectorService.Parse(cmd.Context(), payload, domain.OriginDrop)
	return emitResult(cmd, render.Result(result))
}
