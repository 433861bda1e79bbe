package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

var (
	copyFormat string
	copyFile   string
)

var copyCmd = &cobra.Command{
	Use:   "copy [text]",
	Short: "Copy text to the clipboard",
	Long: `Copies text given as an argument, read from --file, or piped on stdin.
Use --format html to write HTML; rich text is always written as plain text.
When the structured clipboard is unavailable, plain text is written through
the fallback mechanism instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().StringVar(&copyFormat, "format", "text/plain", "clipboard format: text/plain or text/html")
	copyCmd.Flags().StringVarP(&copyFile, "file", "f", "", "read content from a file")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if writeBackService == nil {
		return errors.New("write-back service not configured")
	}

	text, err := readContent(cmd, args, copyFile)
	if err != nil {
		return err
	}

	result := writeBackService.WriteBack(cmd.Context(), text, domain.ParseTextFormat(copyFormat))
	if f := format(); f != render.FormatText {
		if err := render.Encode(cmd.OutOrStdout(), f, render.Copy(result)); err != nil {
			return err
		}
	} else {
		cmd.Println(result.Message)
	}

	if !result.Success {
		return errors.New(result.Message)
	}
	return nil
}
