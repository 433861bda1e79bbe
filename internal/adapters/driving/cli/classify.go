package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
)

var (
	classifyMIME string
	classifyFile string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify a piece of content",
	Long: `Classifies text given as an argument, read from --file, or piped on
stdin. The declared MIME type defaults to text/plain; generic types are
sniffed from the content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Classify content and report its metadata",
	Long: `Classifies content like classify, then reports text statistics,
language and encoding, and the structure of HTML, RTF and JSON content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	for _, c := range []*cobra.Command{classifyCmd, analyzeCmd} {
		c.Flags().StringVarP(&classifyMIME, "mime", "m", "text/plain", "declared MIME type")
		c.Flags().StringVarP(&classifyFile, "file", "f", "", "read content from a file")
		rootCmd.AddCommand(c)
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifierService == nil {
		return errors.New("classifier service not configured")
	}

	content, err := readContent(cmd, args, classifyFile)
	if err != nil {
		return err
	}

	kind := classifierService.ClassifyText(classifyMIME, content)
	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, map[string]string{
			"kind":        kind.String(),
			"description": kind.Description(),
		})
	}
	cmd.Printf("%s (%s)\n", kind.String(), kind.Description())
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if classifierService == nil {
		return errors.New("classifier service not configured")
	}

	content, err := readContent(cmd, args, classifyFile)
	if err != nil {
		return err
	}

	kind, meta := classifierService.AnalyzeText(classifyMIME, content)
	item := render.ItemView{
		Kind:        kind.String(),
		Description: kind.Description(),
		Label:       kind.Description(),
		ByteSize:    int64(len(content)),
		Metadata:    render.Metadata(meta),
	}

	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, item)
	}
	cmd.Printf("%s (%s)\n", item.Kind, item.Description)
	for _, line := range render.DetailLines(item) {
		cmd.Printf("  %s\n", line)
	}
	return nil
}

// readContent returns the argument, the contents of file, or piped stdin.
func readContent(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no content: pass text, --file, or pipe to stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
