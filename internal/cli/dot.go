package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Export formats accepted by the dot command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// dotCommand creates the dot command for exporting a net's structure.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		format string
		output string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "dot [net.toml]",
		Short: "Export a net as Graphviz DOT or SVG",
		Long: `Export the structure of a net as a Graphviz graph.

Each key becomes a node and each parent key gets an edge to the frontal keys
of its conditional. Conditionals with several frontal keys are drawn as a
cluster.`,
		Example: `  # DOT to stdout
  factorkeys dot net.toml

  # SVG with keys labeled x0, x1, ...
  factorkeys dot --format svg --prefix x -o net.svg net.toml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: netFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}
			logger := loggerFromContext(cmd.Context())

			_, net, err := loadNet(args[0])
			if err != nil {
				return err
			}
			label := func(k int) string { return prefix + strconv.Itoa(k) }

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(net.ToDOT(label))
			case formatSVG:
				spin := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering SVG")
				spin.run()
				data, err = net.RenderSVG(cmd.Context(), label)
				if err != nil {
					spin.fail("Rendering failed")
					return fmt.Errorf("render: %w", err)
				}
				spin.done(fmt.Sprintf("Rendered %d conditionals", net.Len()))
			}
			logger.Debug("exported net", "format", format, "bytes", len(data))

			if err := writeFile(data, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if output != "" {
				printSuccess("Exported %d conditionals", net.Len())
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "text prepended to every key in node labels")

	return cmd
}
