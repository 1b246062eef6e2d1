package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/factorkeys/pkg/errors"
	"github.com/matzehuels/factorkeys/pkg/inference"
	"github.com/matzehuels/factorkeys/pkg/netfile"
	"github.com/matzehuels/factorkeys/pkg/perm"
	"github.com/matzehuels/factorkeys/pkg/reindex"
)

// permuteFlags holds the flag values of the permute command.
type permuteFlags struct {
	policy        string
	separatorOnly bool
	mapping       string
	table         string
	output        string
	label         string
}

// permuteCommand creates the permute command for reindexing a net.
func (c *CLI) permuteCommand() *cobra.Command {
	var flags permuteFlags

	cmd := &cobra.Command{
		Use:   "permute [net.toml]",
		Short: "Relabel every key of a net",
		Long: `Relabel the keys of every conditional in a net.

The relabeling comes from the file's [permutation] table, or from --map
(sparse, "old=new" pairs) or --table (dense, new label per old index) on the
command line. Keys not listed in a sparse map keep their label.

With --policy validated the relabeling is checked against the whole net
before any conditional changes; a rejected permutation leaves the net as it
was. With --policy trusted (the default) the relabeling is applied directly.

Use --separator-only to relabel parent keys only. Frontal keys must then be
left in place by the permutation.`,
		Example: `  # Apply the file's permutation and print the result
  factorkeys permute --policy validated net.toml

  # Swap two keys from the command line
  factorkeys permute --map 5=1,1=5 net.toml

  # Write the reindexed net back out
  factorkeys permute -o reindexed.toml net.toml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: netFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLabel(flags.label); err != nil {
				return fmt.Errorf("invalid --label: %w", err)
			}
			logger := loggerFromContext(cmd.Context())

			doc, net, err := loadNet(args[0])
			if err != nil {
				return err
			}
			inv, err := flags.inverse(doc)
			if err != nil {
				return err
			}
			// A dense table indexes by key, so every key must be inside it
			// even on the trusted path.
			if err := net.CheckBijection(inv); err != nil {
				return fmt.Errorf("permutation: %w", err)
			}
			opts, err := flags.options(doc, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			result, err := reindex.NewRunner[int](logger).Run(cmd.Context(), net, inv, opts)
			if err != nil {
				return fmt.Errorf("permute %s: %w", args[0], err)
			}
			prog.done(fmt.Sprintf("Reindexed %d conditionals", result.Conditionals))

			if flags.output != "" {
				var buf bytes.Buffer
				docOpts := netfile.Options{Policy: opts.Policy.String(), SeparatorOnly: opts.SeparatorOnly}
				if err := netfile.Encode(&buf, netfile.FromNet(net, docOpts)); err != nil {
					return err
				}
				if err := writeFile(buf.Bytes(), flags.output); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			printSuccess("Applied %s permutation (%s)", result.Mode, result.Policy)
			printKeyValue("Touched", fmt.Sprintf("%d of %d", len(result.Touched), result.Conditionals))
			if flags.output != "" {
				printFile(flags.output)
				return nil
			}
			printNewline()
			fmt.Print(net.Render(StyleTitle.Render(flags.label)))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.policy, "policy", "", "trusted or validated (overrides the file's [options])")
	cmd.Flags().BoolVar(&flags.separatorOnly, "separator-only", false, "relabel parent keys only")
	cmd.Flags().StringVar(&flags.mapping, "map", "", `sparse relabeling as "old=new" pairs, e.g. 5=1,2=0`)
	cmd.Flags().StringVar(&flags.table, "table", "", "dense relabeling as a comma-separated table, e.g. 1,0,2")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the reindexed net as TOML to this file")
	cmd.Flags().StringVar(&flags.label, "label", "Net", "heading printed above the conditionals")
	cmd.MarkFlagsMutuallyExclusive("map", "table")

	return cmd
}

// inverse returns the relabeling from the flags, or from doc when neither
// --map nor --table is set.
func (f *permuteFlags) inverse(doc *netfile.Document) (inference.Permutation[int], error) {
	switch {
	case f.mapping != "":
		m, err := parseMapping(f.mapping)
		if err != nil {
			return nil, fmt.Errorf("invalid --map %q: %w", f.mapping, err)
		}
		return m, nil
	case f.table != "":
		indices, err := parseIndices(f.table)
		if err != nil {
			return nil, fmt.Errorf("invalid --table %q: %w", f.table, err)
		}
		p, err := perm.FromSlice(indices)
		if err != nil {
			return nil, fmt.Errorf("invalid --table %q: %w", f.table, err)
		}
		return p, nil
	}
	inv, err := doc.Inverse()
	if err != nil {
		return nil, fmt.Errorf("permutation: %w", err)
	}
	return inv, nil
}

// options layers explicitly set flags over the document's [options] table.
func (f *permuteFlags) options(doc *netfile.Document, changed func(string) bool) (reindex.Options, error) {
	opts, err := doc.ReindexOptions()
	if err != nil {
		return opts, fmt.Errorf("options: %w", err)
	}
	if changed("policy") {
		policy, err := inference.ParsePolicy(f.policy)
		if err != nil {
			return opts, err
		}
		opts.Policy = policy
	}
	if changed("separator-only") {
		opts.SeparatorOnly = f.separatorOnly
	}
	return opts, nil
}
