package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/factorkeys/pkg/errors"
)

// inspectCommand creates the inspect command for printing and validating a net.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		label  string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [net.toml]",
		Short: "Print a net and check its key ordering",
		Long: `Print every conditional of a net and check its structure.

A net is well formed when each conditional's frontal keys all precede its
parent keys and no key is frontal in more than one conditional. If the file
carries a [permutation] table, inspect also reports whether applying it
would keep the net well formed.

Use --strict to exit with an error when validation fails.`,
		Example: `  # Print and validate
  factorkeys inspect net.toml

  # Fail in scripts when the ordering is broken
  factorkeys inspect --strict net.toml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: netFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLabel(label); err != nil {
				return fmt.Errorf("invalid --label: %w", err)
			}
			logger := loggerFromContext(cmd.Context())

			doc, net, err := loadNet(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded net", "path", args[0], "conditionals", net.Len())

			printSuccess("Loaded %s", args[0])
			printStats(net.Len(), len(net.Keys()))
			printNewline()
			fmt.Print(net.Render(StyleTitle.Render(label)))
			printNewline()

			validErr := net.Validate()
			if validErr != nil {
				printWarning("Net is not well formed: %s", errors.UserMessage(validErr))
			} else {
				printSuccess("All conditionals are ordered")
			}

			if doc.HasPermutation() {
				inv, err := doc.Inverse()
				if err != nil {
					return fmt.Errorf("permutation: %w", err)
				}
				if err := net.CheckBijection(inv); err != nil {
					printWarning("Permutation is not a bijection: %s", errors.UserMessage(err))
				} else if err := net.CheckPermutation(inv); err != nil {
					printWarning("Permutation would break ordering: %s", errors.UserMessage(err))
				} else {
					printSuccess("Permutation keeps every conditional ordered")
				}
			}

			if strict && validErr != nil {
				return fmt.Errorf("validate %s: %w", args[0], validErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "Net", "heading printed above the conditionals")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if validation fails")

	return cmd
}

// netFileCompletion completes positional arguments with TOML files.
func netFileCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}
