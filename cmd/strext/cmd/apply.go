package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strext/core/config"
	strexterror "github.com/msto63/strext/core/error"
	"github.com/msto63/strext/internal/pipeline"
)

// chainSeparator splits several operations given to apply
const chainSeparator = "+"

var applyText string

var applyCmd = &cobra.Command{
	Use:   "apply <op> [args...] [+ <op> [args...]]...",
	Short: "Apply operations to text",
	Long: `Applies one or more operations to the --text value, or to every line
read from stdin when --text is not given. Operations are chained with a
standalone "+". Arguments starting with "-" must follow "--".

Examples:
  strext apply get-initials --text "John Smith"            # JS
  strext apply fixed-width 10 --text abc                   # "abc       "
  strext apply remove-diacritics + title --text "crème"    # Creme
  cat names.txt | strext apply truncate-multiple-spaces
  strext apply -- truncate-multiple-occurances-of-char - --text "a--b"`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeOps,
	RunE:              runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyText, "text", "t", "", "Text to transform (default: read lines from stdin)")
}

func runApply(cmd *cobra.Command, args []string) error {
	steps, err := parseChain(args)
	if err != nil {
		return err
	}

	p, err := pipeline.CompileSteps("apply", steps, pipeline.CompileOptions{Logger: logger})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("text") {
		out, err := p.Apply(commandContext(cmd), applyText)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	_, err = p.ApplyLines(commandContext(cmd), cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

// parseChain splits "op a b + op c" into steps
func parseChain(args []string) ([]config.Step, error) {
	var (
		steps   []config.Step
		current *config.Step
	)

	for _, arg := range args {
		if arg == chainSeparator {
			if current == nil {
				return nil, emptyChainStep(len(steps) + 1)
			}
			steps = append(steps, *current)
			current = nil
			continue
		}

		if current == nil {
			current = &config.Step{Op: arg}
			continue
		}
		current.Args = append(current.Args, arg)
	}

	if current == nil {
		return nil, emptyChainStep(len(steps) + 1)
	}
	return append(steps, *current), nil
}

func emptyChainStep(index int) error {
	return strexterror.New(fmt.Sprintf("step %d: operation name missing around %q", index, chainSeparator)).
		WithCode(strexterror.CodeInvalidInput).
		WithOperation("cmd.parseChain").
		WithDetail("step", index)
}
