package cmd

import (
	"github.com/spf13/cobra"
)

// definitionCmd represents the definition command.
var definitionCmd = newDefinitionCmd()

func newDefinitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "definition <route>",
		Aliases: []string{"jump"},
		Short:   "Print the path:line:column of the widget behind a route",
		Long: `Resolve a route (HomeRoute) or widget (HomeScreen) and locate the widget's
class declaration inside the resolved file, printing path:line:column for
editors to jump to. When the class cannot be found the bare path is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prepareLocator()

			return displayResolutions(cmd.Context(), resolveNames(args, true))
		},
	}
}

func init() {
	rootCmd.AddCommand(definitionCmd)
}
