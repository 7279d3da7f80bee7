// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `fakerhelp completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for fakerhelp.

` + SubtitleStyle.Render("Bash:") + `
  eval "$(fakerhelp completion bash)"

` + SubtitleStyle.Render("Zsh:") + `
  fakerhelp completion zsh > "${fpath[1]}/_fakerhelp"

` + SubtitleStyle.Render("Fish:") + `
  fakerhelp completion fish > ~/.config/fish/completions/fakerhelp.fish

` + SubtitleStyle.Render("PowerShell:") + `
  fakerhelp completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completionFunc is the ValidArgsFunction signature.
type completionFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

// completeProviders suggests provider short names for positional arguments.
func completeProviders(app *App) completionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		ex, err := app.explorer()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, p := range ex.ListProviders() {
			if strings.HasPrefix(p.Name, toComplete) {
				out = append(out, p.Name+"\t"+p.QualifiedName)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeFunctions suggests function names for positional arguments.
func completeFunctions(app *App) completionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		ex, err := app.explorer()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for name := range ex.SearchFunctionNames(toComplete) {
			if strings.HasPrefix(name, toComplete) {
				out = append(out, name)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
