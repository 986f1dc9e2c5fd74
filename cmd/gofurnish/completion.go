package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for gofurnish.

To load completions:

Bash:

  $ source <(gofurnish completion bash)

  To load completions for each session, execute once:
  Linux:
    $ gofurnish completion bash > /etc/bash_completion.d/gofurnish
  macOS:
    $ gofurnish completion bash > /usr/local/etc/bash_completion.d/gofurnish

Zsh:

  $ gofurnish completion zsh > "${fpath[1]}/_gofurnish"

Fish:

  $ gofurnish completion fish > ~/.config/fish/completions/gofurnish.fish

PowerShell:

  PS> gofurnish completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
