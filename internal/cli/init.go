package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"Gprompt/internal/shell"
)

func newInitCmd() *cobra.Command {

	var binary string

	initCmd := &cobra.Command{
		Use:       "init [bash|zsh]",
		Short:     "Print the shell integration",
		ValidArgs: shell.Supported,
		Long: `Print the script that collects git state before every prompt and
passes it to gprompt. The shell is auto-detected when omitted.

  eval "$(gprompt init bash)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			name := shell.Detect()
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				return fmt.Errorf("cannot detect shell, pass one of: bash, zsh")
			}

			if binary == "" {
				binary = executable()
			}

			snippet, err := shell.Snippet(name, binary)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}

	initCmd.Flags().StringVar(&binary, "binary", "", "Path of the gprompt binary used by the script")

	return initCmd
}

// executable returns the resolved path of the running binary, or its bare
// name.
func executable() string {
	path, err := os.Executable()
	if err != nil {
		return "gprompt"
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return path
}
