package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rwx-research/vsh/internal/cli"
)

var (
	Force bool

	exportCmd = &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exportConfig := cli.ExportConfig{
				SessionConfig: sessionConfig(),
				Output:        args[0],
				Force:         Force,
			}
			if isTerminal(os.Stdin) {
				exportConfig.Confirm = confirmOverwrite
			}

			return service.Export(exportConfig)
		},
		Short: "Write the filesystem, after running the startup script, to an XML or YAML file",
		Use:   "export [flags] <output.xml|output.yaml>",
	}
)

func init() {
	exportCmd.Flags().BoolVarP(&Force, "force", "f", false, "overwrite the output file without asking")
}

func confirmOverwrite(path string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s already exists. Overwrite it", path),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
