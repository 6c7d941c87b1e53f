package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeertmans/DelaunayTriangulation/internal/genconfig"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a generator settings file",
	Long: `Create a generator settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'delaunay.yml' is used.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := "delaunay.yml"
	if len(args) >= 1 {
		path = args[0]
	}

	ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("aborted by user...")
		return nil
	}

	if err := genconfig.Save(path, genconfig.Default()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("generator settings written to '%s'\n", path)
	return nil
}
