package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/remotefs"
	"github.com/aretw0/remotefs/internal/render"
	"github.com/aretw0/remotefs/pkg/schema"
)

var ignoreUnknown bool

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Check a configuration file against the remote_fs schema",
	Long:  `Validates the document, materializes the typed settings and runs the cross-field checks. Every violation is reported in one pass with its dotted field path.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().BoolVar(&ignoreUnknown, "ignore-unknown", false, "Skip unrecognized keys instead of rejecting them")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	logger.Debug("validating configuration", "path", path)

	var opts []schema.Option
	if ignoreUnknown {
		opts = append(opts, schema.WithIgnoreUnknown())
	}

	rfs, err := remotefs.Load(path, opts...)
	if err != nil {
		if violations := schema.Violations(err); violations != nil {
			fmt.Println(render.Fail(fmt.Sprintf("%s: %d violation(s)", path, len(violations))))
			for _, v := range violations {
				fmt.Printf("  %s: %s\n", v.Path, v.Detail)
			}
			return err
		}
		fmt.Println(render.Fail(fmt.Sprintf("%s: %v", path, err)))
		return err
	}

	fmt.Println(render.Pass(fmt.Sprintf("%s: valid (%d storage cluster(s))", path, len(rfs.ClusterNames()))))
	return nil
}
