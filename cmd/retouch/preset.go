package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
)

func newPresetCmd() *cobra.Command {
	var (
		edit   editFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Write edit settings to a preset file",
		Long: "Write the settings given by flags (on top of --preset, if set) as a preset.\n" +
			"Without --output the preset is printed as TOML.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := edit.build(cmd.Flags())
			if err != nil {
				return err
			}
			if output == "" {
				return p.Encode(cmd.OutOrStdout(), retouch.PresetTOML)
			}
			return p.Save(output)
		},
	}

	edit.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "preset file, .toml or .yaml")
	return cmd
}
