package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/indexstore-tools/fake-toolchain/internal/toolchain"
)

type planEntry struct {
	toolchain.Artifact `yaml:",inline"`
	Present            bool `yaml:"present"`
}

type planOutput struct {
	Platform  string           `yaml:"platform"`
	Arch      string           `yaml:"arch"`
	Layout    toolchain.Layout `yaml:"layout"`
	Artifacts []planEntry      `yaml:"artifacts"`
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the toolchain layout and artifacts without assembling",
		Long: `Print, as YAML, the toolchain layout and every artifact that would be
placed with the current settings. Artifacts whose source is missing are
listed with present: false and would be skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, opts)
			if err != nil {
				return err
			}

			out := planOutput{
				Platform: s.platform.Name,
				Arch:     s.platform.Arch,
				Layout:   s.layout,
			}
			for _, a := range s.plan {
				out.Artifacts = append(out.Artifacts, planEntry{Artifact: a, Present: a.Available()})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encoding plan: %w", err)
			}
			return enc.Close()
		},
	}
}
