package commands

import (
	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/leapstack-labs/lexkit/pkg/grammars/yaml"
	"github.com/spf13/cobra"
)

// NewKindsCommand creates the kinds command.
func NewKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the token kinds of the YAML grammar",
		Long: `List every token kind the YAML grammar emits, with the abbreviation
accepted by --skip and whether the kind is layout (hidden by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return cc.Renderer.Kinds(kindInfos())
		},
		Annotations: configKeys("output", "no_color"),
	}
}

func kindInfos() []output.KindInfo {
	kinds := yaml.Kinds()
	infos := make([]output.KindInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = output.KindInfo{Name: k.Name(), Abbr: k.Abbreviation(), Layout: yaml.IsLayout(k)}
	}
	return infos
}
