package commands

import (
	"github.com/spf13/cobra"
)

// BuildInfo identifies a projtrack build.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display projtrack version and build information.

With -o json or -o yaml the build information is printed as a document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			if r.IsStructured() {
				return r.Encode(info)
			}

			r.Printf("projtrack v%s\n", info.Version)
			r.Println("In-memory project and deadline tracker")
			r.KeyValue("Commit", info.GitCommit)
			r.KeyValue("Built", info.BuildDate)
			return nil
		},
	}
}
