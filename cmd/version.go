package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/lingua/internal/lessons"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lingua", displayVersion(version))
			fmt.Fprintln(cmd.OutOrStdout(), "course format", lessons.SupportedSchemaMajor)
		},
	}
}

// displayVersion canonicalizes semantic versions and passes anything else
// through, e.g. "(devel)".
func displayVersion(v string) string {
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	if semver.IsValid("v" + v) {
		return semver.Canonical("v" + v)
	}
	return v
}
