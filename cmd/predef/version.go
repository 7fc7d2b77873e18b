package predef

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rogpeppe/go-internal/semver"
	"github.com/spf13/cobra"
)

// VERSION is set at build time with -ldflags "-X .../cmd/predef.VERSION=1.2.3".
var VERSION string

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the racecount version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s %s/%s)\n", GetVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

// GetVersion returns VERSION in canonical vMAJOR.MINOR.PATCH form, or "dev"
// when it is unset or not a semantic version.
func GetVersion() string {
	v := "v" + strings.TrimPrefix(VERSION, "v")
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}
