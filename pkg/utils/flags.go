package utils

import (
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

func ReadStringFlag(cmd *cobra.Command, name string) string {
	if cmd.Flags().Lookup(name) == nil {
		return ""
	}
	value := cmd.Flags().Lookup(name).Value.String()
	return value
}

func ReadBooleanFlag(cmd *cobra.Command, name string) bool {
	str := ReadStringFlag(cmd, name)
	i, _ := strconv.ParseBool(str)
	return i
}

func ReadIntFlag(cmd *cobra.Command, name string) (int, error) {
	return strconv.Atoi(ReadStringFlag(cmd, name))
}

func ReadDurationFlag(cmd *cobra.Command, name string) (time.Duration, error) {
	return time.ParseDuration(ReadStringFlag(cmd, name))
}

// FlagChanged reports whether the user set the flag on the command line.
func FlagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
