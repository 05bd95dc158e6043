package main

import (
	"testing"

	"github.com/spf13/cobra"
)

// resetFlags clears the changed state of the named flags so tests do not
// leak flag values into each other.
func resetFlags(t *testing.T, cmd *cobra.Command, names ...string) {
	t.Helper()
	for _, name := range names {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("unknown flag: %s", name)
		}
		flag.Value.Set(flag.DefValue) //nolint:errcheck
		flag.Changed = false
	}
}
