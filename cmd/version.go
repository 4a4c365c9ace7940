package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compliport/compliport/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("compliport " + build.String())
	},
}
