package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set via -ldflags "-X briefdeck/cmd/briefdeck/commands.version=..."
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the briefdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("briefdeck " + version)
		},
	}
}
