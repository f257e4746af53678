package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"briefdeck/internal/format"
)

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List saved communication formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			formats := e.store.List()
			if len(formats) == 0 {
				fmt.Println("no saved formats")
				return nil
			}
			for _, f := range formats {
				fmt.Printf("%s  %s\n", f.ID, f.Name)
				fmt.Printf("  channels:   %s\n", strings.Join(f.Channels, ", "))
				fmt.Printf("  recipients: %s\n", strings.Join(f.Recipients, ", "))
				for ch, style := range format.DecodeStyles(f.MessageStyle) {
					fmt.Printf("  %s style: %s\n", ch, style)
				}
			}
			return nil
		},
	}
}
