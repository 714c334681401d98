package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kartavya/website/internal/pkg/ogimage"
)

var (
	ogTitle       string
	ogDescription string
	ogOut         string
	ogDomain      string

	ogImageCmd = &cobra.Command{
		Use:   "og-image",
		Short: "Render a link preview image as SVG",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			svg := ogimage.Renderer{Domain: ogDomain}.Render(ogTitle, ogDescription)
			if ogOut == "" || ogOut == "-" {
				_, err := fmt.Fprint(c.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(ogOut, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", ogOut, err)
			}
			return nil
		},
	}
)

func init() {
	ogImageCmd.Flags().StringVar(&ogTitle, "title", ogimage.DefaultTitle, "headline text")
	ogImageCmd.Flags().StringVar(&ogDescription, "description", ogimage.DefaultDescription, "body text")
	ogImageCmd.Flags().StringVarP(&ogOut, "out", "o", "-", "output file, - for stdout")
	ogImageCmd.Flags().StringVar(&ogDomain, "domain", ogimage.DefaultDomain, "domain shown in the footer")
}
