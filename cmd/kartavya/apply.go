package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/client"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/logger"
)

var (
	application models.Application

	applyCmd = &cobra.Command{
		Use:   "apply",
		Short: "Submit an incubation application",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s := client.NewSession(client.New(serverURL), 0, logger.Component("cli"))
			defer s.Close()

			out := c.OutOrStdout()
			err := s.Apply(c.Context(), application)
			if err != nil {
				snap := s.Form().Snapshot()
				if errors.Is(err, apperrors.ErrValidationFailed) && len(snap.FieldErrors) > 0 {
					fields := make([]string, 0, len(snap.FieldErrors))
					for f := range snap.FieldErrors {
						fields = append(fields, f)
					}
					sort.Strings(fields)
					for _, f := range fields {
						fmt.Fprintf(c.ErrOrStderr(), "%s: %s\n", f, snap.FieldErrors[f])
					}
					return apperrors.ErrValidationFailed
				}
				if snap.Error != "" {
					return errors.New(snap.Error)
				}
				return err
			}

			if jsonOutput {
				return printJSON(out, map[string]string{"status": "submitted"})
			}
			fmt.Fprintln(out, "Application Submitted!")
			fmt.Fprintln(out, "Thank you for your interest. We'll review your application and get back to you soon.")
			return nil
		},
	}
)

func init() {
	f := applyCmd.Flags()
	f.StringVar(&application.NGOName, "ngo-name", "", "NGO name")
	f.StringVar(&application.ContactPerson, "contact-person", "", "contact person")
	f.StringVar(&application.Email, "email", "", "contact email")
	f.StringVar(&application.Phone, "phone", "", "contact phone")
	f.StringVar(&application.Description, "description", "", "what the NGO does")
	f.StringVar(&application.PitchDeckURL, "pitch-deck-url", "", "link to the pitch deck")
	f.StringVar(&application.Website, "website", "", "NGO website (optional)")
}
