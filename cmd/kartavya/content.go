package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/client"
	"github.com/kartavya/website/internal/pkg/logger"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var ngosCmd = &cobra.Command{
	Use:   "ngos [id]",
	Short: "List incubated NGOs, or show one NGO and its team",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		ctx := c.Context()
		s := client.NewSession(client.New(serverURL), 0, logger.Component("cli"))
		defer s.Close()

		if err := s.Load(ctx); err != nil {
			return err
		}
		out := c.OutOrStdout()

		if len(args) == 0 {
			orgs := s.Sections().Organizations
			if jsonOutput {
				return printJSON(out, orgs.Items)
			}
			if orgs.State() == views.StateEmpty {
				fmt.Fprintln(out, views.SectionNGOs.EmptyMessage())
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tINCUBATED")
			for _, o := range orgs.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", o.ID, o.Name, o.IncubationDate.Format("1/2/2006"))
			}
			return tw.Flush()
		}

		if err := s.OpenOrganization(ctx, args[0]); err != nil {
			return err
		}
		s.Overlay().Wait()
		snap := s.Overlay().Snapshot()
		if jsonOutput {
			return printJSON(out, snap)
		}

		org := snap.Organization
		fmt.Fprintln(out, org.Name)
		fmt.Fprintln(out, org.Description)
		if org.FoundedDate != nil {
			fmt.Fprintf(out, "Founded:   %s\n", org.FoundedDate.Format("1/2/2006"))
		}
		fmt.Fprintf(out, "Incubated: %s\n", org.IncubationDate.Format("1/2/2006"))
		if org.Website != nil && *org.Website != "" {
			fmt.Fprintf(out, "Website:   %s\n", *org.Website)
		}
		if len(snap.Members) > 0 {
			fmt.Fprintln(out, "\nTeam Members")
			for _, m := range snap.Members {
				fmt.Fprintf(out, "  %s, %s\n", m.Name, m.Role)
			}
		}
		return nil
	},
}

var (
	eventStatus string

	eventsCmd = &cobra.Command{
		Use:   "events",
		Short: "List events, optionally filtered by status",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			s := client.NewSession(client.New(serverURL), 0, logger.Component("cli"))
			defer s.Close()

			if err := s.Load(ctx); err != nil {
				return err
			}
			filter := views.ParseEventFilter(eventStatus)
			s.SetFilter(filter)
			events := s.VisibleEvents()
			out := c.OutOrStdout()

			if jsonOutput {
				return printJSON(out, events)
			}
			if len(events) == 0 {
				fmt.Fprintln(out, views.EventsEmptyMessage(filter))
				return nil
			}
			now := time.Now()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tWHEN\tSTATUS\tTITLE\tLOCATION")
			for _, e := range events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.EventDate.Local().Format("Jan 2, 2006 03:04 PM"),
					humanize.RelTime(e.EventDate, now, "ago", "from now"),
					e.Status.Display(), e.Title, e.Location)
			}
			return tw.Flush()
		},
	}
)

func init() {
	eventsCmd.Flags().StringVar(&eventStatus, "status", string(views.FilterAll), "all, upcoming or past")
}
