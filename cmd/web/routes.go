package main

import (
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/site"
)

func newRoutesCommand() *cobra.Command {
	var (
		from  string
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print how every site link resolves from each page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := site.Default()
			if err != nil {
				return err
			}
			resolver := nav.NewResolver(delay)

			var routes []site.Route
			if from != "" {
				routes = []site.Route{site.Route(from).Normalize()}
			} else {
				for _, p := range cfg.Pages() {
					routes = append(routes, p.Route)
				}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("From", "Link", "Target", "Action", "Delay")
			for _, route := range routes {
				for _, link := range uniqueLinks(cfg.AllLinks()) {
					action := resolver.ResolveLink(route, link)
					d := "-"
					if action.Kind == nav.ActionNavigateThenScroll {
						d = action.Delay.String()
					}
					if err := table.Append(route.String(), link.DisplayName, link.Target(), action.Kind.String(), d); err != nil {
						return err
					}
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "only resolve links from this route")
	cmd.Flags().DurationVar(&delay, "delay", nav.DefaultScrollDelay, "scroll delay after cross-page navigation")
	return cmd
}

func uniqueLinks(links []site.NavLink) []site.NavLink {
	seen := make(map[string]struct{}, len(links))
	out := make([]site.NavLink, 0, len(links))
	for _, l := range links {
		if _, ok := seen[l.Target()]; ok {
			continue
		}
		seen[l.Target()] = struct{}{}
		out = append(out, l)
	}
	return out
}
