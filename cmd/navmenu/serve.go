package main

import (
	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/server"
	"github.com/mchmarny/navmenu/pkg/site"
)

func newServeCmd() *cobra.Command {
	opts := site.Options{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages with the menu activated for each request path",
		Long: `Serves every path as a page embedding the menu activated for that path,
/menu.json?url=<path> with the menu tree as JSON, /healthz, /readyz and /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return site.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "site.yaml", "Path to the YAML site definition")
	cmd.Flags().IntVarP(&opts.Port, "port", "p", server.DefaultPort, "Port to run the server on")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reload the site definition when the file changes")

	return cmd
}
