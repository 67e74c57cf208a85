package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mchmarny/navmenu/pkg/config"
)

type renderOptions struct {
	configPath string
	url        string
	root       string
	format     string
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the menu activated for a URL",
		Example: `  navmenu render --config site.yaml --url /guides/install
  navmenu render -c site.yaml -u /en/about --root /en --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "site.yaml", "Path to the YAML site definition")
	cmd.Flags().StringVarP(&opts.url, "url", "u", "/", "Current URL to activate the menu for")
	cmd.Flags().StringVar(&opts.root, "root", "", "Request root, overrides the site definition")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "Output format: html, json or yaml")

	return cmd
}

func runRender(w io.Writer, opts renderOptions) error {
	s, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	root := s.Root
	if opts.root != "" {
		root = opts.root
	}

	m := s.Menu().SetActiveFromURL(opts.url, root)

	switch strings.ToLower(opts.format) {
	case "html":
		fmt.Fprintln(w, m.Render())
		if crumbs := m.Breadcrumb(); len(crumbs) > 0 {
			fmt.Fprintln(w, strings.Join(crumbs, " / "))
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m.Tree()); err != nil {
			return fmt.Errorf("failed to encode menu: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(m.Tree()); err != nil {
			return fmt.Errorf("failed to encode menu: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q, want html, json or yaml", opts.format)
	}
}
