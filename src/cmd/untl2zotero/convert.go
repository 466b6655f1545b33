package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"untl2zotero/src/internal/config"
	"untl2zotero/src/internal/oai"
	"untl2zotero/src/internal/untl"
	"untl2zotero/src/internal/zotero"
)

type options struct {
	collection string
	output     string
	year       string
	useCache   bool
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "untl2zotero COLLECTION",
		Short: "Convert UNT Digital Library collection metadata to Zotero RDF",
		Long: "Pulls collection metadata in UNTL format from the UNT Digital Library,\n" +
			"converts each item to a Zotero RDF presentation record, and writes the\n" +
			"result to a file for import into Zotero.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.collection = args[0]
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "zotero_rdf.xml", "Output file where Zotero RDF should be written")
	cmd.Flags().StringVarP(&opts.year, "year", "y", "", "Limit items to those created in the given year")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "Reuse previously retrieved collection XML when present")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Optional YAML run config")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cachePath := oai.DefaultCachePath
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		oai.SetEndpoint(cfg.Endpoint)
		if cfg.CachePath != "" {
			cachePath = cfg.CachePath
		}
		if cfg.Output != "" && !cmd.Flags().Changed("output") {
			opts.output = cfg.Output
		}
		zotero.AddAccessRights(cfg.AccessRights)
	}

	raw, err := oai.Load(cmd.Context(), opts.collection, cachePath, opts.useCache)
	if err != nil {
		return err
	}
	bags, err := untl.Parse(raw)
	if err != nil {
		return err
	}

	build := zotero.Builders["presentation"]
	doc := zotero.NewDocument()
	kept := 0
	for _, bag := range bags {
		rec := zotero.Extract(bag)
		if opts.year != "" {
			if rec.CreationDate == "" || !strings.Contains(rec.CreationDate, opts.year) {
				continue
			}
		}
		doc.AddRecord(build(rec))
		kept++
	}
	if err := doc.WriteFile(opts.output); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", kept, opts.output)
	return err
}
