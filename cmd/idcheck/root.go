package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	json    bool
	workers int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "idcheck",
		Short:         "Validate Swedish personnummer, samordningsnummer and organisationsnummer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Write one JSON object per number")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 4, "Numbers validated concurrently")

	cmd.AddCommand(
		newCheckCmd(opts, "person", "Validate personnummer", kindPersonnummer),
		newCheckCmd(opts, "coordination", "Validate samordningsnummer", kindSamordningsnummer),
		newCheckCmd(opts, "org", "Validate organisationsnummer", kindOrganisationsnummer),
	)
	return cmd
}
