package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"swedishid/internal/validation"
	"swedishid/pkg/swedishid"
)

const (
	kindPersonnummer        = swedishid.KindPersonnummer
	kindSamordningsnummer   = swedishid.KindSamordningsnummer
	kindOrganisationsnummer = swedishid.KindOrganisationsnummer
)

// errInvalid is returned when at least one number failed validation. The
// per-number report has already been written.
var errInvalid = errors.New("one or more numbers are invalid")

func newCheckCmd(opts *rootOptions, use, short string, kind swedishid.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [number...]",
		Short: short,
		Long:  short + ". Numbers are read from stdin, one per line, when no arguments are given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := args
			if len(numbers) == 0 {
				var err error
				numbers, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			if len(numbers) == 0 {
				return fmt.Errorf("no numbers given")
			}
			if opts.workers < 1 {
				return fmt.Errorf("invalid --workers %d: must be positive", opts.workers)
			}

			svc, err := validation.New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil, validation.Config{
				BatchLimit:   len(numbers),
				BatchWorkers: opts.workers,
			})
			if err != nil {
				return err
			}

			items, err := svc.ValidateBatch(cmd.Context(), kind, numbers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, item := range items {
				if item.Err != nil {
					invalid++
				}
				if opts.json {
					err = writeJSON(out, toReport(numbers[item.Index], item))
				} else {
					err = writeText(out, numbers[item.Index], item)
				}
				if err != nil {
					return err
				}
			}
			if invalid > 0 {
				return errInvalid
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
