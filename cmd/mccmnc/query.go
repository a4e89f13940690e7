package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbjulia/mccmnc/internal/output"
	"github.com/jbjulia/mccmnc/internal/services"
	"github.com/jbjulia/mccmnc/internal/store"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

func newQueryCommand(opts *globalOptions) *cobra.Command {
	var (
		params services.LookupParams
		format string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up networks in the local store",
		Long: `Look up networks in the local store. Filters combine: a network is printed
when it matches every filter given. Without filters the whole table is printed.

PLMN is compared with the store key. Rows sharing a PLMN in the registry are
stored as "<PLMN>-<suffix>" and are found by --mcc/--mnc, or by --plmn with
their full key.`,
		Example: `  mccmnc query --mcc 262 --mnc 01
  mccmnc query --cc 49 -o json
  mccmnc query --plmn 310260`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer, err := output.NewPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}

			lookup := services.NewLookupService(store.NewFileStore(opts.cfg.Store.Path))
			result, err := lookup.Lookup(cmd.Context(), params)
			if err != nil {
				if srvErrors.IsStoreNotFoundError(err) {
					return fmt.Errorf("%w (run \"mccmnc update\" first)", err)
				}
				return err
			}

			return printer.Matches(result)
		},
	}

	cmd.Flags().StringVar(&params.CC, "cc", "", "country calling code (CC)")
	cmd.Flags().StringVar(&params.MCC, "mcc", "", "mobile country code (MCC)")
	cmd.Flags().StringVar(&params.MNC, "mnc", "", "mobile network code (MNC)")
	cmd.Flags().StringVar(&params.PLMN, "plmn", "", "PLMN, MCC followed by MNC")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatText, "output format: text or json")

	return cmd
}
