package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/output"
	"github.com/jbjulia/mccmnc/internal/services"
	"github.com/jbjulia/mccmnc/internal/store"
	"github.com/jbjulia/mccmnc/pkg/parser"
	"github.com/jbjulia/mccmnc/pkg/registry"
)

func newUpdateCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download the registry and rebuild the local store",
		Long: `Download the registry, parse it and atomically replace the local store.
On any failure the previous store is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer, err := output.NewPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}

			cfg := opts.cfg
			p, err := parser.New(cfg.Source.Format)
			if err != nil {
				return err
			}
			client := registry.NewClient(
				registry.WithTimeout(cfg.Source.Timeout),
				registry.WithMaxRetries(cfg.Source.MaxRetries),
			)
			fileStore := store.NewFileStore(cfg.Store.Path)

			var updaterOpts []services.UpdaterOption
			if cfg.Store.RawPath != "" {
				updaterOpts = append(updaterOpts, services.WithRawPath(cfg.Store.RawPath))
			}
			updater := services.NewUpdater(client, p, fileStore, cfg.Source.URL, updaterOpts...)

			bar := newProgressBar(cmd.ErrOrStderr())
			result, err := updater.Run(cmd.Context(), bar)
			bar.Wait()
			if err != nil {
				return err
			}

			return printer.UpdateSummary(fileStore.Path(), result)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", output.FormatText, "output format: text or json")

	return cmd
}

// progressBar renders the building step on a terminal. On anything else it
// stays silent.
type progressBar struct {
	w        io.Writer
	enabled  bool
	progress *mpb.Progress
	bar      *mpb.Bar
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, enabled: output.IsTerminal(w)}
}

func (p *progressBar) StateChanged(state models.UpdateState) {
	if p.bar != nil && state == models.UpdateStateFailed && !p.bar.Completed() {
		p.bar.Abort(false)
	}
}

func (p *progressBar) Progress(done, total int) {
	if !p.enabled {
		return
	}
	if p.bar == nil {
		p.progress = mpb.New(mpb.WithOutput(p.w), mpb.WithWidth(60))
		p.bar = p.progress.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name("Processing rows "),
				decor.CountersNoUnit("%d/%d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}
	p.bar.SetCurrent(int64(done))
}

func (p *progressBar) Wait() {
	if p.progress == nil {
		return
	}
	if !p.bar.Completed() {
		p.bar.Abort(false)
	}
	p.progress.Wait()
}
