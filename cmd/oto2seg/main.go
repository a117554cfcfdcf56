// Command oto2seg converts a CVVC voicebank's oto.ini into articulation
// segmentation files.
//
//	oto2seg [flags] <oto.ini> <output dir>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ieee0824/oto2seg"
	"github.com/ieee0824/oto2seg/audio"
	"github.com/ieee0824/oto2seg/internal/config"
	"github.com/ieee0824/oto2seg/internal/logging"
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/oto"
	"github.com/ieee0824/oto2seg/segment"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile, envFile string

	cmd := &cobra.Command{
		Use:   "oto2seg [flags] <oto.ini> <output dir>",
		Short: "Convert an oto.ini into articulation segmentation files",
		Long: `oto2seg reads a CVVC voicebank's oto.ini and writes, for every entry,
a trimmed .wav with .seg, .trans and .as<N> segmentation files.

Missing VC and VR transitions are filled from phonetically close ones
unless --no-complete is given. Settings may also come from a YAML file
(--config), a .env file and OTO2SEG_* environment variables.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{
				ConfigFile: cfgFile,
				EnvFile:    envFile,
				Flags:      cmd.Flags(),
			})
			if err != nil {
				return err
			}
			return convert(cmd.Context(), cfg, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "YAML config file")
	f.StringVar(&envFile, "env-file", ".env", "dotenv file with OTO2SEG_* variables")
	f.String("encoding", "shift-jis", "oto.ini encoding (shift-jis or utf-8)")
	f.String("dict", "", "phoneme dictionary TSV (default: built-in)")
	f.Bool("no-complete", false, "do not fill missing VC/VR transitions")
	f.Float64("bleed", segment.DefaultBleed, "audio context kept around each segment in ms")
	f.String("report", "", "write a YAML run report to this path")
	f.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	f.String("log-format", "console", "log format (console or json)")

	return cmd
}

func convert(ctx context.Context, cfg *config.Config, indexPath, outDir string) error {
	logger := logging.New(cfg.Log)

	dict := lexicon.Default()
	if cfg.Dictionary != "" {
		d, err := lexicon.LoadFile(cfg.Dictionary)
		if err != nil {
			return fmt.Errorf("load dictionary: %w", err)
		}
		dict = d
	}

	idx, err := oto.ReadFile(indexPath, oto.Options{
		Encoding: oto.Encoding(cfg.Encoding),
		Prober:   oto.ProbeFunc(audio.Probe),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	sink, err := segment.NewDirSink(outDir)
	if err != nil {
		return err
	}

	conv, err := oto2seg.NewConverter(
		oto2seg.WithLogger(logger),
		oto2seg.WithDictionary(dict),
		oto2seg.WithSink(sink),
		oto2seg.WithCompletion(!cfg.SkipCompletion),
		oto2seg.WithBleed(cfg.Bleed),
	)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	report, runErr := conv.Run(ctx, idx)
	if cfg.Report != "" {
		if err := oto2seg.WriteReportFile(cfg.Report, report); err != nil {
			logger.Error().Err(err).Str("path", cfg.Report).Msg("cannot write report")
		}
	}
	return runErr
}
