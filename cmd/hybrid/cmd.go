package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/hybrid"
	"github.com/gogpu/hybrid/internal/imageio"
	"github.com/gogpu/hybrid/internal/text"
)

// config is shared by every subcommand.
type config struct {
	params  hybrid.Params
	out     string
	ext     string
	noFFT   bool
	workers int
	verbose bool
}

func newRootCmd() *cobra.Command {
	cfg := &config{params: hybrid.DefaultParams()}

	root := &cobra.Command{
		Use:   "hybrid",
		Short: "Blend images into a hybrid image that changes with viewing distance",
		Long: `hybrid keeps the low frequencies of the first source and the high
frequencies of the others, then writes every stage:

  aa, bb, cc   sources
  a, b, c      low-passed first source, high-passed others
  t            the hybrid
  fft_*        log-magnitude spectrum of each stage`,
		SilenceUsage: true,
		Version:      hybrid.Version,
	}
	addFlags(root.PersistentFlags(), cfg)

	root.AddCommand(newFileCmd(cfg), newTextCmd(cfg))
	return root
}

func addFlags(fs *pflag.FlagSet, cfg *config) {
	fs.Float64Var(&cfg.params.LowPass, "a-blur", hybrid.DefaultLowPass, "low-pass sigma for the first image")
	fs.Float64Var(&cfg.params.Sharpen, "b-blur", hybrid.DefaultSharpen, "sharpen weight for the second image")
	fs.Float64Var(&cfg.params.ThirdSharpen, "c-blur", hybrid.DefaultThirdSharpen, "sharpen weight for the third image")
	fs.StringVar(&cfg.out, "out", ".", "output directory")
	fs.StringVar(&cfg.ext, "ext", "jpg", "output extension, png or jpg")
	fs.BoolVar(&cfg.noFFT, "no-fft", false, "skip spectrum diagnostics")
	fs.IntVar(&cfg.workers, "workers", 1, "row workers, 0 = GOMAXPROCS")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")
}

func newFileCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "file <low> <high> [extra]",
		Short: "Blend image files",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			imgs := make([]*hybrid.Image, 0, len(args))
			for _, path := range args {
				img, err := imageio.Load(path)
				if err != nil {
					return err
				}
				imgs = append(imgs, img)
			}
			return run(cmd.Context(), cfg, imgs)
		},
	}
}

func newTextCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "text <msg1> <msg2> [msg3]",
		Short: "Blend rendered messages",
		Long: `Renders each message in red, green and blue on a transparent
canvas 200 pixels tall and 100 pixels per character wide (wider when the
shaped text needs it), then blends them. Right-to-left messages are
aligned to the right edge.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := text.Default()
			if err != nil {
				return err
			}

			opts := r.Layout(args...)
			imgs := make([]*hybrid.Image, 0, len(args))
			for i, msg := range args {
				if msg == "" {
					return fmt.Errorf("message %d: %w", i+1, text.ErrEmptyMessage)
				}
				opts.Color = text.Colors[i]
				img, err := r.Render(msg, opts)
				if err != nil {
					return fmt.Errorf("message %d: %w", i+1, err)
				}
				imgs = append(imgs, img)
			}
			return run(cmd.Context(), cfg, imgs)
		},
	}
}

// run blends imgs and saves every stage into cfg.out.
func run(ctx context.Context, cfg *config, imgs []*hybrid.Image) error {
	if cfg.verbose {
		hybrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer hybrid.SetLogger(nil)
	}

	ext := strings.TrimPrefix(strings.ToLower(cfg.ext), ".")
	if err := imageio.CheckExt(ext); err != nil {
		return err
	}

	var src hybrid.Sources
	switch len(imgs) {
	case 2:
		src = hybrid.Pair{Low: imgs[0], High: imgs[1]}
	case 3:
		src = hybrid.Triple{Low: imgs[0], High: imgs[1], Extra: imgs[2]}
	default:
		return errors.New("need two or three sources")
	}

	p := hybrid.NewPipeline(
		hybrid.WithParams(cfg.params),
		hybrid.WithSpectra(!cfg.noFFT),
		hybrid.WithWorkers(cfg.workers),
	)
	defer p.Close()

	res, err := p.Run(ctx, src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, st := range res.Stages() {
		path := filepath.Join(cfg.out, st.Name+"."+ext)
		if err := imageio.Save(path, st.Image); err != nil {
			return fmt.Errorf("save %s: %w", st.Name, err)
		}
		hybrid.Logger().Debug("hybrid: wrote stage", "path", path)
	}
	return nil
}
