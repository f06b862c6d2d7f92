package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/melodyclass/scenesynth/internal/analysis"
	"github.com/melodyclass/scenesynth/internal/engine"
	"github.com/melodyclass/scenesynth/internal/scene"
	"github.com/melodyclass/scenesynth/internal/web"
)

func main() {
	var (
		trackPath  = flag.String("track", "", "Path to an audio analysis JSON track")
		synthetic  = flag.Bool("synthetic", false, "Use a synthetic demo track instead of -track")
		duration   = flag.Float64("duration", 10, "Synthetic track duration in seconds")
		style      = flag.String("style", "circular", "Scene style (bars|radial|circular)")
		scheme     = flag.String("scheme", "blue", "Color scheme (blue|purple|green|sunset|mono)")
		width      = flag.Int("width", 0, "Canvas width (overrides -resolution)")
		height     = flag.Int("height", 0, "Canvas height (overrides -resolution)")
		resolution = flag.String("resolution", "1080p", "Canvas preset (720p|1080p|4k)")
		frame      = flag.Int("frame", -1, "Render a single frame as SVG to stdout")
		outDir     = flag.String("out", "", "Render every frame as SVG into this directory")
		serveAddr  = flag.String("serve", "", "Run the preview server on this address (e.g. :8080)")
		preview    = flag.Bool("preview", false, "Interactive terminal preview")
		metaOnly   = flag.Bool("metadata", false, "Print (totalFrames, fps) for the track and exit")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[scenegen] ", log.LstdFlags)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *metaOnly {
		if *trackPath == "" {
			logger.Fatal("-metadata requires -track")
		}
		data, err := os.ReadFile(*trackPath)
		if err != nil {
			logger.Fatalf("read track: %v", err)
		}
		total, fps := engine.Metadata(data)
		fmt.Printf("%d %d\n", total, fps)
		return
	}

	track, err := loadTrack(*trackPath, *synthetic, *duration)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("track: %d frames at %d fps (%.1fs)", track.TotalFrames, track.FPS, track.Duration)

	params := engine.Defaults()
	params.Style = *style
	params.ColorScheme = *scheme
	params.Width, params.Height = engine.Resolution(*resolution)
	if *width > 0 && *height > 0 {
		params.Width, params.Height = *width, *height
	}
	params.TotalFrames = track.TotalFrames
	params.FPS = track.FPS

	eng := engine.New(logger)

	switch {
	case *serveAddr != "":
		if err := web.NewServer(track, eng, params, logger).Start(*serveAddr); err != nil {
			logger.Fatalf("serve: %v", err)
		}
	case *preview:
		if err := runPreview(ctx, track, eng, params, logger); err != nil {
			logger.Fatalf("preview: %v", err)
		}
	case *frame >= 0:
		params.FrameIndex = *frame
		if err := scene.WriteSVG(os.Stdout, eng.Compose(track, params)); err != nil {
			logger.Fatalf("write svg: %v", err)
		}
	case *outDir != "":
		if err := renderSequence(ctx, track, eng, params, *outDir, logger); err != nil {
			logger.Fatalf("render: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func loadTrack(path string, synthetic bool, duration float64) (*analysis.Track, error) {
	if path != "" {
		return analysis.LoadTrack(path)
	}
	if synthetic {
		cfg := analysis.DefaultSynth()
		cfg.Duration = duration
		return analysis.Synthesize(cfg), nil
	}
	return nil, fmt.Errorf("no input: pass -track or -synthetic")
}

// renderSequence writes one SVG per frame. Frames are independent, so an
// interrupted run can resume by rerunning; existing files are overwritten.
func renderSequence(ctx context.Context, track *analysis.Track, eng *engine.Engine, params engine.Params, dir string, logger *log.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	step := track.TotalFrames / 10
	if step == 0 {
		step = 1
	}
	for i := 0; i < track.TotalFrames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		params.FrameIndex = i
		path := filepath.Join(dir, fmt.Sprintf("frame-%05d.svg", i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		err = scene.WriteSVG(f, eng.Compose(track, params))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if i%step == 0 {
			logger.Printf("rendered %d/%d frames", i, track.TotalFrames)
		}
	}
	logger.Printf("done: %d frames in %s", track.TotalFrames, dir)
	return nil
}
