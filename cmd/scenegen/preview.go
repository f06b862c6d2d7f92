package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"

	"github.com/melodyclass/scenesynth/internal/analysis"
	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/engine"
	"github.com/melodyclass/scenesynth/internal/styles"
)

type previewEvent int

const (
	eventQuit previewEvent = iota
	eventTogglePlay
	eventStepBack
	eventStepForward
	eventCycleStyle
	eventCycleScheme
)

// runPreview plays the track in the terminal using half-block cells. Arrow
// keys step frames, space toggles playback, s/c cycle style and scheme.
func runPreview(ctx context.Context, track *analysis.Track, eng *engine.Engine, params engine.Params, logger *log.Logger) error {
	cols, rows := 100, 32
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 2 && h > 3 {
		cols, rows = w, h-2
	}
	params.Width, params.Height = cols, rows*2

	events := startKeyListener(ctx, logger)

	fps := track.FPS
	if fps <= 0 {
		fps = analysis.DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	enterAltScreen()
	hideCursor()
	defer func() {
		showCursor()
		exitAltScreen()
	}()

	styleNames := styles.Names()
	schemeNames := color.SchemeNames()
	canvas := newCellCanvas(cols, rows)
	frame := 0
	playing := true

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev {
			case eventQuit:
				return nil
			case eventTogglePlay:
				playing = !playing
			case eventStepBack:
				playing = false
				frame = (frame - 1 + track.TotalFrames) % max(track.TotalFrames, 1)
			case eventStepForward:
				playing = false
				frame = (frame + 1) % max(track.TotalFrames, 1)
			case eventCycleStyle:
				params.Style = cycle(styleNames, params.Style)
			case eventCycleScheme:
				params.ColorScheme = cycle(schemeNames, params.ColorScheme)
			}
		case <-ticker.C:
			if playing && track.TotalFrames > 0 {
				frame = (frame + 1) % track.TotalFrames
			}
		}

		params.FrameIndex = frame
		canvas.rasterize(eng.Compose(track, params))
		moveCursorHome()
		fmt.Print(canvas.ansi())
		fmt.Printf("\x1b[0m frame %d/%d  style=%s scheme=%s  [space] play  [←/→] step  [s/c] cycle  [q] quit",
			frame, track.TotalFrames, params.Style, params.ColorScheme)
	}
}

func startKeyListener(ctx context.Context, logger *log.Logger) <-chan previewEvent {
	events := make(chan previewEvent, 16)
	if err := keyboard.Open(); err != nil {
		logger.Printf("keyboard input disabled: %v", err)
		close(events)
		return events
	}

	closeOnce := &sync.Once{}
	go func() {
		<-ctx.Done()
		closeOnce.Do(func() { _ = keyboard.Close() })
	}()

	go func() {
		defer close(events)
		defer closeOnce.Do(func() { _ = keyboard.Close() })
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			var ev previewEvent
			switch {
			case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || char == 'q' || char == 'Q':
				ev = eventQuit
			case key == keyboard.KeySpace:
				ev = eventTogglePlay
			case key == keyboard.KeyArrowLeft:
				ev = eventStepBack
			case key == keyboard.KeyArrowRight:
				ev = eventStepForward
			case char == 's' || char == 'S':
				ev = eventCycleStyle
			case char == 'c' || char == 'C':
				ev = eventCycleScheme
			default:
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
			if ev == eventQuit {
				return
			}
		}
	}()
	return events
}

func cycle(options []string, current string) string {
	for i, name := range options {
		if name == current {
			return options[(i+1)%len(options)]
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return current
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func enterAltScreen() { fmt.Print("\x1b[?1049h") }
func exitAltScreen()  { fmt.Print("\x1b[?1049l\x1b[0m") }
func hideCursor()     { fmt.Print("\x1b[?25l") }
func showCursor()     { fmt.Print("\x1b[?25h") }
func moveCursorHome() { fmt.Print("\x1b[H") }
