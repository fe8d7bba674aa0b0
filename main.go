package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"cubegrid/config"
	"cubegrid/core"
	"cubegrid/inspect"
	"cubegrid/rendering"
	"cubegrid/rendering/opengl"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath, "Settings file (YAML or JSON)")
		width       = flag.Int("width", 0, "Window width (overrides settings)")
		height      = flag.Int("height", 0, "Window height (overrides settings)")
		inspectAddr = flag.String("inspect", "", "Serve the frame inspector on this address, e.g. :8090")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	settings, err := config.Load(*configPath)
	if err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			settings.Window.Width = *width
		case "height":
			settings.Window.Height = *height
		case "inspect":
			settings.Inspect.Addr = *inspectAddr
		case "v":
			if *verbose {
				settings.Log.Level = "debug"
			}
		}
	})
	if err := settings.Validate(); err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	level, _ := settings.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(settings, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, logger *slog.Logger) error {
	fmt.Println("=== Cube Grid ===")
	fmt.Printf("Window: %dx%d\n", settings.Window.Width, settings.Window.Height)

	grid, err := core.NewGrid(&core.CubeTemplate, core.DefaultOffsets, core.DefaultPalette)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	res := rendering.NewResources(logger)
	defer res.Release()

	renderer, err := opengl.NewCubeRenderer(opengl.Options{
		Width:      settings.Window.Width,
		Height:     settings.Window.Height,
		Title:      settings.Window.Title,
		Samples:    settings.Window.Samples,
		VSync:      settings.Window.VSync,
		ClearColor: settings.Window.ClearColor,
		Logger:     logger,
	}, res)
	if err != nil {
		return err
	}
	renderer.UploadGrid(grid, res)

	loop := rendering.NewLoop(renderer, renderer, grid, core.InitialState(cameraFromSettings(settings)))

	loop.Observe(rendering.NewFrameStats(time.Second, nil, func(fps float64, ft core.FrameTransforms) {
		fmt.Printf("\rFPS: %.1f | t: %.1fs", fps, ft.Elapsed)
	}))

	if settings.Inspect.Addr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub := inspect.NewHub(grid, logger)
		loop.Observe(hub)
		go func() {
			if err := inspect.ListenAndServe(ctx, settings.Inspect.Addr, hub); err != nil {
				logger.Warn("inspector stopped", "error", err)
			}
		}()
		fmt.Printf("Inspector: ws://%s/ws\n", settings.Inspect.Addr)
	}

	fmt.Println("\nControls:")
	fmt.Println("  ESC: Exit")

	frames := loop.Run()

	fmt.Println("\nShutting down...")
	logger.Info("render loop finished", "frames", frames)
	return nil
}

func cameraFromSettings(s config.Settings) core.Camera {
	c := s.Camera
	return core.Camera{
		Eye:    mgl32.Vec3(c.Eye),
		Target: mgl32.Vec3(c.Target),
		Up:     mgl32.Vec3(c.Up),
		FovY:   mgl32.DegToRad(c.FovDegrees),
		Aspect: s.Window.Aspect(),
		Near:   c.Near,
		Far:    c.Far,
	}
}
