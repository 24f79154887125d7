package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"mini-voxel/internal/config"
	"mini-voxel/internal/export"
	"mini-voxel/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: $"+config.EnvPath+")")
	exportPath := flag.String("export", "", "write the generated world mesh to this .glb file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *exportPath != "" {
		if err := exportWorld(cfg, *exportPath); err != nil {
			log.Printf("export: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		log.Printf("voxel: %v", err)
		os.Exit(1)
	}
}

// exportWorld generates the configured world and saves its mesh without
// opening a window.
func exportWorld(cfg config.Config, path string) error {
	cfg.Render.AsyncMeshing = false
	state, err := game.NewState(cfg)
	if err != nil {
		return err
	}
	defer state.Close()

	mesh := state.Mesh()
	if err := export.WriteGLB(path, mesh); err != nil {
		return err
	}
	log.Printf("Wrote %s (%d faces)", path, mesh.FaceCount())
	return nil
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	state, err := game.NewState(cfg)
	if err != nil {
		return err
	}
	defer state.Close()

	// the framebuffer can differ from the window size on HiDPI displays
	fbw, fbh := window.GetFramebufferSize()
	state.Resize(fbw, fbh)

	loop, err := NewGameLoop(window, state, cfg.Render)
	if err != nil {
		return err
	}
	defer loop.Dispose()

	loop.Run()
	return nil
}
