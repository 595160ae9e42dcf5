package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML renderer configuration")
	frames := flag.Int("frames", 0, "stop after this many frames (0 runs until interrupted)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			core.LogFatal("failed to load config '%s': %s", *configPath, err.Error())
		}
		cfg = loaded
	}

	demo, err := testbed.New(cfg)
	if err != nil {
		core.LogFatal("failed to initialize demo: %s", err.Error())
	}

	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath, demo.ApplyConfig)
		if err != nil {
			core.LogWarn("config watching disabled: %s", err.Error())
		} else {
			defer watcher.Close()
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	clock := core.NewClock()
	clock.Start()
	lastTime := 0.0

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-interrupt:
			core.LogInfo("shutting down")
			logMetrics()
			return
		case <-ticker.C:
			clock.Update()
			now := clock.ElapsedSeconds()
			delta := now - lastTime
			lastTime = now

			visible := demo.Frame(delta)
			frame++

			if frame%300 == 0 {
				fps, ms := core.MetricsFrame()
				core.LogDebug("frame %d: %d visible, %.1f fps, %.2f ms avg", frame, visible, fps, ms)
			}

			if *frames > 0 && frame >= *frames {
				logMetrics()
				return
			}
		}
	}
}

func logMetrics() {
	samples, mips, tests := core.MetricsCounters()
	core.LogInfo("samples=%d mip_levels=%d volume_tests=%d", samples, mips, tests)
}
