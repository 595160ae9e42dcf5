package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/prisma/engine/core"
)

/**
 * @brief Watches a configuration file and reloads it when it changes on
 * disk. The callback runs on the watcher goroutine with the freshly parsed
 * settings; a file that fails to parse is reported and skipped.
 */
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*RendererConfig)
	done     chan struct{}
}

func NewWatcher(path string, onReload func(*RendererConfig)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		watcher:  fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("failed to reload config '%s': %s", w.path, err.Error())
				continue
			}

			core.LogInfo("config '%s' reloaded", w.path)
			w.onReload(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err.Error())
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
