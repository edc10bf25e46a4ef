package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeusync/geomkit/internal/config"
	"github.com/zeusync/geomkit/internal/observability/log"
	"github.com/zeusync/geomkit/internal/scene"
)

var errQueriesFailed = errors.New("queries failed")

// run loads every scene named in cfg, evaluates them and writes one line per
// query to out. Scenes are printed in argument order.
func run(ctx context.Context, cfg config.Config, out io.Writer, logger log.Log) error {
	if len(cfg.Files) == 0 {
		return errors.New("at least one scene file is required")
	}

	scenes := make([]*scene.Scene, 0, len(cfg.Files))
	for _, path := range cfg.Files {
		s, err := loadScene(path, logger)
		if err != nil {
			return err
		}
		scenes = append(scenes, s)
	}

	all, err := scene.EvaluateAll(ctx, scenes, cfg.Workers, logger)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	format := cfg.Format()
	failed := 0
	for i, results := range all {
		if _, err := fmt.Fprintf(out, "# %s\n", scenes[i].Name); err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
			if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", r.ID, r.Kind, r.Render(format)); err != nil {
				return err
			}
		}
	}

	logger.Info("evaluation finished", log.Int("scenes", len(scenes)), log.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d", errQueriesFailed, failed)
	}
	return nil
}

func loadScene(path string, logger log.Log) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *scene.Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = scene.LoadJSON(f)
	} else {
		c, err = scene.LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s, err := scene.Build(c, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
