package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rootwm/xwm/internal/wm"
)

// rcConfig is the subset of the compile-time table an override file may
// replace: appearance, tag/rule/layout data. Keybinding
// actions are Go function values and stay in config.go.
type rcConfig struct {
	BorderWidth  int
	BarHeight    int
	EdgeScrollPx int

	Rules []rcRule

	Tags []rcTagLayout
}

type rcRule struct {
	Class, Instance, Title string
	Tags                   uint32
	Free                   bool
	Monitor                int
}

type rcTagLayout struct {
	Layout  string // "floating", "tile", "monocle", "split"
	MFact   float64
	NMaster int
}

var layoutNames = map[string]int{"floating": 0, "tile": 1, "monocle": 2, "split": 3}

func rcFilePath() string {
	dir := xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config"))
	return filepath.Join(dir, "xwm", "xwm.toml")
}

// loadRcFile reads the optional override file once at setup. A missing
// file is not an error: the compile-time defaults stand unmodified.
func loadRcFile(cfg wm.Config) wm.Config {
	path := rcFilePath()
	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	var rc rcConfig
	if _, err := toml.DecodeFile(path, &rc); err != nil {
		log.Printf("xwm: couldn't parse rc file %s, ignoring: %v", path, err)
		return cfg
	}

	if rc.BorderWidth > 0 {
		cfg.BorderWidth = rc.BorderWidth
	}
	if rc.BarHeight > 0 {
		cfg.BarHeight = rc.BarHeight
	}
	if rc.EdgeScrollPx > 0 {
		cfg.EdgeScrollPx = rc.EdgeScrollPx
	}
	if len(rc.Rules) > 0 {
		cfg.Rules = nil
		for _, r := range rc.Rules {
			cfg.Rules = append(cfg.Rules, wm.Rule{
				Class: r.Class, Instance: r.Instance, Title: r.Title,
				Tags: r.Tags, IsFree: r.Free, MonitorIdx: r.Monitor,
			})
		}
	}
	if len(rc.Tags) > 0 {
		for i, t := range rc.Tags {
			if i >= len(cfg.StartupLayouts) {
				break
			}
			tl := cfg.StartupLayouts[i]
			if idx, ok := layoutNames[t.Layout]; ok {
				tl.LayoutIdx = idx
			}
			if t.MFact > 0 {
				tl.MFact = t.MFact
			}
			if t.NMaster > 0 {
				tl.NMaster = t.NMaster
			}
			cfg.StartupLayouts[i] = tl
		}
	}

	return cfg
}

func xdgOrFallback(xdg string, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		return dir
	}
	return fallback
}
