package config

import (
	"slices"

	"github.com/san-kum/sortviz/internal/datagen"
)

func preset(algorithm string, bars, lo, hi int, speed float64, order datagen.Order) *Config {
	return &Config{Algorithm: algorithm, NumBars: bars, MinValue: lo, MaxValue: hi, Speed: speed, SortOrder: order}
}

var Presets = map[string]map[string]*Config{
	"bubble": {
		"best":    preset("bubble", 15, 1, 100, 1, datagen.SortedAscending),
		"worst":   preset("bubble", 15, 1, 100, 2, datagen.SortedDescending),
		"nearly":  preset("bubble", 20, 1, 100, 1, datagen.AlmostSortedAscending),
		"average": preset("bubble", 15, 1, 100, 1, datagen.Random),
	},
	"selection": {
		"average":  preset("selection", 15, 1, 100, 1, datagen.Random),
		"reversed": preset("selection", 15, 1, 100, 1, datagen.SortedDescending),
	},
	"insertion": {
		"best":  preset("insertion", 30, 1, 100, 1, datagen.AlmostSortedAscending),
		"worst": preset("insertion", 15, 1, 100, 2, datagen.SortedDescending),
	},
	"heap": {
		"average": preset("heap", 15, 1, 100, 1, datagen.Random),
		"large":   preset("heap", 100, 1, 100, 10, datagen.Random),
	},
	"merge": {
		"average":  preset("merge", 16, 1, 100, 1, datagen.Random),
		"large":    preset("merge", 100, 1, 100, 5, datagen.Random),
		"reversed": preset("merge", 16, 1, 100, 1, datagen.SortedDescending),
	},
	"quick": {
		"average":    preset("quick", 15, 1, 100, 1, datagen.Random),
		"sorted":     preset("quick", 30, 1, 100, 2, datagen.SortedAscending),
		"duplicates": preset("quick", 30, 1, 5, 2, datagen.Random),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(algorithm, name string) *Config {
	byName, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := byName[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(algorithm string) []string {
	byName, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
