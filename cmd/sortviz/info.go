package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/viz"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "list the available algorithms, orders and themes",
		Run: func(cmd *cobra.Command, args []string) {
			registry := experiment.NewRegistry()

			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Name", "Title", "Best", "Average", "Worst", "Space", "Stable"})
			for _, name := range registry.Algorithms() {
				alg, _ := registry.Algorithm(name)
				c := alg.Complexity
				tbl.AppendRow(table.Row{alg.Name, alg.Title, c.Best, c.Average, c.Worst, c.Space, alg.Stable})
			}
			tbl.Render()

			orders := registry.Orders()
			names := make([]string, len(orders))
			for i, o := range orders {
				names[i] = string(o)
			}
			fmt.Println("orders:", strings.Join(names, ", "))
			fmt.Println("themes:", strings.Join(viz.ThemeNames(), ", "))

			if verbose {
				fmt.Println()
				for _, name := range registry.Algorithms() {
					alg, _ := registry.Algorithm(name)
					fmt.Printf("%s\n  %s\n", alg.Title, alg.Description)
				}
			}
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list named presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := experiment.NewRegistry().Algorithms()
			if len(args) == 1 {
				names = args[:1]
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Algorithm", "Preset", "Bars", "Values", "Order", "Speed"})
			found := false
			for _, alg := range names {
				for _, name := range config.ListPresets(alg) {
					p := config.GetPreset(alg, name)
					tbl.AppendRow(table.Row{alg, name, p.NumBars, fmt.Sprintf("%d..%d", p.MinValue, p.MaxValue), p.SortOrder, p.Speed})
					found = true
				}
			}
			if !found {
				return fmt.Errorf("no presets for %s", strings.Join(names, ", "))
			}
			tbl.Render()
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved config to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ".sortviz.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
