package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"nilenavigator/catalog"
	"nilenavigator/config"
	"nilenavigator/export"
	"nilenavigator/itinerary"
	"nilenavigator/marketplace"
	"nilenavigator/models"
	"nilenavigator/store"

	"github.com/spf13/cobra"
)

const storeTimeout = 10 * time.Second

type app struct {
	configPath string
	backend    string
	cfg        config.CLIConfig
	catalog    *catalog.Catalog
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{catalog: catalog.Default(), now: time.Now}

	root := &cobra.Command{
		Use:          "nileplan",
		Short:        "Plan and export Egypt trips from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/nileplan/config.toml)")
	root.PersistentFlags().StringVar(&a.backend, "store", "", "store backend override: memory, sqlite, redis, mongo")

	root.AddCommand(a.attractionsCmd(), a.planCmd(), a.exportCmd(), a.productsCmd(), a.importCmd(), a.initCmd())
	return root
}

func (a *app) loadConfig() error {
	path := a.configPath
	if path == "" {
		p, err := config.CLIConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.LoadCLI(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.backend != "" {
		cfg.Store.Backend = a.backend
	}
	a.cfg = cfg
	return nil
}

func (a *app) openStore(ctx context.Context) (store.KV, error) {
	kv, err := store.Open(ctx, a.cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", a.cfg.Store.Backend, err)
	}
	return kv, nil
}

func (a *app) attractionsCmd() *cobra.Command {
	var q catalog.Query
	cmd := &cobra.Command{
		Use:   "attractions",
		Short: "List catalog attractions",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCITY\tGOVERNORATE")
			for _, at := range a.catalog.Filter(q) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", at.ID, at.Name, at.Type, at.City, at.Governorate)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&q.Governorate, "governorate", "", "only this governorate")
	cmd.Flags().StringVar(&q.City, "city", "", "only this city")
	cmd.Flags().StringVar(&q.Type, "type", "", "only this attraction type")
	return cmd
}

type planFlags struct {
	days         int
	selected     []string
	personalized bool
	pace         string
	save         bool
}

func (a *app) addPlanFlags(cmd *cobra.Command, f *planFlags) {
	cmd.Flags().IntVar(&f.days, "days", 0, "trip length in days (default from config)")
	cmd.Flags().StringSliceVar(&f.selected, "select", nil, "attraction ids, comma separated")
	cmd.Flags().BoolVar(&f.personalized, "personalized", false, "use the pace based planner")
	cmd.Flags().StringVar(&f.pace, "pace", "", "relaxed, moderate or active (default from config)")
}

// buildItinerary turns flags into a saved itinerary.
func (a *app) buildItinerary(f planFlags) models.SavedItinerary {
	days := f.days
	if days == 0 {
		days = a.cfg.Days
	}
	days = itinerary.ClampDays(days)
	pace := f.pace
	if pace == "" {
		pace = a.cfg.Pace
	}

	planner := itinerary.NewPlanner(a.catalog)
	selected := itinerary.NewSelectionSet(f.selected...)
	it := models.SavedItinerary{
		Days:        days,
		Selected:    selected.Values(),
		Selections:  planner.Selections(f.selected),
		GeneratedAt: a.now().UTC().Format(time.RFC3339),
	}
	if f.personalized {
		answers := models.Answers{Days: strconv.Itoa(days), Pace: pace}
		it.Answers = &answers
		it.Plan = planner.GeneratePersonalized(it.Selections, answers)
	} else {
		it.Plan = planner.Generate(days, selected)
	}
	return it
}

func (a *app) planCmd() *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Split selected attractions into a day by day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			it := a.buildItinerary(f)
			printPlan(cmd.OutOrStdout(), it.Plan)

			if !f.save {
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
			defer cancel()
			kv, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()
			if !store.Save(ctx, kv, store.KeyItinerary, it) {
				return fmt.Errorf("itinerary was not saved")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}
	a.addPlanFlags(cmd, &f)
	cmd.Flags().BoolVar(&f.save, "save", false, "store the plan as the current itinerary")
	return cmd
}

func printPlan(w io.Writer, plan models.TripPlan) {
	if len(plan) == 0 {
		fmt.Fprintln(w, "Nothing selected.")
		return
	}
	for i, day := range plan {
		fmt.Fprintf(w, "Day %d\n", i+1)
		if len(day) == 0 {
			fmt.Fprintf(w, "  %s\n", export.FreeDayText)
			continue
		}
		for _, s := range day {
			fmt.Fprintf(w, "  %s  %s (%s)\n", s.Time, s.Name, s.City)
		}
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		f      planFlags
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the itinerary as JSON or PDF",
		Long:  "Exports a plan built from --select, or the saved itinerary when no attractions are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "json" && format != "pdf" {
				return fmt.Errorf("unsupported export format %q", format)
			}

			var it models.SavedItinerary
			if len(f.selected) > 0 {
				it = a.buildItinerary(f)
			} else {
				ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
				defer cancel()
				kv, err := a.openStore(ctx)
				if err != nil {
					return err
				}
				defer kv.Close()
				it = store.Load(ctx, kv, store.KeyItinerary, models.SavedItinerary{})
			}

			data := itinerary.NewPlanner(a.catalog).ExportData(it, a.now(), a.cfg.ShareURL)
			if format == "pdf" && len(data.Plan) == 0 {
				return fmt.Errorf("nothing to export: no attractions selected")
			}

			if outDir == "" {
				outDir = a.cfg.ExportDir
			}
			path := filepath.Join(outDir, export.FileName(format, a.now()))
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer file.Close()

			if format == "pdf" {
				err = export.WritePDF(file, data)
			} else {
				err = export.WriteJSON(file, data)
			}
			if err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	a.addPlanFlags(cmd, &f)
	cmd.Flags().StringVar(&format, "format", "pdf", "json or pdf")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	return cmd
}

func (a *app) productsCmd() *cobra.Command {
	var (
		filter   marketplace.Filter
		minPrice, maxPrice float64
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse marketplace products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("min") {
				filter.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max") {
				filter.MaxPrice = &maxPrice
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
			for _, p := range marketplace.Default().Search(filter) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", p.ID, p.Name, p.Category, p.Price)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&filter.Category, "category", "", "product category")
	cmd.Flags().StringVar(&filter.Governorate, "governorate", "", "artisan governorate")
	cmd.Flags().StringVar(&filter.Search, "search", "", "text in name, description or category")
	cmd.Flags().Float64Var(&minPrice, "min", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max", 0, "maximum price")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Clean a scraper export and list the artisan locations it yields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			locations, err := marketplace.Import(data)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tGOVERNORATE\tCRAFTS")
			for _, l := range locations {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Governorate, strings.Join(l.Specialties, ", "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d locations\n", len(locations))
			return nil
		},
	}
}

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				p, err := config.CLIConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.SaveCLI(path, config.DefaultCLIConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
