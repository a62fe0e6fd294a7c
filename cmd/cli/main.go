package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sportstat/adapters/loader"
	"sportstat/adapters/loader/coercer"
	"sportstat/domain/core"
	"sportstat/domain/sport"
	domainstats "sportstat/domain/stats"
	"sportstat/internal"
	"sportstat/internal/config"
	"sportstat/internal/plotting"
	"sportstat/internal/profiling"
	"sportstat/internal/report"
	"sportstat/internal/session"
	"sportstat/internal/testkit"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "sportstat",
		Short:         "Descriptive statistics for sports player tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCategoriesCmd(),
		newColumnsCmd(),
		newAnalyzeCmd(),
		newSampleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

// environment is what every data command needs
type environment struct {
	cfg      *config.Config
	logger   *internal.Logger
	renderer *plotting.Renderer
}

func loadEnvironment() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &environment{
		cfg:      cfg,
		logger:   internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level)),
		renderer: plotting.NewRenderer(cfg.Plot.WidthCm, cfg.Plot.HeightCm),
	}, nil
}

// openSession loads path into a fresh session and selects the category
func (env *environment) openSession(ctx context.Context, path, category string) (*session.Session, []string, error) {
	cc := coercer.DefaultCoercionConfig()
	cc.Enabled = env.cfg.Data.CoerceText
	cc.NumericThreshold = env.cfg.Data.NumericThreshold
	reader := loader.NewDataReader(cc, env.logger)

	sess := session.New(core.NewSessionID(), reader, domainstats.DefaultParams(), env.logger)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, core.NewFileReadError(path, err)
	}
	defer f.Close()
	if _, err := sess.Load(ctx, filepath.Base(path), f); err != nil {
		return nil, nil, err
	}

	cols, err := sess.SelectCategory(category)
	return sess, cols, err
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the supported sport categories and their attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Category", "Attributes"})
			table.SetAutoWrapText(false)
			for _, c := range sport.All() {
				table.Append([]string{c.String(), strings.Join(c.Attributes(), ", ")})
			}
			table.Render()
			return nil
		},
	}
}

func newColumnsCmd() *cobra.Command {
	var file, category string

	cmd := &cobra.Command{
		Use:     "columns",
		Short:   "Show the schema of a file and the columns analyzable for a category",
		Example: `  sportstat columns --file players.csv --category Basketball`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			sess, cols, err := env.openSession(cmd.Context(), file, category)
			if err != nil && !core.IsWarning(err) {
				return err
			}

			ds := sess.Dataset()
			profiles, perr := profiling.NewDataProfiler().ProfileDataset(ds)
			if perr != nil {
				return perr
			}
			byName := make(map[string]profiling.ColumnProfile, len(profiles))
			for _, p := range profiles {
				byName[p.Name] = p
			}
			selected := make(map[string]bool, len(cols))
			for _, c := range cols {
				selected[c] = true
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Column", "Type", "Missing", "Min", "Median", "Max", "Outliers", "Selected"})
			for _, col := range ds.Schema() {
				kind := string(col.Kind)
				if col.Coerced {
					kind += " (coerced)"
				}
				mark := ""
				if selected[col.Name] {
					mark = color.GreenString("yes")
				}
				row := []string{col.Name, kind, fmt.Sprintf("%d", col.Missing), "", "", "", "", mark}
				if p, ok := byName[col.Name]; ok && p.N > 0 {
					row[3] = fmt.Sprintf("%.3f", p.Summary.Min)
					row[4] = fmt.Sprintf("%.3f", p.Summary.Median)
					row[5] = fmt.Sprintf("%.3f", p.Summary.Max)
					row[6] = fmt.Sprintf("%d", p.Shape.Outliers)
				}
				table.Append(row)
			}
			table.Render()

			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning: %v", err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "CSV or Excel file to load")
	cmd.Flags().StringVar(&category, "category", "", "Sport category (Football or Basketball)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var file, category, column, plotsDir, xlsxOut, format string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one attribute of a player table",
		Long: `Compute descriptive statistics, 95% confidence intervals for the mean and the
variance, a two-sided t-test against a reference mean of 1.5 and the sample size
needed to estimate the mean within ±0.1 at 90% confidence.

Without --column the first attribute of the category found in the file is analyzed.`,
		Example: `  sportstat analyze --file players.csv --category Basketball --column PTS --plots out/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "table", "text", "markdown":
			default:
				return fmt.Errorf("unknown format %q (use table, text or markdown)", format)
			}

			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			sess, cols, err := env.openSession(cmd.Context(), file, category)
			if err != nil {
				if core.IsWarning(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning: %v", err))
					return nil
				}
				return err
			}

			if column == "" {
				column = cols[0]
			}
			return analyzeColumn(cmd, env, sess, column, format, plotsDir, xlsxOut)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "CSV or Excel file to load")
	cmd.Flags().StringVar(&category, "category", "", "Sport category (Football or Basketball)")
	cmd.Flags().StringVar(&column, "column", "", "Attribute to analyze (default: first applicable)")
	cmd.Flags().StringVar(&plotsDir, "plots", "", "Directory to write histogram and boxplot PNGs to")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "Write the result and sample to this workbook")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, text or markdown")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func analyzeColumn(cmd *cobra.Command, env *environment, sess *session.Session, column, format, plotsDir, xlsxOut string) error {
	result, err := sess.Analyze(column)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		fmt.Fprintln(out, report.Text(result))
	case "markdown":
		fmt.Fprintln(out, report.Markdown(result))
	default:
		printResultTable(cmd, result)
	}

	if plotsDir != "" {
		if err := writePlots(env, sess, column, plotsDir); err != nil {
			return err
		}
	}
	if xlsxOut != "" {
		sample, err := sess.Sample(column)
		if err != nil {
			return err
		}
		f, err := os.Create(xlsxOut)
		if err != nil {
			return err
		}
		if err := report.WriteXLSX(f, result, sample.Values()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		env.logger.Info("wrote %s", xlsxOut)
	}
	return nil
}

func printResultTable(cmd *cobra.Command, result *domainstats.AnalysisResult) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Statistic", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	decision := report.DecisionText(result.Test.Decision)
	for _, row := range report.Rows(result) {
		value := row.Display
		if row.Display == decision {
			if result.Test.Decision == domainstats.Rejected {
				value = color.RedString(value)
			} else {
				value = color.GreenString(value)
			}
		}
		table.Append([]string{row.Label, value})
	}
	table.Render()
}

func writePlots(env *environment, sess *session.Session, column, dir string) error {
	plots, err := sess.Plots(column)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := plotFileBase(column)
	for _, kind := range []plotting.Kind{plotting.KindHistogram, plotting.KindBoxPlot} {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", base, kind))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := env.renderer.Render(plots, kind, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		env.logger.Info("wrote %s", path)
	}
	return nil
}

func plotFileBase(column string) string {
	return strings.NewReplacer("%", "pct", "/", "_", "\\", "_", " ", "_").Replace(column)
}

func newSampleCmd() *cobra.Command {
	var sportLabel, out string
	var players int
	var seed int64
	var missing float64

	cmd := &cobra.Command{
		Use:     "sample",
		Short:   "Write a synthetic player roster CSV",
		Example: `  sportstat sample --sport Football --players 300 --seed 7 --out football.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := sport.Parse(sportLabel)
			if err != nil {
				return err
			}
			cfg := testkit.DefaultRosterConfig(category)
			cfg.PlayerCount = players
			cfg.Seed = seed
			cfg.MissingRate = missing

			g, err := testkit.NewRosterGenerator(cfg)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return g.WriteCSV(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := g.WriteCSV(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&sportLabel, "sport", "Basketball", "Sport category of the roster")
	cmd.Flags().IntVar(&players, "players", 200, "Number of players")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic output")
	cmd.Flags().Float64Var(&missing, "missing", 0.05, "Share of attribute cells left empty")
	cmd.Flags().StringVar(&out, "out", "-", "Output file, or - for stdout")
	return cmd
}
