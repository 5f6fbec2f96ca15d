package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"chemprop/internal/browse"
	"chemprop/internal/chemdata"
	"chemprop/internal/config"
	"chemprop/internal/critical"
	"chemprop/internal/estimate"
	"chemprop/internal/export"
	"chemprop/internal/logging"
	"chemprop/internal/phasechange"
)

var (
	configFile string
	preset     string
	logLevel   string
	jsonLogs   bool
	units      string
	// Lookup method override
	method string
	// Estimate parameters
	params []string
	// Curve sampling window
	tMin     float64
	tMax     float64
	points   int
	output   string
	format   string
	svgColor string

	// Active configuration, assembled before every command
	cfg *config.Config
)

// main is the entry point for the chemprop CLI; it registers commands and flags, launches the interactive browser when no subcommand is provided, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "chemprop",
		Short:             "chemical property lookup and estimation",
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive browser when no command given
			return runBrowse(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log in JSON")
	rootCmd.PersistentFlags().StringVar(&units, "units", config.DefaultUnits, "temperature units (K or C)")

	lookupCmd := &cobra.Command{
		Use:   "lookup [property] [compound]",
		Short: "look up a property value",
		Args:  cobra.ExactArgs(2),
		RunE:  lookupValue,
	}
	lookupCmd.Flags().StringVar(&method, "method", "", "data source method")

	methodsCmd := &cobra.Command{
		Use:   "methods [property] [compound]",
		Short: "list data sources holding a property",
		Args:  cobra.ExactArgs(2),
		RunE:  listMethods,
	}

	infoCmd := &cobra.Command{
		Use:   "info [compound]",
		Short: "show all properties of a compound",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	estimateCmd := &cobra.Command{
		Use:   "estimate [correlation]",
		Short: "evaluate a vaporization correlation",
		Args:  cobra.RangeArgs(0, 1),
		RunE:  runEstimate,
	}
	estimateCmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter as name=value (repeatable)")

	curveCmd := &cobra.Command{
		Use:   "curve [compound]",
		Short: "sample the fitted vaporization curve",
		Args:  cobra.ExactArgs(1),
		RunE:  curveHvap,
	}
	curveCmd.Flags().Float64Var(&tMin, "tmin", 0, "lower temperature bound")
	curveCmd.Flags().Float64Var(&tMax, "tmax", 0, "upper temperature bound")
	curveCmd.Flags().IntVar(&points, "points", 0, "number of samples")
	curveCmd.Flags().StringVar(&output, "output", "", "output file (csv, json or svg)")
	curveCmd.Flags().StringVar(&format, "format", "", "output format, inferred from extension when empty")
	curveCmd.Flags().StringVar(&svgColor, "color", "#00ff00", "svg stroke color")

	compareCmd := &cobra.Command{
		Use:   "compare [compound]",
		Short: "compare correlations against the fitted curve",
		Args:  cobra.ExactArgs(1),
		RunE:  compareCorrelations,
	}

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "list embedded data tables",
		RunE:  listSources,
	}

	tableCmd := &cobra.Command{
		Use:   "table [name]",
		Short: "dump one data table",
		Args:  cobra.ExactArgs(1),
		RunE:  dumpTable,
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive compound browser",
		RunE:  runBrowse,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(lookupCmd, methodsCmd, infoCmd, estimateCmd, curveCmd, compareCmd, sourcesCmd, tableCmd, browseCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig assembles the active configuration. Precedence is flags
// over config file over preset over defaults.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.LogJSON = jsonLogs
	}
	if cmd.Flags().Changed("units") {
		cfg.Units = units
	}

	logging.Setup(nil, cfg.LogLevel, cfg.LogJSON)
	return nil
}

func lookupValue(cmd *cobra.Command, args []string) error {
	p, err := propertyByKey(args[0])
	if err != nil {
		return err
	}
	cas, err := resolveCompound(args[1])
	if err != nil {
		return err
	}

	m := method
	if m == "" {
		m = cfg.Preferred.For(p.key)
	}

	var v float64
	var ok bool
	if m != "" {
		v, ok = p.using(cas, m)
		if !ok && method == "" {
			// The preferred source has nothing here, fall back to the
			// default order.
			m = ""
			v, ok = p.value(cas)
		}
	} else {
		v, ok = p.value(cas)
	}
	if !ok {
		return fmt.Errorf("no %s data for %s", p.key, args[1])
	}

	if m == "" {
		if ms := p.methods(cas); len(ms) > 0 {
			m = ms[0]
		}
	}

	s, unit := displayValue(p, v)
	if unit != "" {
		fmt.Printf("%s %s  (%s)\n", s, unit, m)
	} else {
		fmt.Printf("%s  (%s)\n", s, m)
	}
	return nil
}

func listMethods(cmd *cobra.Command, args []string) error {
	p, err := propertyByKey(args[0])
	if err != nil {
		return err
	}
	cas, err := resolveCompound(args[1])
	if err != nil {
		return err
	}

	ms := p.methods(cas)
	if len(ms) == 0 {
		fmt.Printf("no %s methods for %s\n", p.key, args[1])
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tVALUE\tUNIT")
	for _, m := range ms {
		v, _ := p.using(cas, m)
		s, unit := displayValue(p, v)
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, s, unit)
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	cas, err := resolveCompound(args[0])
	if err != nil {
		return err
	}

	if name := chemicalName(cas); name != "" {
		fmt.Printf("%s (%s)\n", name, cas)
	} else {
		fmt.Println(cas)
	}

	rows := make([][]string, 0, len(properties))
	for _, p := range properties {
		v, ok := p.value(cas)
		if !ok {
			rows = append(rows, []string{p.label, "-", "", ""})
			continue
		}
		s, unit := displayValue(p, v)
		m := ""
		if ms := p.methods(cas); len(ms) > 0 {
			m = ms[0]
		}
		rows = append(rows, []string{p.label, s, unit, m})
	}

	fmt.Println(renderTable([]string{"PROPERTY", "VALUE", "UNIT", "METHOD"}, rows, 1))
	return nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	reg := estimate.NewRegistry()

	if len(args) == 0 {
		rows := make([][]string, 0)
		for _, c := range reg.All() {
			sig := strings.Join(c.Params, ", ")
			if len(c.Optional) > 0 {
				opts := make([]string, 0, len(c.Optional))
				for name := range c.Optional {
					opts = append(opts, name)
				}
				sort.Strings(opts)
				sig += " [" + strings.Join(opts, ", ") + "]"
			}
			rows = append(rows, []string{c.Name, sig, c.Description})
		}
		fmt.Println(renderTable([]string{"CORRELATION", "PARAMETERS", "DESCRIPTION"}, rows))
		return nil
	}

	c, err := reg.Get(args[0])
	if err != nil {
		return err
	}
	vals, err := parseParams(params)
	if err != nil {
		return err
	}
	if missing := c.Missing(vals); len(missing) > 0 {
		return fmt.Errorf("missing parameters for %s: %s", c.Name, strings.Join(missing, ", "))
	}

	fmt.Printf("%.2f J/mol\n", c.Eval(vals))
	return nil
}

func parseParams(pairs []string) (map[string]float64, error) {
	p := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad parameter %q, want name=value", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad parameter %q: %w", pair, err)
		}
		p[name] = v
	}
	return p, nil
}

func curveHvap(cmd *cobra.Command, args []string) error {
	cas, err := resolveCompound(args[0])
	if err != nil {
		return err
	}

	fit, ok := phasechange.HvapFit(cas)
	if !ok {
		return fmt.Errorf("no vaporization fit for %s", args[0])
	}

	lo, hi := 0.5*fit.Tc, 0.95*fit.Tc
	if cmd.Flags().Changed("tmin") {
		lo = tMin
	}
	if cmd.Flags().Changed("tmax") {
		hi = tMax
	}
	if hi <= lo {
		return fmt.Errorf("tmax must be above tmin")
	}
	n := points
	if n <= 0 {
		n = cfg.Curve.Points
	}

	temps, values := export.Sample(lo, hi, n, func(T float64) float64 {
		return phasechange.WatsonN(T, fit.HvapRef, fit.Tref, fit.Tc, fit.N)
	})
	curve := &export.Curve{
		CAS:      cas,
		Chemical: chemicalName(cas),
		Property: "Hvap",
		Unit:     "J/mol",
		Method:   "WATSON_FIT",
		Temps:    temps,
		Values:   values,
	}

	if output == "" {
		if format == "json" {
			return export.ExportJSONStdout(curve)
		}
		graph := asciigraph.Plot(values,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("Hvap [J/mol] for %s, %.0fK to %.0fK", args[0], lo, hi)),
		)
		fmt.Println(graph)
		return nil
	}

	f := format
	if f == "" {
		switch {
		case strings.HasSuffix(output, ".csv"):
			f = "csv"
		case strings.HasSuffix(output, ".json"):
			f = "json"
		case strings.HasSuffix(output, ".svg"):
			f = "svg"
		default:
			return fmt.Errorf("cannot infer format from %q, pass --format", output)
		}
	}

	switch f {
	case "csv":
		err = export.ExportCSV(output, curve)
	case "json":
		err = export.ExportJSON(output, curve)
	case "svg":
		err = export.ExportSVG(output, curve, 800, 400, svgColor)
	default:
		return fmt.Errorf("unknown format: %s", f)
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", output)
	return nil
}

func compareCorrelations(cmd *cobra.Command, args []string) error {
	cas, err := resolveCompound(args[0])
	if err != nil {
		return err
	}

	tb, ok := phasechange.Tb(cas)
	if !ok {
		return fmt.Errorf("no boiling point for %s", args[0])
	}
	tc, ok := critical.Tc(cas)
	if !ok {
		return fmt.Errorf("no critical temperature for %s", args[0])
	}
	pc, ok := critical.Pc(cas)
	if !ok {
		return fmt.Errorf("no critical pressure for %s", args[0])
	}

	type result struct {
		name string
		hvap float64
	}
	results := []result{
		{"clapeyron", phasechange.Clapeyron(tb, tc, pc)},
		{"riedel", phasechange.Riedel(tb, tc, pc)},
		{"chen", phasechange.Chen(tb, tc, pc)},
		{"liu", phasechange.Liu(tb, tc, pc)},
		{"vetere", phasechange.Vetere(tb, tc, pc)},
	}
	if omega, ok := critical.Omega(cas); ok {
		results = append(results, result{"pitzer", phasechange.Pitzer(tb, tc, omega)})
	}

	ref, haveRef := phasechange.HvapFromFit(cas, tb)

	fmt.Printf("vaporization enthalpy at Tb=%.2fK for %s\n\n", tb, args[0])
	fmt.Printf("%-12s  %12s  %10s\n", "correlation", "hvap_j_mol", "dev_pct")
	fmt.Println(strings.Repeat("-", 38))

	if haveRef {
		fmt.Printf("%-12s  %12.1f  %10s\n", "fitted", ref, "-")
	}
	for _, r := range results {
		if haveRef {
			dev := 100 * (r.hvap - ref) / ref
			fmt.Printf("%-12s  %12.1f  %+10.2f\n", r.name, r.hvap, dev)
		} else {
			fmt.Printf("%-12s  %12.1f  %10s\n", r.name, r.hvap, "-")
		}
	}

	return nil
}

func listSources(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0)
	for _, src := range chemdata.All() {
		tbl, err := src.Table()
		if err != nil {
			rows = append(rows, []string{src.Name(), "-", "unavailable"})
			continue
		}
		rows = append(rows, []string{src.Name(), strconv.Itoa(tbl.Len()), strings.Join(tbl.Columns(), ", ")})
	}
	fmt.Println(renderTable([]string{"SOURCE", "COMPOUNDS", "COLUMNS"}, rows, 1))
	return nil
}

func dumpTable(cmd *cobra.Command, args []string) error {
	tbl, err := chemdata.TableByName(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(chemdata.Names(), ", "))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	cols := tbl.Columns()

	fmt.Fprint(w, "CAS\tCHEMICAL")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", c)
	}
	fmt.Fprintln(w)

	for _, cas := range tbl.CAS() {
		name, _ := tbl.Chemical(cas)
		fmt.Fprintf(w, "%s\t%s", cas, name)
		for _, c := range cols {
			if v, ok := tbl.Value(cas, c); ok {
				fmt.Fprintf(w, "\t%s", strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	m := browse.NewModel()
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
