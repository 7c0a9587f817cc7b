// Package main provides lbpsig, a command that computes the LBP histogram
// signature of a trajectory CSV and optionally renders, stores and matches it.
//
// Usage:
//
//	lbpsig -in walk.csv [-config lbp.json] [-out report.json]
//	       [-png cells.png] [-chart hist.png]
//	       [-db signatures.db] [-label name] [-match]
//
// The report is JSON and goes to stdout unless -out is given.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lbptrace/config"
	"github.com/katalvlaran/lbptrace/grid"
	"github.com/katalvlaran/lbptrace/lbp"
	"github.com/katalvlaran/lbptrace/render"
	"github.com/katalvlaran/lbptrace/similarity"
	"github.com/katalvlaran/lbptrace/store"
	"github.com/katalvlaran/lbptrace/trajectory"
)

// maxMatches bounds the ranked matches included in a report.
const maxMatches = 5

// options holds parsed command-line flags.
type options struct {
	In     string
	Config string
	Out    string
	PNG    string
	Chart  string
	DB     string
	Label  string
	Match  bool
}

// report is the JSON document written by lbpsig.
type report struct {
	Input       string             `json:"input"`
	Points      int                `json:"points"`
	Segments    int                `json:"segments"`
	Cells       int                `json:"cells"`
	Components4 int                `json:"components4"`
	Components8 int                `json:"components8"`
	Patterns    int                `json:"patterns"`
	NonZero     []lbp.Bucket       `json:"nonzero"`
	Histogram   []int              `json:"histogram"`
	StoredID    string             `json:"stored_id,omitempty"`
	Metric      string             `json:"metric,omitempty"`
	Matches     []similarity.Match `json:"matches,omitempty"`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("lbpsig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.In, "in", "", "trajectory CSV (x,y per line)")
	fs.StringVar(&o.Config, "config", "", "JSON config file")
	fs.StringVar(&o.Out, "out", "", "report path (default stdout)")
	fs.StringVar(&o.PNG, "png", "", "write the filled-cell raster to this PNG")
	fs.StringVar(&o.Chart, "chart", "", "write the histogram chart to this file (format from extension)")
	fs.StringVar(&o.DB, "db", "", "signature database DSN (overrides config db_dsn)")
	fs.StringVar(&o.Label, "label", "", "store the signature under this label")
	fs.BoolVar(&o.Match, "match", false, "rank stored signatures by distance")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.In == "" {
		fs.Usage()
		return o, errors.New("-in is required")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if o.Config != "" {
		if cfg, err = config.Load(o.Config); err != nil {
			return err
		}
	}
	lbp.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.GetLogLevel()})))
	defer lbp.SetLogger(nil)

	xs, ys, err := trajectory.ReadCSVFile(o.In)
	if err != nil {
		return err
	}
	res, err := lbp.Compute(xs, ys, lbp.WithWorkers(cfg.GetWorkers()))
	if err != nil {
		return fmt.Errorf("%s: %w", o.In, err)
	}

	rep := report{
		Input:       o.In,
		Points:      res.Points,
		Segments:    res.Segments,
		Cells:       res.Cells.Len(),
		Components4: len(res.Cells.Components(grid.Conn4)),
		Components8: len(res.Cells.Components(grid.Conn8)),
		Patterns:    res.Histogram.Total(),
		NonZero:     res.Histogram.NonZero(),
		Histogram:   res.Histogram.Slice(),
	}

	if o.PNG != "" {
		if err := writeOccupancy(o.PNG, res.Cells, cfg.GetImageScale()); err != nil {
			return err
		}
	}
	if o.Chart != "" {
		if err := writeChart(o.Chart, res.Histogram, filepath.Base(o.In), cfg); err != nil {
			return err
		}
	}

	driver, dsn := cfg.GetDB()
	if o.DB != "" {
		dsn = o.DB
	}
	if o.Label != "" && dsn == "" {
		return errors.New("-label needs a database (-db or config db_dsn)")
	}
	if dsn != "" && (o.Match || o.Label != "") {
		if err := useStore(ctx, driver, dsn, o, cfg, res, &rep); err != nil {
			return err
		}
	}

	return writeReport(o.Out, stdout, &rep)
}

func useStore(ctx context.Context, driver, dsn string, o options, cfg *config.Config, res *lbp.Result, rep *report) error {
	st, err := store.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	if o.Match && !res.Histogram.IsZero() {
		all, err := st.References(ctx)
		if err != nil {
			return err
		}
		// Signatures of degenerate trajectories have no distance to anything.
		refs := slices.DeleteFunc(all, func(r similarity.Reference) bool { return r.Histogram.IsZero() })
		if len(refs) > 0 {
			m := cfg.GetMetric()
			ranked, err := similarity.Rank(res.Histogram, refs, m)
			if err != nil {
				return err
			}
			rep.Metric = m.String()
			rep.Matches = ranked[:min(len(ranked), maxMatches)]
		}
	}

	if o.Label != "" {
		sig := &store.Signature{
			Label:     o.Label,
			Points:    res.Points,
			Cells:     res.Cells.Len(),
			Histogram: res.Histogram,
		}
		if err := st.Save(ctx, sig); err != nil {
			return err
		}
		rep.StoredID = sig.ID.String()
	}
	return nil
}

func writeOccupancy(path string, cells *grid.CellSet, scale int) error {
	if cells.Len() == 0 {
		lbp.Logger().Warn("lbpsig: no filled cells, skipping raster", "path", path)
		return nil
	}
	img, err := render.Occupancy(cells, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeChart(path string, h lbp.Histogram, title string, cfg *config.Config) error {
	p, err := render.HistogramChart(h, title)
	if err != nil {
		return err
	}
	w, ht := cfg.GetChartSize()
	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(ht)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}

func writeReport(path string, stdout io.Writer, rep *report) error {
	if path == "" {
		return encodeReport(stdout, rep)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encodeReport(f, rep); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func encodeReport(w io.Writer, rep *report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
