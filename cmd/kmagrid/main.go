package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pspoerri/kmagrid/internal/batch"
	"github.com/pspoerri/kmagrid/internal/config"
	"github.com/pspoerri/kmagrid/internal/coord"
	"github.com/pspoerri/kmagrid/internal/encode"
	"github.com/pspoerri/kmagrid/internal/render"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	var (
		showVersion bool
		verbose     bool
	)
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kmagrid [flags] <command> [args...]\n\n")
		fmt.Fprintf(os.Stderr, "Convert between WGS84 coordinates and the KMA 5 km forecast grid.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  forward <lon> <lat>      grid cell containing a point\n")
		fmt.Fprintf(os.Stderr, "  inverse <x> <y>          lon/lat of a grid cell center\n")
		fmt.Fprintf(os.Stderr, "  batch [file]             unique cells for a list of points (default stdin)\n")
		fmt.Fprintf(os.Stderr, "  info                     projection constants and grid extent\n")
		fmt.Fprintf(os.Stderr, "  render <out>             draw the grid (.png, .jpg, .webp)\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("kmagrid %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "forward":
		runForward(rest)
	case "inverse":
		runInverse(rest)
	case "batch":
		runBatch(rest, verbose)
	case "info":
		runInfo()
	case "render":
		runRender(rest, cfg, verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(1)
	}
}

func runForward(args []string) {
	if len(args) != 2 {
		log.Fatal("Usage: kmagrid forward <lon> <lat>")
	}
	lon, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		log.Fatalf("Longitude: %v", err)
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		log.Fatalf("Latitude: %v", err)
	}
	g, err := coord.FromGCS(lon, lat)
	if err != nil {
		log.Fatalf("Forward projection: %v", err)
	}
	fmt.Printf("%d %d\n", g.X, g.Y)
}

func runInverse(args []string) {
	if len(args) != 2 {
		log.Fatal("Usage: kmagrid inverse <x> <y>")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("X: %v", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("Y: %v", err)
	}
	g, err := coord.NewGrid(x, y)
	if err != nil {
		log.Fatalf("Grid: %v", err)
	}
	lon, lat, err := g.ToGCS()
	if err != nil {
		log.Fatalf("Inverse projection: %v", err)
	}
	fmt.Printf("%.6f %.6f\n", lon, lat)
}

func runBatch(args []string, verbose bool) {
	var in io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Opening points: %v", err)
		}
		defer f.Close()
		in = f
	}

	start := time.Now()
	res, err := batch.Collect(in)
	if err != nil {
		log.Fatalf("Batch: %v", err)
	}
	for _, e := range res.Errors {
		log.Printf("WARNING: %v", e)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, g := range res.Cells {
		fmt.Fprintf(out, "%d %d %d\n", g.X, g.Y, res.Counts[g])
	}

	if verbose {
		log.Printf("Mapped %d point(s) to %d cell(s), %d rejected, in %v",
			res.Points, len(res.Cells), len(res.Errors), time.Since(start).Round(time.Millisecond))
	}
}

func runInfo() {
	c := coord.Constants()
	b := coord.GridBoundsWGS84()

	fmt.Printf("KMA 5 km Lambert Conformal Conic grid\n")
	fmt.Printf("  %-16s %.1f km\n", "Cell size:", coord.GridLength)
	fmt.Printf("  %-16s %d x %d\n", "Cells:", coord.MaxX+1, coord.MaxY+1)
	fmt.Printf("  %-16s (%.1f, %.1f) → cell %v\n", "Reference:", coord.ReferenceLon, coord.ReferenceLat, coord.ReferenceGrid)
	fmt.Printf("  %-16s %.10f\n", "Cone constant:", c.N)
	fmt.Printf("  %-16s %.10f\n", "Scale factor:", c.F)
	fmt.Printf("  %-16s %.6f\n", "Rho zero:", c.RhoZero)
	fmt.Printf("  %-16s lon [%.4f, %.4f], lat [%.4f, %.4f]\n", "Extent (WGS84):", b.MinLon, b.MaxLon, b.MinLat, b.MaxLat)
}

func runRender(args []string, cfg config.Config, verbose bool) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	format := fs.String("format", cfg.Format, "Fallback image format when the output has no extension: png, jpeg, webp")
	quality := fs.Int("quality", cfg.Quality, "JPEG/WebP quality 1-100 (100 = lossless WebP)")
	scale := fs.Int("scale", cfg.Scale, "Pixels per grid cell")
	step := fs.Float64("step", cfg.Step, "Graticule spacing in degrees")
	points := fs.String("points", "", "Highlight cells of the points in this file")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("Usage: kmagrid render [flags] <out.{png,jpg,webp}>")
	}
	outputPath := fs.Arg(0)

	enc, err := encode.ForPath(outputPath, *format, *quality)
	if err != nil {
		log.Fatalf("Encoder: %v", err)
	}

	opts := render.Options{Scale: *scale, Step: *step}
	if *points != "" {
		f, err := os.Open(*points)
		if err != nil {
			log.Fatalf("Opening points: %v", err)
		}
		res, err := batch.Collect(f)
		f.Close()
		if err != nil {
			log.Fatalf("Batch: %v", err)
		}
		for _, e := range res.Errors {
			log.Printf("WARNING: %v", e)
		}
		opts.Highlight = res.Cells
	}

	start := time.Now()
	img := render.Render(opts)

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Creating output: %v", err)
	}
	w := bufio.NewWriter(f)
	if err := enc.Encode(w, img); err != nil {
		f.Close()
		os.Remove(outputPath)
		log.Fatalf("Encoding %s: %v", enc.Format(), err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Closing output: %v", err)
	}

	if verbose {
		b := img.Bounds()
		log.Printf("Rendered %dx%d %s in %v → %s", b.Dx(), b.Dy(), enc.Format(),
			time.Since(start).Round(time.Millisecond), outputPath)
	}
}
