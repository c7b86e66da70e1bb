// Command linesegm segments binarized handwritten pages into text-line
// images by tracing minimum-cost boundaries between lines.
//
// Usage:
//
//	linesegm -o out/ page.png
//	linesegm -s 2 -mf 5 page1.png page2.png
//	linesegm -profile mls -profiles weights.yaml -stats ground/ page.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/linesegm/astar"
	"github.com/katalvlaran/linesegm/gridmap"
	"github.com/katalvlaran/linesegm/imaging"
	"github.com/katalvlaran/linesegm/segment"
	"github.com/katalvlaran/linesegm/stats"
)

type cliArgs struct {
	step         int
	factor       int
	profile      string
	profilesFile string
	statsDir     string
	outDir       string
	minGap       int
	draw         bool
	inputs       []string
}

func parseArgs() cliArgs {
	step := flag.Int("s", 1, "Exploration step (1 or 2)")
	factor := flag.Int("mf", 1, "Heuristic multiplication factor; >1 trades path quality for speed")
	profile := flag.String("profile", astar.DefaultProfileName, "Cost weight profile name")
	profilesFile := flag.String("profiles", "", "Optional YAML file with additional weight profiles")
	statsDir := flag.String("stats", "", "Ground-truth directory; when set, write a stats report")
	outDir := flag.String("o", "out", "Output directory for line images")
	minGap := flag.Int("gap", 1, "Minimum blank-row run treated as a line gap")
	draw := flag.Bool("draw", false, "Also write a boundaries.png overlay per page")
	flag.Parse()

	return cliArgs{
		step:         *step,
		factor:       *factor,
		profile:      *profile,
		profilesFile: *profilesFile,
		statsDir:     *statsDir,
		outDir:       *outDir,
		minGap:       *minGap,
		draw:         *draw,
		inputs:       flag.Args(),
	}
}

func loadProfiles(path string) (map[string]astar.WeightProfile, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profiles file: %w", err)
	}
	defer f.Close()

	return astar.LoadProfiles(f)
}

// segmentPage runs one page through the whole pipeline and writes its
// cropped line strips to outDir. It returns page-height strips for
// pixel-aligned evaluation against ground truth.
func segmentPage(path string, args cliArgs, profiles map[string]astar.WeightProfile) ([][][]byte, error) {
	gray, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	mask := imaging.Binarize(gray, imaging.DefaultThreshold)

	grid, err := gridmap.NewGrid(mask, imaging.DistanceTransform(mask))
	if err != nil {
		return nil, err
	}

	rows, err := imaging.LineRows(mask, args.minGap)
	if err != nil {
		return nil, err
	}

	boundaries, err := segment.Boundaries(grid, rows,
		astar.WithStep(args.step),
		astar.WithHeuristicFactor(args.factor),
		astar.WithProfile(args.profile),
		astar.WithProfiles(profiles),
	)
	if err != nil {
		return nil, err
	}

	lines, err := segment.Lines(mask, boundaries)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := filepath.Join(args.outDir, base)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	for i, line := range lines {
		name := filepath.Join(dir, fmt.Sprintf("line_%d.png", i+1))
		if err = imaging.Save(name, line); err != nil {
			return nil, err
		}
	}
	if args.draw {
		overlay := mask
		for _, b := range boundaries {
			overlay = imaging.DrawBoundary(overlay, b)
		}
		if err = imaging.Save(filepath.Join(dir, "boundaries.png"), overlay); err != nil {
			return nil, err
		}
	}
	log.Printf("%s: %d lines -> %s", path, len(lines), dir)

	return segment.PageLines(mask, boundaries)
}

// loadGroundTruth reads every image in dir as a binarized line mask,
// sorted by file name.
func loadGroundTruth(dir string) ([][][]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ground-truth dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	grounds := make([][][]byte, 0, len(names))
	for _, name := range names {
		gray, err := imaging.Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		grounds = append(grounds, imaging.Binarize(gray, imaging.DefaultThreshold))
	}

	return grounds, nil
}

func main() {
	args := parseArgs()
	if len(args.inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	profiles, err := loadProfiles(args.profilesFile)
	if err != nil {
		log.Fatalf("loading profiles: %v", err)
	}

	var reports []stats.Report
	for _, path := range args.inputs {
		lines, err := segmentPage(path, args, profiles)
		if err != nil {
			log.Fatalf("segmenting %s: %v", path, err)
		}

		if args.statsDir == "" {
			continue
		}
		grounds, err := loadGroundTruth(args.statsDir)
		if err != nil {
			log.Fatalf("evaluating %s: %v", path, err)
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		rep, err := stats.Evaluate(base, lines, grounds)
		if err != nil {
			log.Fatalf("evaluating %s: %v", path, err)
		}
		log.Printf("%s: hit rate %.2f, detection GT %.2f, detection R %.2f, correct %d/%d",
			base, rep.HitRate, rep.DetectionGT, rep.DetectionR, rep.Correct, rep.GroundTruthLines)
		reports = append(reports, rep)
	}

	if len(reports) > 0 {
		f, err := os.Create(filepath.Join(args.outDir, "stats.csv"))
		if err != nil {
			log.Fatalf("creating stats report: %v", err)
		}
		defer f.Close()
		if err = stats.WriteCSV(f, reports); err != nil {
			log.Fatalf("writing stats report: %v", err)
		}
	}
}
