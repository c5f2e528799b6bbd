package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pocketscan/internal/db"
	"pocketscan/internal/engine"
	"pocketscan/internal/logger"
	"pocketscan/internal/mol"
)

var version = "dev"

func main() {
	inPath := flag.String("in", "", "atom list JSON file (default stdin)")
	outPath := flag.String("out", "", "result JSON file (default stdout)")
	strategy := flag.String("strategy", "alpha", "detection strategy: alpha or grid")
	archive := flag.String("archive", "", "SQLite file to archive runs into (optional)")
	quiet := flag.Bool("quiet", false, "suppress console output")

	params := engine.DefaultParams()
	flag.Float64Var(&params.MinRadius, "min-radius", params.MinRadius, "smallest alpha-sphere radius kept (Å)")
	flag.Float64Var(&params.MaxRadius, "max-radius", params.MaxRadius, "largest alpha-sphere radius kept (Å)")
	flag.Float64Var(&params.Eps, "eps", params.Eps, "DBSCAN neighborhood radius (Å)")
	flag.IntVar(&params.MinSamples, "min-samples", params.MinSamples, "DBSCAN core-point neighbor threshold")
	flag.Float64Var(&params.VoxelResolution, "voxel-resolution", params.VoxelResolution, "voxel edge length for volume integration (Å)")
	flag.Float64Var(&params.ResidueRadius, "residue-radius", params.ResidueRadius, "residue membership cutoff (Å)")
	flag.Float64Var(&params.ExposureRadius, "exposure-radius", params.ExposureRadius, "solvent exposure count radius (Å)")

	grid := engine.DefaultGridParams()
	flag.Float64Var(&grid.Spacing, "grid-spacing", grid.Spacing, "grid strategy: scan step (Å)")
	flag.Float64Var(&grid.Radius, "grid-radius", grid.Radius, "grid strategy: atom count radius (Å)")
	flag.IntVar(&grid.Threshold, "grid-threshold", grid.Threshold, "grid strategy: max atom count per candidate")
	flag.Parse()

	if !*quiet {
		logger.Banner(version)
	}

	atoms, err := readAtoms(*inPath)
	if err != nil {
		logger.Error("Input", err.Error())
		os.Exit(1)
	}

	var strat engine.Strategy
	switch *strategy {
	case "alpha":
		strat, err = engine.NewDetector(params)
	case "grid":
		strat, err = engine.NewGridScanner(grid)
	default:
		err = fmt.Errorf("unknown strategy %q", *strategy)
	}
	if err != nil {
		logger.Error("Config", err.Error())
		os.Exit(1)
	}

	// Detection errors are part of the output contract: the caller
	// always receives well-shaped JSON, either the result or an error
	// object.
	result, detErr := strat.DetectPockets(atoms)
	if detErr != nil {
		if werr := writeJSON(*outPath, map[string]string{"error": detErr.Error()}); werr != nil {
			logger.Error("Output", werr.Error())
		}
		os.Exit(1)
	}

	if err := writeJSON(*outPath, result); err != nil {
		logger.Error("Output", err.Error())
		os.Exit(1)
	}
	if !*quiet {
		logger.Success("Detect", fmt.Sprintf("%d pockets from %d atoms", result.PocketCount(), len(atoms)))
	}

	if *archive != "" {
		archiveRun(*archive, *inPath, *strategy, len(atoms), params, result, *quiet)
	}
}

func readAtoms(path string) ([]mol.Atom, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return mol.ParseAtoms(r)
}

func writeJSON(path string, v any) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func archiveRun(dbPath, inPath, strategy string, atomCount int, params engine.Params, det engine.Detection, quiet bool) {
	res, ok := det.(*engine.Result)
	if !ok {
		// Grid-scan scores are not comparable with the scientific
		// pipeline's; they are not archived.
		return
	}

	database, err := db.Open(dbPath)
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open archive: %v", err))
		return
	}
	defer database.Close()

	name := "stdin"
	if inPath != "" {
		name = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	}
	runID := database.InsertRun(name, strategy, atomCount, params, res)
	if runID != 0 && !quiet {
		logger.Success("DB", fmt.Sprintf("Archived run %d (%s)", runID, name))
	}
}
