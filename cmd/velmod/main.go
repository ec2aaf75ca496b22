// Command velmod loads a seismic velocity model and prints wavespeed
// values at query points.
//
// Usage:
//
//	velmod -model <file> -gridspace <m> [flags] [<y> <z>]
//	velmod -model <file> -gridspace <m> -dim 3 [flags] [<y> <x> <z>]
//
// Examples:
//
//	velmod -model line.segy -gridspace 10 0 500
//	velmod -model salt.nc -dim 3 -gridspace 50 -json 1000 2000 300
//	velmod -model line.segy -gridspace 10 -plot line.png
//	velmod -model line.segy -gridspace 10 -info
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/seisgo/velmod"
)

// jsonOutput is the top-level JSON response.
type jsonOutput struct {
	Model       string       `json:"model"`
	Dim         int          `json:"dim"`
	GridSpacing float64      `json:"grid_spacing_m"`
	Counts      []int        `json:"counts"`
	BBox        [][2]float64 `json:"bbox"`
	Point       []float64    `json:"point,omitempty"`
	Wavespeed   *float64     `json:"wavespeed,omitempty"`
}

func main() {
	modelPath := flag.String("model", "", "Velocity model file (SEG-Y for -dim 2, NetCDF for -dim 3)")
	dim := flag.Int("dim", 2, "Model dimensionality (2 or 3)")
	spacing := flag.Float64("gridspace", 0, "Grid spacing in metres (required, > 0)")
	plotPath := flag.String("plot", "", "Write a heat map of the field to this file (.png/.svg/.pdf)")
	stride := flag.Int("stride", 10, "Sample every Nth grid node when plotting")
	info := flag.Bool("info", false, "Print model summary and exit")
	asJSON := flag.Bool("json", false, "Output results as JSON")
	flag.Usage = usage
	flag.Parse()

	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "error: -model is required")
		usage()
		os.Exit(2)
	}

	m, err := velmod.Load(velmod.Config{
		FilePath:    *modelPath,
		GridSpacing: *spacing,
		Dim:         *dim,
	})
	if err != nil {
		fatalf("%v", err)
	}

	if *plotPath != "" {
		if err := m.SavePlot(*plotPath, *stride); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}

	out := jsonOutput{
		Model:       *modelPath,
		Dim:         m.Dim(),
		GridSpacing: m.GridSpacing(),
		Counts:      m.Counts(),
		BBox:        m.BBox(),
	}

	if flag.NArg() > 0 {
		if flag.NArg() != m.Dim() {
			fatalf("a %d-D model needs %d query coordinates, got %d", m.Dim(), m.Dim(), flag.NArg())
		}
		p := make([]float64, flag.NArg())
		for i := range p {
			p[i], err = strconv.ParseFloat(flag.Arg(i), 64)
			if err != nil {
				fatalf("invalid coordinate %q: %v", flag.Arg(i), err)
			}
		}
		v := m.Field().At(p...)
		out.Point = p
		out.Wavespeed = &v
	} else if *plotPath != "" && !*info && !*asJSON {
		return
	}

	if *asJSON {
		emitJSON(out)
		return
	}
	printSummary(out)
}

// printSummary displays the model summary and, if queried, the value.
func printSummary(out jsonOutput) {
	fmt.Printf("\n")
	fmt.Printf("  Model    : %s\n", out.Model)
	fmt.Printf("  Dim      : %d\n", out.Dim)
	fmt.Printf("  Spacing  : %g m\n", out.GridSpacing)
	fmt.Printf("  Nodes    : %v\n", out.Counts)
	fmt.Printf("  BBox     : %v\n", out.BBox)
	if out.Wavespeed != nil {
		fmt.Printf("\n")
		fmt.Printf("  Point    : %v\n", out.Point)
		fmt.Printf("  Wavespeed: %g m/s\n", *out.Wavespeed)
	}
	fmt.Printf("\n")
}

// emitJSON writes jsonOutput to stdout as indented JSON.
func emitJSON(out jsonOutput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("json encode: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  velmod -model <file> -gridspace <m> [flags] [<y> <z>]
  velmod -model <file> -gridspace <m> -dim 3 [flags] [<y> <x> <z>]

Flags:
`)
	flag.PrintDefaults()
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
