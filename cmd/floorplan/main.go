package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/floorplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/render"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/units"
)

// ============================================================
// Floor Plan CLI
// ============================================================

func main() {
	in := flag.String("in", "", "Path to room capture JSON (default: stdin)")
	out := flag.String("out", "", "Output path (default: stdout)")
	format := flag.String("format", "svg", "Output format: svg, png or scene")
	width := flag.Int("width", 1600, "Canvas width, px")
	height := flag.Int("height", 1200, "Canvas height, px")
	scale := flag.Float64("scale", 100, "Scene units per meter")
	unitNames := flag.String("units", "imperial", "Dimension units: imperial or metric")
	dimensions := flag.Bool("dimensions", true, "Draw dimension lines")
	furniture := flag.Bool("furniture", true, "Draw furniture symbols")
	flag.Parse()

	data, err := readInput(*in)
	if err != nil {
		log.Fatalf("read capture: %v", err)
	}

	room, err := roomplan.Parse(data)
	if err != nil {
		log.Fatalf("parse capture: %v", err)
	}

	opts := floorplan.DefaultOptions()
	if *scale > 0 {
		opts.Scale = *scale
	}
	opts.Units = units.SystemFromString(*unitNames)
	opts.ShowDimensions = *dimensions
	opts.ShowFurniture = *furniture

	scene := floorplan.Build(room, opts)

	var output []byte
	switch *format {
	case "scene":
		output, err = json.MarshalIndent(scene, "", "  ")
	case "svg":
		output, err = render.SVG(scene, *width, *height)
	case "png":
		output, err = render.PNG(scene, *width, *height)
	default:
		log.Fatalf("unknown format %q, expected svg, png or scene", *format)
	}
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if err := writeOutput(*out, output); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
