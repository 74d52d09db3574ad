// primtool is a CLI utility for inspecting, exporting and converting
// primforge project files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/export/stl"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/internal/project"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export", "stl":
		cmdExport(args)
	case "convert":
		cmdConvert(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`primtool - primforge project utility

Usage:
  primtool <command> [options]

Commands:
  info <project>                          Show objects and mesh statistics
  export [-o out.stl] [-name n] [-binary] <project>
                                          Write the scene as an STL file
  convert <project> <output>              Rewrite a project as JSON or YAML

Project files are JSON (.json) or YAML (.yaml, .yml).

Examples:
  primtool info scene.json
  primtool export -binary -o scene.stl scene.json
  primtool convert scene.json scene.yaml`)
}

// loadScene reads a project file into a fresh scene, exiting on error.
func loadScene(path string) *scene.Scene {
	s := scene.New(nil)
	if err := project.LoadFile(path, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// initLogger enables console logging at debug level for -v.
func initLogger(verbose bool) {
	if !verbose {
		return
	}
	if err := logger.Init("debug", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: primtool info <project>")
		os.Exit(1)
	}
	initLogger(*verbose)
	defer logger.Sync()

	path := fs.Arg(0)
	s := loadScene(path)
	instances := s.Instances()

	fmt.Printf("Project:   %s\n", path)
	fmt.Printf("Objects:   %d\n", len(instances))
	fmt.Printf("Next ID:   %d\n", s.NextID())
	fmt.Printf("Facets:    %d\n", stl.FacetCount(instances))
	if len(instances) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Objects by type:")
	counts := make(map[scene.Primitive]int)
	for _, inst := range instances {
		counts[inst.Type]++
	}
	types := make([]scene.Primitive, 0, len(counts))
	for p := range counts {
		types = append(types, p)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, p := range types {
		fmt.Printf("  %-8s %d\n", p, counts[p])
	}

	fmt.Println()
	fmt.Printf("  %-4s %-16s %-8s %-26s %-8s %s\n", "ID", "Name", "Type", "Position", "RotY", "Color")
	for _, inst := range instances {
		p := inst.Position
		fmt.Printf("  %-4d %-16s %-8s (%7.1f, %7.1f, %7.1f) %-8.3f %s\n",
			inst.ID, inst.Name, inst.Type, p.X, p.Y, p.Z, inst.RotationY, inst.Color.Hex())
	}

	bounds := sceneBounds(instances)
	fmt.Println()
	fmt.Printf("Bounds:    (%.1f, %.1f, %.1f) - (%.1f, %.1f, %.1f)\n",
		bounds.Min.X, bounds.Min.Y, bounds.Min.Z, bounds.Max.X, bounds.Max.Y, bounds.Max.Z)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("o", "", "Output STL path (default: project path with .stl)")
	name := fs.String("name", "", "Solid name (default: output file name)")
	binary := fs.Bool("binary", false, "Write binary STL instead of ASCII")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: primtool export [-o out.stl] [-name n] [-binary] <project>")
		os.Exit(1)
	}
	initLogger(*verbose)
	defer logger.Sync()

	path := fs.Arg(0)
	s := loadScene(path)

	out := *output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".stl"
	}
	solid := *name
	if solid == "" {
		solid = strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	}

	if err := stl.WriteFile(out, solid, s.Instances(), *binary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	format := "ASCII"
	if *binary {
		format = "binary"
	}
	fmt.Printf("Wrote %s (%s, %d facets)\n", out, format, stl.FacetCount(s.Instances()))
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: primtool convert <project> <output>")
		os.Exit(1)
	}
	initLogger(*verbose)
	defer logger.Sync()

	in, out := fs.Arg(0), fs.Arg(1)
	s := loadScene(in)
	if err := project.SaveFile(out, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Converted %s -> %s (%d objects)\n", in, out, s.Len())
}
