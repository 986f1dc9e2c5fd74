package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/analysis"
	"github.com/philipparndt/gofurnish/pkg/meshio"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Inspect the entries of a scene file",
	Long: `List every geometry in a scene file with its extent along the up axis and a
guess whether it is floor, ceiling, wall or an object. Useful to choose the
ceiling pattern for compose.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

var infoFlags struct {
	up         string
	local      bool
	floorMax   float64
	ceilingMin float64
	wallHeight float64
	category   string
	tallest    int
}

func init() {
	defaults := analysis.DefaultThresholds()
	f := infoCmd.Flags()
	f.StringVar(&infoFlags.up, "up", "z", "Up axis (x, y or z)")
	f.BoolVar(&infoFlags.local, "local", false, "Measure raw mesh coordinates, ignoring node transforms")
	f.Float64Var(&infoFlags.floorMax, "floor-max", defaults.FloorMax, "Entries below this height are floors")
	f.Float64Var(&infoFlags.ceilingMin, "ceiling-min", defaults.CeilingMin, "Entries above this height are ceilings")
	f.Float64Var(&infoFlags.wallHeight, "wall-height", defaults.WallHeight, "Entries taller than this are walls")
	f.StringVar(&infoFlags.category, "category", "", "Only list entries guessed as floor, ceiling, wall or object")
	f.IntVar(&infoFlags.tallest, "tallest", 0, "Also list the N tallest entries")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	axis, err := analysis.ParseAxis(infoFlags.up)
	if err != nil {
		return err
	}

	var category analysis.Category
	if infoFlags.category != "" {
		if category, err = analysis.ParseCategory(infoFlags.category); err != nil {
			return err
		}
	}

	s, err := meshio.Load(filename)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}

	result := analysis.Inspect(s, analysis.Options{
		UpAxis: axis,
		Local:  infoFlags.local,
		Thresholds: analysis.Thresholds{
			FloorMax:   infoFlags.floorMax,
			CeilingMin: infoFlags.ceilingMin,
			WallHeight: infoFlags.wallHeight,
		},
	})

	listed := result.Entries
	if infoFlags.category != "" {
		listed = result.FilterByCategory(category)
	}

	up := strings.ToUpper(infoFlags.up)
	rule := strings.Repeat("=", 60)

	fmt.Println("Scene Information")
	fmt.Println("=================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Entries: %d\n", len(result.Entries))
	fmt.Printf("Vertices: %d\n", result.Vertices)
	fmt.Printf("Triangles: %d\n", result.Triangles)
	fmt.Printf("Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))

	if len(result.Entries) > 0 {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Size: %s\n\n", analysis.FormatVector(result.Dimensions))
	}

	fmt.Println(rule)
	fmt.Printf("%-30s | %-10s | %-10s | %s\n", "Geometry Name", up+"-Min", up+"-Max", "Guess")
	fmt.Println(rule)
	printEntries(listed)
	fmt.Println(rule)

	if infoFlags.tallest > 0 {
		fmt.Printf("\nTallest %d:\n", infoFlags.tallest)
		for _, e := range result.TallestEntries(infoFlags.tallest) {
			fmt.Printf("  %-30s %s\n", analysis.TruncateName(e.Name, 29), analysis.FormatMeasurement(e.Height(), "units"))
		}
		fmt.Println()
	}

	counts := result.CountByCategory()
	fmt.Printf("Floor: %d  Ceiling: %d  Wall: %d  Object: %d\n",
		counts[analysis.Floor], counts[analysis.Ceiling], counts[analysis.Wall], counts[analysis.Object])
	return nil
}

func printEntries(entries []analysis.EntryInfo) {
	for _, e := range entries {
		fmt.Printf("%-30s | %10.2f | %10.2f | %s\n", analysis.TruncateName(e.Name, 29), e.Low, e.High, e.Category)
	}
}
