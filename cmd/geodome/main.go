package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/geodome"
	"github.com/smasonuk/geodome/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("geodome", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML settings file")
	radius := fs.Float64("radius", 0, "dome radius")
	frequency := fs.Int("frequency", 0, "subdivisions per icosahedron edge")
	precision := fs.Int("precision", 0, "weld precision in decimal digits, -1 picks a safe one")
	format := fs.String("format", "", "output format: ply, dxf, stl or obj (default from the -out extension)")
	out := fs.String("out", "", "output file")
	verify := fs.Bool("verify", false, "check the welded mesh before saving")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			settings.Dome.Radius = *radius
		case "frequency":
			settings.Dome.Frequency = *frequency
		case "precision":
			settings.Dome.Precision = *precision
		case "format":
			settings.Output.Format = *format
		case "out":
			settings.Output.File = *out
		case "verify":
			settings.Output.Verify = *verify
		}
	})
	if err := settings.Validate(); err != nil {
		return err
	}

	meshFormat, err := geodome.ParseFormat(settings.FormatName())
	if err != nil {
		return err
	}

	r, f := settings.Dome.Radius, settings.Dome.Frequency
	digits := settings.Dome.Precision
	if digits < 0 {
		digits, err = geodome.SafePrecision(r, f)
		if err != nil {
			return err
		}
		log.Printf("Using weld precision %d", digits)
	} else if err := geodome.CheckPrecision(r, f, digits); err != nil {
		log.Println("Warning:", err)
	}

	mesh, err := geodome.Generate(r, f,
		geodome.WithPrecision(digits),
		geodome.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	if settings.Output.Verify {
		if err := geodome.Verify(mesh, f); err != nil {
			return err
		}
		log.Println("Mesh verified.")
	}

	stats := geodome.Stats(mesh)
	log.Printf("Edges: %d, length min %.4f max %.4f mean %.4f sd %.4f",
		stats.Edges, stats.MinEdge, stats.MaxEdge, stats.MeanEdge, stats.StdDevEdge)
	log.Printf("Surface area %.4f (%.2f%% of sphere)", stats.Area, 100*stats.AreaRatio)

	p := settings.Placement
	placed := mesh.Transform(geodome.Placement(
		mgl64.Vec3(p.Position),
		mgl64.Vec3{
			mgl64.DegToRad(p.Rotation[0]),
			mgl64.DegToRad(p.Rotation[1]),
			mgl64.DegToRad(p.Rotation[2]),
		}))

	if err := placed.Save(settings.Output.File, meshFormat); err != nil {
		return err
	}
	fmt.Printf("Geodesic dome created with Radius %v and Frequency %d: %s\n", r, f, settings.Output.File)
	return nil
}
