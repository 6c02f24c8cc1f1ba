package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/brushforge/csgkernel"
	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/chunk"
	"github.com/brushforge/csgkernel/internal/config"
	"github.com/brushforge/csgkernel/internal/telemetry"
	"github.com/brushforge/csgkernel/mesh"
	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
	"github.com/brushforge/csgkernel/primitive"
	"github.com/brushforge/csgkernel/uvmap"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

func run(scenePath, outPath string, workers int) error {
	logger, err := telemetry.NewLogger()
	if err != nil {
		return fmt.Errorf("csgproc: build logger: %w", err)
	}
	defer logger.Sync()

	scene, err := config.LoadScene(scenePath)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		return err
	}

	cfg := config.Default()
	cfg.Workers = workers

	var counters telemetry.Counters
	brushes := make([]brush.Brush, 0, len(scene.Brushes))
	for _, sb := range scene.Brushes {
		b, err := buildBrush(sb, cfg)
		if err != nil {
			counters.ConstructionErrors++
			logger.Warn("skipping brush", zap.String("primitive", sb.Primitive), zap.Error(err))
			continue
		}
		brushes = append(brushes, b)
	}

	// SceneBrush.Order may list entries out of file order; the evaluator
	// relies entirely on slice position for chain precedence, so the scene's
	// declared order must be restored here before evaluation.
	sort.Slice(brushes, func(i, j int) bool { return brushes[i].Order < brushes[j].Order })

	var surface []*polygon.Polygon
	if scene.ChunkSize > 0 {
		surface = chunk.EvaluateChunked(brushes, chunk.Config{CellSize: scene.ChunkSize, NumCells: 64, Eval: cfg})
	} else {
		surface = csgkernel.ProcessWithConfig(brushes, cfg)
	}

	uvScale := scene.UVScale
	if uvScale <= 0 {
		uvScale = 1.0
	}
	for _, p := range surface {
		uvmap.ProjectAndAssign(p, uvScale)
	}

	counters.LogSummary(logger)

	m := mesh.Triangulate(surface)
	if err := writeOBJ(outPath, m); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		return err
	}

	logger.Info("evaluation complete",
		zap.Int("brushes", len(brushes)),
		zap.Int("polygons", len(surface)),
		zap.Int("vertices", len(m.Vertices)),
		zap.String("output", outPath),
	)
	return nil
}

func buildBrush(sb config.SceneBrush, cfg config.Config) (brush.Brush, error) {
	center := mgl64.Vec3{sb.Center[0], sb.Center[1], sb.Center[2]}

	var planes []plane.Plane
	switch strings.ToLower(sb.Primitive) {
	case "box":
		planes = primitive.Box(mgl64.Vec3{sb.HalfExtents[0], sb.HalfExtents[1], sb.HalfExtents[2]})
	case "wedge":
		planes = primitive.Wedge(mgl64.Vec3{sb.HalfExtents[0], sb.HalfExtents[1], sb.HalfExtents[2]}, sb.SlopeAxis)
	case "cylinder":
		var err error
		planes, err = primitive.Cylinder(sb.Radius, sb.HalfHeight, sb.Sides)
		if err != nil {
			return brush.Brush{}, err
		}
	case "arch":
		var err error
		planes, err = primitive.Arch(sb.InnerRadius, sb.Radius, sb.HalfHeight, sb.HalfDepth, sb.Sides)
		if err != nil {
			return brush.Brush{}, err
		}
	case "sphere":
		var err error
		planes, err = primitive.Sphere(sb.Radius, sb.LatSegments, sb.LonSegments)
		if err != nil {
			return brush.Brush{}, err
		}
	default:
		return brush.Brush{}, fmt.Errorf("unknown primitive %q", sb.Primitive)
	}

	planes = translate(planes, center)

	op, err := parseOperation(sb.Operation)
	if err != nil {
		return brush.Brush{}, err
	}
	return brush.Construct(planes, op, sb.Order, sb.MaterialTag, cfg.EpsInside, cfg.EpsDeterminant)
}

func translate(planes []plane.Plane, offset mgl64.Vec3) []plane.Plane {
	translated := make([]plane.Plane, len(planes))
	for i, p := range planes {
		if p.Degenerate {
			translated[i] = p
			continue
		}
		d := p.D - p.Normal().Dot(offset)
		translated[i] = plane.Plane{A: p.A, B: p.B, C: p.C, D: d}
	}
	return translated
}

func parseOperation(s string) (brush.Operation, error) {
	switch strings.ToLower(s) {
	case "additive", "":
		return brush.Additive, nil
	case "subtractive":
		return brush.Subtractive, nil
	case "intersect":
		return brush.Intersect, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}

func writeOBJ(path string, m mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csgproc: create output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, v := range m.Vertices {
		pos := v.Position
		fmt.Fprintf(w, "v %g %g %g\n", pos.X(), pos.Y(), pos.Z())
	}
	for _, v := range m.Vertices {
		uv := v.UV
		fmt.Fprintf(w, "vt %g %g\n", uv.X(), uv.Y())
	}
	for _, v := range m.Vertices {
		n := v.Normal
		fmt.Fprintf(w, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}

	writeTri := func(a, b, c int) {
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
	}
	switch indices := m.Indices.(type) {
	case []uint16:
		for i := 0; i+2 < len(indices); i += 3 {
			writeTri(int(indices[i]), int(indices[i+1]), int(indices[i+2]))
		}
	case []uint32:
		for i := 0; i+2 < len(indices); i += 3 {
			writeTri(int(indices[i]), int(indices[i+1]), int(indices[i+2]))
		}
	}
	return nil
}
