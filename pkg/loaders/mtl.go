package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/material"
)

// LoadMTL parses a Wavefront .mtl file into a name-indexed set of
// materials. Kind is inferred from a non-standard "kind" directive
// (diffuse|mirror|glass, default diffuse) and emission from Ke; ior from
// a non-standard "ior" directive, defaulting to 1.5 for glass.
func LoadMTL(r io.Reader) (map[string]material.Material, error) {
	materials := make(map[string]material.Material)

	var name string
	var color, emission core.Vec3
	var kind material.Kind
	ior := 1.5

	flush := func() {
		if name != "" {
			materials[name] = material.NewMaterial(color, emission, kind, ior)
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "newmtl":
			flush()
			name = fields[1]
			color, emission = core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}
			kind, ior = material.Diffuse, 1.5
		case "Kd":
			color = mustVec3(fields)
		case "Ke":
			emission = mustVec3(fields)
		case "kind":
			kind = parseKind(fields[1])
		case "ior":
			fmt.Sscanf(fields[1], "%f", &ior)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mtl: %w", err)
	}
	return materials, nil
}

func parseKind(s string) material.Kind {
	switch s {
	case "mirror":
		return material.Mirror
	case "glass":
		return material.Glass
	default:
		return material.Diffuse
	}
}

func mustVec3(fields []string) core.Vec3 {
	var x, y, z float64
	fmt.Sscanf(strings.Join(fields[1:], " "), "%f %f %f", &x, &y, &z)
	return core.NewVec3(x, y, z)
}
