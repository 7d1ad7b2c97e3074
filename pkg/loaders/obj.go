// Package loaders implements the external scene-loading adapter: a
// hand-rolled Wavefront OBJ/MTL parser that populates a scene.Scene. The
// core never parses files itself; it only consumes the Scene this
// package produces.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/geometry"
	"github.com/wrenfield/gopathtracer/pkg/material"
	"github.com/wrenfield/gopathtracer/pkg/scene"
)

// LoadScene reads objPath and mtlPath and returns a built Scene: all
// vertices and triangulated faces from the OBJ, materials from the MTL,
// the bounding box over the vertices of all triangles (vertices that no
// face uses are not included), and the BVH/light data derived by
// Scene.Build. Triangles are assumed well-formed and non-degenerate;
// this loader does not validate geometry beyond what parsing requires.
func LoadScene(objPath, mtlPath string) (*scene.Scene, error) {
	mtlFile, err := os.Open(mtlPath)
	if err != nil {
		return nil, fmt.Errorf("opening mtl %s: %w", mtlPath, err)
	}
	defer mtlFile.Close()

	materials, err := LoadMTL(mtlFile)
	if err != nil {
		return nil, fmt.Errorf("parsing mtl %s: %w", mtlPath, err)
	}

	objFile, err := os.Open(objPath)
	if err != nil {
		return nil, fmt.Errorf("opening obj %s: %w", objPath, err)
	}
	defer objFile.Close()

	sc, err := loadOBJ(objFile, materials)
	if err != nil {
		return nil, fmt.Errorf("parsing obj %s: %w", objPath, err)
	}

	sc.Build()
	return sc, nil
}

func loadOBJ(r io.Reader, materials map[string]material.Material) (*scene.Scene, error) {
	sc := scene.NewScene()
	materialIDs := make(map[string]int)

	var vertices []core.Vec3
	currentMaterial := ensureMaterial(sc, materialIDs, materials, "")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)

		case "usemtl":
			currentMaterial = ensureMaterial(sc, materialIDs, materials, fields[1])

		case "f":
			if err := addFace(sc, vertices, fields, currentMaterial); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	return sc, nil
}

func ensureMaterial(sc *scene.Scene, ids map[string]int, materials map[string]material.Material, name string) int {
	if id, ok := ids[name]; ok {
		return id
	}
	m, ok := materials[name]
	if !ok {
		m = material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, material.Diffuse, 1.5)
	}
	id := sc.AddMaterial(m)
	ids[name] = id
	return id
}

func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 4 {
		return core.Vec3{}, fmt.Errorf("malformed vertex line: %v", fields)
	}
	x, err1 := strconv.ParseFloat(fields[1], 64)
	y, err2 := strconv.ParseFloat(fields[2], 64)
	z, err3 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return core.Vec3{}, fmt.Errorf("malformed vertex values: %v", fields)
	}
	return core.NewVec3(x, y, z), nil
}

// addFace triangulates an n-gon face as a fan around its first vertex,
// matching common exporter output for convex polygons.
func addFace(sc *scene.Scene, vertices []core.Vec3, fields []string, materialID int) error {
	indices := make([]int, 0, len(fields)-1)
	for _, token := range fields[1:] {
		idx, err := parseFaceVertexIndex(token, len(vertices))
		if err != nil {
			return err
		}
		indices = append(indices, idx)
	}
	if len(indices) < 3 {
		return fmt.Errorf("face with fewer than 3 vertices: %v", fields)
	}

	p0 := vertices[indices[0]]
	for i := 1; i+1 < len(indices); i++ {
		t := geometry.NewTriangle(p0, vertices[indices[i]], vertices[indices[i+1]], materialID)
		sc.AddTriangle(t)
	}
	return nil
}

// parseFaceVertexIndex extracts the vertex index from a face token of the
// form "v", "v/t", "v//n" or "v/t/n", handling OBJ's 1-based and
// negative (relative-to-end) indexing.
func parseFaceVertexIndex(token string, vertexCount int) (int, error) {
	vPart := strings.SplitN(token, "/", 2)[0]
	v, err := strconv.Atoi(vPart)
	if err != nil {
		return 0, fmt.Errorf("malformed face index %q: %w", token, err)
	}
	if v < 0 {
		v = vertexCount + v
	} else {
		v--
	}
	if v < 0 || v >= vertexCount {
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", v, vertexCount)
	}
	return v, nil
}
