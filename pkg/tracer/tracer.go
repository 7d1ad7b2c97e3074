// Package tracer implements the recursive bounce sampler and the shading
// pass that turns a bounce path into a radiance estimate. It is the
// numeric heart of the renderer: fixed-depth path tracing (no Russian
// roulette) with explicit next-event estimation toward the scene's
// single representative light vertex.
package tracer

import (
	"math"
	"math/rand"

	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/material"
	"github.com/wrenfield/gopathtracer/pkg/scene"
)

// TracePath recursively bounces ray through scene, writing one HitRecord
// into path per bounce, and returns the number of hits recorded (the
// path's depth). It stops at MaxBounces or on a miss; otherwise it builds
// the next bounce ray for the hit material and recurses with it.
func TracePath(ray core.Ray, path []core.HitRecord, depth int, sc *scene.Scene, rng *rand.Rand) int {
	if depth >= core.MaxBounces {
		return depth
	}

	hit, ok := sc.SceneHit(ray)
	if !ok {
		return depth
	}
	path[depth] = hit

	m := sc.Material(hit.MaterialID)
	next := nextRay(ray, hit, m, rng)

	return TracePath(next, path, depth+1, sc, rng)
}

// nextRay builds the outgoing ray at a hit, dispatching on the hit
// material's kind.
func nextRay(incoming core.Ray, hit core.HitRecord, m material.Material, rng *rand.Rand) core.Ray {
	switch m.Kind {
	case material.Mirror:
		direction := incoming.Direction.Reflect(hit.Normal).Normalize()
		origin := hit.Point.Move(hit.Normal.Multiply(core.RayEpsilon))
		return core.NewRay(origin, direction)

	case material.Glass:
		return dielectricRay(incoming, hit, m, rng)

	default: // Diffuse
		cube := core.NewVec3(
			rng.Float64()*2-1,
			rng.Float64()*2-1,
			rng.Float64()*2-1,
		)
		direction := hit.Normal.Add(cube).Normalize()
		origin := hit.Point.Move(hit.Normal.Multiply(core.RayEpsilon))
		return core.NewRay(origin, direction)
	}
}

// dielectricRay implements Schlick-approximated Fresnel reflectance with
// total internal reflection, per the reference renderer's glass shading.
func dielectricRay(incoming core.Ray, hit core.HitRecord, m material.Material, rng *rand.Rand) core.Ray {
	n := hit.Normal
	cosTheta := incoming.Direction.Dot(n)

	var normal core.Vec3
	var etaRatio float64
	if cosTheta > 0 {
		normal = n.Negate()
		etaRatio = m.IndexOfRefraction
	} else {
		normal = n
		etaRatio = 1 / m.IndexOfRefraction
		cosTheta = -cosTheta
	}

	k := 1 - etaRatio*etaRatio*(1-cosTheta*cosTheta)
	if k < 0 {
		direction := incoming.Direction.Reflect(normal).Normalize()
		origin := hit.Point.Move(normal.Multiply(core.RayEpsilon))
		return core.NewRay(origin, direction)
	}

	r0 := (1 - m.IndexOfRefraction) / (1 + m.IndexOfRefraction)
	r0 *= r0
	reflectance := r0 + (1-r0)*math.Pow(1-cosTheta, 5)

	if rng.Float64() < reflectance {
		direction := incoming.Direction.Reflect(normal).Normalize()
		origin := hit.Point.Move(normal.Multiply(core.RayEpsilon))
		return core.NewRay(origin, direction)
	}

	direction := incoming.Direction.Multiply(etaRatio).
		Add(normal.Multiply(etaRatio*cosTheta - math.Sqrt(k))).
		Normalize()
	origin := hit.Point.Subtract(normal.Multiply(core.RayEpsilon))
	return core.NewRay(origin, direction)
}

// CalculatePathColor walks a traced path of hits and accumulates
// radiance: emission only at the primary hit, then a direct-light
// contribution toward the scene's light vertex at every vertex, with
// throughput updated by the vertex's surface color after its light
// sample.
func CalculatePathColor(path []core.HitRecord, hits int, sc *scene.Scene) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for i := 0; i < hits; i++ {
		hit := path[i]
		m := sc.Material(hit.MaterialID)

		if i == 0 {
			color = color.Add(throughput.MultiplyVec(m.Emission))
		}

		if sc.HasLight {
			color = color.Add(directLight(hit, m, sc, throughput))
		}

		throughput = throughput.MultiplyVec(m.Color)
	}

	return color
}

// directLight computes the next-event-estimation contribution at one
// path vertex toward the scene's representative light vertex, returning
// the zero vector if the vertex faces away from the light or a shadow
// ray finds an occluder.
func directLight(hit core.HitRecord, m material.Material, sc *scene.Scene, throughput core.Vec3) core.Vec3 {
	toLight := sc.LightVertex.Subtract(hit.Point)
	distance := toLight.Length()
	direction := toLight.Multiply(1 / distance)

	cosLight := sc.LightNormal.Dot(direction.Negate())
	cosSurface := hit.Normal.Dot(direction)
	if cosLight <= 0 || cosSurface <= 0 {
		return core.Vec3{}
	}

	origin := hit.Point.Move(hit.Normal.Multiply(core.RayEpsilon))
	shadowRay := core.NewRay(origin, direction)
	if _, occluded := sc.Hit(shadowRay, core.RayEpsilon, distance-core.RayEpsilon); occluded {
		return core.Vec3{}
	}

	falloff := 1 / (distance*distance + 1)
	intensity := cosSurface * cosLight * falloff

	return throughput.MultiplyVec(m.Color).MultiplyVec(sc.LightEmission.Multiply(intensity))
}
