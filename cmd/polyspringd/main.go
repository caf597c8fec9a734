// Command polyspringd runs a Polyspring relaxation session over a
// synthetic grid point cloud and streams the live state to a UDP
// listener, for manual inspection or integration with an external
// visualizer/test harness.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/polyspring/polyspring/density"
	"github.com/polyspring/polyspring/engine"
	"github.com/polyspring/polyspring/points"
	"github.com/polyspring/polyspring/transport"
)

func main() {
	n := flag.Int("n", 10, "grid side length; the session runs with n*n points")
	iterations := flag.Int("iterations", 200, "maximum number of Iterate calls")
	densityName := flag.String("density", "uniform", "target density: uniform, radial, or grid")
	addr := flag.String("addr", "127.0.0.1:9999", "UDP address to stream frames to")
	flag.Parse()

	h, err := densityByName(*densityName)
	if err != nil {
		log.Fatalf("polyspringd: %v", err)
	}

	b, err := transport.Dial(*addr)
	if err != nil {
		log.Fatalf("polyspringd: dial %s: %v", *addr, err)
	}
	defer b.Close()

	e := engine.New(engine.WithDensity(h))
	if err := e.SetPoints(gridBuffer(*n)); err != nil {
		log.Fatalf("polyspringd: set points: %v", err)
	}

	for i := 0; i < *iterations; i++ {
		keepGoing, err := e.Iterate()
		if err != nil {
			log.Fatalf("polyspringd: iterate %d: %v", i, err)
		}

		if err := b.SendPoints(e.Points(false)); err != nil {
			log.Printf("polyspringd: send points: %v", err)
		}
		if err := b.SendTriangles(e.Triangles()); err != nil {
			log.Printf("polyspringd: send triangles: %v", err)
		}

		if !keepGoing {
			log.Printf("polyspringd: converged after %d iterations, %d triangulations",
				e.Iterations(), e.Triangulations())
			break
		}
	}
}

func densityByName(name string) (density.Func, error) {
	switch name {
	case "uniform":
		return density.Uniform, nil
	case "radial":
		return density.Radial(0.5, 0.5, 4), nil
	case "grid":
		return density.Grid([][]float64{{1, 1}, {1, 1}}), nil
	default:
		return nil, fmt.Errorf("polyspringd: unknown density %q (want uniform, radial, or grid)", name)
	}
}

func gridBuffer(n int) points.Buffer {
	data := make([]float64, 0, 2*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data = append(data, float64(i)/float64(n-1), float64(j)/float64(n-1))
		}
	}
	return points.Buffer{Data: data, Stride: 2, XCol: 0, YCol: 1}
}
