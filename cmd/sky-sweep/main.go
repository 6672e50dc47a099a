package main

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"skyplayer/internal/sky"
	pcore "skyplayer/pkg/core"
)

type paramSet struct {
	pixel  int
	scale  float64
	domain sky.Domain
}

func (p paramSet) String() string {
	domain := "unit"
	if p.domain == sky.DomainSigned {
		domain = "signed"
	}
	return fmt.Sprintf("pixel=%d scale=%.1f domain=%s", p.pixel, p.scale, domain)
}

type scenarioResult struct {
	params     paramSet
	bright     float64
	mid        float64
	dim        float64
	brightPeak float64
	regens     int
	perFrame   time.Duration
}

func main() {
	frames := flag.Int("frames", 600, "frames to render per scenario")
	fps := flag.Int("fps", 60, "simulated frames per second")
	width := flag.Int("width", 800, "surface width")
	height := flag.Int("height", 600, "surface height")
	seed := flag.Int64("seed", 1337, "noise seed shared by every scenario")
	target := flag.Float64("target", 0.15, "desired share of bright blocks")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	pixelOptions := []int{4, 5, 8}
	scaleOptions := []float64{10, 20, 30, 45, 60}
	domainOptions := []sky.Domain{sky.DomainUnit, sky.DomainSigned}

	var sets []paramSet
	for _, pixel := range pixelOptions {
		for _, scale := range scaleOptions {
			for _, domain := range domainOptions {
				sets = append(sets, paramSet{pixel: pixel, scale: scale, domain: domain})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d frames at %dx%d)\n",
		len(sets), *workers, *frames, *width, *height)

	step := time.Second / time.Duration(max(*fps, 1))
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *width, *height, *frames, step, *seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		return math.Abs(all[i].bright-*target) < math.Abs(all[j].bright-*target)
	})
	elapsed := time.Since(start)

	fmt.Printf("\nClosest to %.0f%% bright (elapsed %s):\n", *target*100, elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) bright=%.3f (peak %.3f) mid=%.3f dim=%.3f regens=%d frame=%s %s\n",
			i+1, res.bright, res.brightPeak, res.mid, res.dim, res.regens, res.perFrame, res.params)
	}
}

func runScenario(params paramSet, w, h, frames int, step time.Duration, seed int64) scenarioResult {
	settings := sky.DefaultSettings()
	settings.PixelSize = params.pixel
	settings.NoiseScale = params.scale
	settings.Domain = params.domain

	comp := sky.NewCompositor(settings, pcore.NewRNG(seed))
	cov := sky.NewCoverage(w, h, settings.Palette)
	st := comp.Init(w, h)

	res := scenarioResult{params: params}
	start := time.Now()
	for i := 0; i < frames; i++ {
		prevTarget := st.Target
		st = comp.Frame(st, step, cov)
		if st.Target != prevTarget {
			res.regens++
		}
		b, m, d := cov.Shares()
		res.bright += b
		res.mid += m
		res.dim += d
		res.brightPeak = math.Max(res.brightPeak, b)
	}
	if frames > 0 {
		n := float64(frames)
		res.bright /= n
		res.mid /= n
		res.dim /= n
		res.perFrame = time.Since(start) / time.Duration(frames)
	}
	return res
}
