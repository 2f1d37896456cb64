package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"sphere-life/internal/core"
	"sphere-life/internal/render"
	"sphere-life/internal/sims/life"
)

func main() {
	defaults := life.DefaultConfig()
	// Session flags share their names with the life.FromMap keys.
	flag.Int("w", defaults.Width, "board width in cells")
	flag.Int("h", defaults.Height, "board height in cells")
	flag.Int("threads", runtime.NumCPU(), "number of row bands stepped concurrently")
	flag.Float64("density", defaults.Density, "probability a cell starts alive")
	flag.Int64("seed", defaults.Seed, "seed for the initial board")
	flag.Float64("rate", 0, "target generations per second (0 = unlimited)")
	layout := flag.String("layout", defaults.Layout.String(), "grid memory layout: interleaved|planar")

	generations := flag.Int("generations", 1000, "generations to run")
	verify := flag.Bool("verify", false, "re-run single threaded and compare the final boards")
	dump := flag.Bool("dump", false, "print the final board planes as text")
	plotPath := flag.String("plot", "", "write a population chart to this PNG file")
	snapPath := flag.String("snapshot", "", "write the final board to this PNG file")
	flag.Parse()

	if _, ok := core.ParseLayout(*layout); !ok {
		log.Fatalf("unknown layout %q", *layout)
	}
	if *generations <= 0 {
		log.Fatalf("generations must be positive, got %d", *generations)
	}
	cfg := configFromFlags(flag.CommandLine)

	session := life.NewSession(cfg)
	session.Reset(cfg.Seed)
	size := session.Size()
	fmt.Printf("Running %d generations on %dx%d (%d bands, layout %s, density %.2f, seed %d)\n",
		*generations, size.W, size.H, len(session.Clock().Bands()), session.Layout(), cfg.Density, cfg.Seed)

	hist := newHistory(*generations + 1)
	hist.add(0, session.Population())
	session.Clock().Observe(hist.add)

	start := time.Now()
	if err := session.Clock().Run(context.Background(), *generations); err != nil {
		log.Fatalf("run: %v", err)
	}
	elapsed := time.Since(start)
	session.Clock().Observe(nil)

	printSummary(session, hist, elapsed)

	if *verify {
		ok, err := verifySingleThread(session, cfg, *generations)
		if err != nil {
			log.Fatalf("verify: %v", err)
		}
		if !ok {
			log.Fatalf("verify: %d-band board differs from the single-band board", len(session.Clock().Bands()))
		}
		fmt.Println("verify:      single-band run matches")
	}
	if *dump {
		snap, _ := session.Snapshot()
		fmt.Print(snap.String())
	}
	if *plotPath != "" {
		if err := hist.plot(*plotPath, fmt.Sprintf("Population, %dx%d seed %d", size.W, size.H, cfg.Seed)); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("Population chart written to %s\n", *plotPath)
	}
	if *snapPath != "" {
		if err := writeSnapshot(session, *snapPath); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		fmt.Printf("Board snapshot written to %s\n", *snapPath)
	}
}

// configFromFlags feeds every flag through life.FromMap, which ignores the
// names it does not know.
func configFromFlags(fs *flag.FlagSet) life.Config {
	params := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		params[f.Name] = strings.TrimSpace(f.Value.String())
	})
	return life.FromMap(params)
}

func printSummary(s *life.Session, hist *history, elapsed time.Duration) {
	gens := s.Generation()
	fmt.Printf("generations: %d\n", gens)
	fmt.Printf("population:  %d (survey %d)\n", s.Population(), s.Survey())
	fmt.Printf("elapsed:     %s\n", elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf("rate:        %.1f gen/s\n", float64(gens)/secs)
	}
	lo, hi := hist.bounds()
	fmt.Printf("range:       %d..%d\n", lo, hi)

	snap, active := s.Snapshot()
	means, variances := sliceStats(snap)
	for z := range means {
		tag := ""
		if z == active {
			tag = " (current)"
		}
		fmt.Printf("slice %d:     density %.4f variance %.4f%s\n", z, means[z], variances[z], tag)
	}
}

// sliceStats returns the live-cell fraction of each slice and its variance.
func sliceStats(b *core.Buffer[bool]) ([]float64, []float64) {
	counts := core.Convert[bool, float64](b, func(v bool) float64 {
		if v {
			return 1
		}
		return 0
	})
	return core.ChannelMeans[float64](counts), core.ChannelVariances[float64](counts)
}

// verifySingleThread replays the run on one band and compares the current
// slices cell by cell.
func verifySingleThread(s *life.Session, cfg life.Config, generations int) (bool, error) {
	cfg.Threads = 1
	cfg.TargetRate = 0
	ref := life.NewSession(cfg)
	ref.Reset(cfg.Seed)
	if err := ref.Clock().Run(context.Background(), generations); err != nil {
		return false, err
	}
	got, gotActive := s.Snapshot()
	want, wantActive := ref.Snapshot()
	return core.Equal[bool](currentSlice(got, gotActive), currentSlice(want, wantActive)), nil
}

// currentSlice copies slice z of b into a single-plane buffer.
func currentSlice(b *core.Buffer[bool], z int) *core.Buffer[bool] {
	out := core.NewBuffer[bool](b.Width(), b.Height(), 1)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			out.Put(x, y, 0, b.At(x, y, z))
		}
	}
	return out
}

func writeSnapshot(s *life.Session, path string) error {
	size := s.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	frame, err := render.NewFrameRGBA(img)
	if err != nil {
		return err
	}
	frame.Fill(s.Cells(), color.White, color.Black)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
