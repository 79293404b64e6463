// Package main provides a simple throughput benchmark for the sorting rule
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"package-sorter/internal/parcel"
	"package-sorter/internal/sorter"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Test duration")
	concurrency := flag.Int("c", 10, "Number of concurrent workers")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	fmt.Printf("Benchmarking package sorting\n")
	fmt.Printf("Duration: %v, Concurrency: %d\n\n", *duration, *concurrency)

	var (
		totalSorts int64
		standard   int64
		special    int64
		rejected   int64
		wg         sync.WaitGroup
		stop       = make(chan struct{})
	)

	// Start workers, each with its own deterministic source
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerSeed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed)) //nolint:gosec
			for {
				select {
				case <-stop:
					return
				default:
					// Dimensions up to 200 cm and mass up to 40 kg keep
					// all three outcomes reachable
					w := rng.Float64() * 200
					h := rng.Float64() * 200
					l := rng.Float64() * 200
					m := rng.Float64() * 40

					switch sorter.Sort(w, h, l, m) {
					case parcel.Standard:
						atomic.AddInt64(&standard, 1)
					case parcel.Special:
						atomic.AddInt64(&special, 1)
					case parcel.Rejected:
						atomic.AddInt64(&rejected, 1)
					}
					atomic.AddInt64(&totalSorts, 1)
				}
			}
		}(*seed + int64(i))
	}

	// Progress ticker
	ticker := time.NewTicker(time.Second)
	go func() {
		elapsed := 0
		for range ticker.C {
			elapsed++
			sorts := atomic.LoadInt64(&totalSorts)
			fmt.Printf("[%ds] Sorts: %d, Rate: %.0f/s\n",
				elapsed, sorts, float64(sorts)/float64(elapsed))
		}
	}()

	// Wait for duration
	time.Sleep(*duration)
	close(stop)
	ticker.Stop()
	wg.Wait()

	// Results
	sorts := atomic.LoadInt64(&totalSorts)
	std := atomic.LoadInt64(&standard)
	spc := atomic.LoadInt64(&special)
	rej := atomic.LoadInt64(&rejected)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Total sorts: %d\n", sorts)
	fmt.Printf("  Rate:        %.0f sorts/sec\n", float64(sorts)/duration.Seconds())
	if sorts > 0 {
		fmt.Printf("  STANDARD:    %d (%.1f%%)\n", std, 100*float64(std)/float64(sorts))
		fmt.Printf("  SPECIAL:     %d (%.1f%%)\n", spc, 100*float64(spc)/float64(sorts))
		fmt.Printf("  REJECTED:    %d (%.1f%%)\n", rej, 100*float64(rej)/float64(sorts))
	}
}
