package main

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/async-email/byte-pool/pool"
)

var rootCmd = &cobra.Command{
	Use:   "bytepool-bench",
	Short: "Drive the byte pool under timed alloc/write/release loops",
	RunE:  runBench,
}

var (
	flagSize    int
	flagIters   int
	flagWorkers int
	flagStore   string
	flagConfig  string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagSize, "size", 4096, "buffer size in bytes")
	flags.IntVar(&flagIters, "iters", 100000, "alloc/write/release cycles per worker")
	flags.IntVar(&flagWorkers, "workers", runtime.GOMAXPROCS(0), "concurrent workers")
	flags.StringVar(&flagStore, "store", "scan", "free-list store: scan or partitioned")
	flags.StringVar(&flagConfig, "config", "", "TOML profile with scenarios (overrides the flags above)")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execute root command")
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	scenarios := []Scenario{{
		Name:    "cli",
		Size:    flagSize,
		Iters:   flagIters,
		Workers: flagWorkers,
		Store:   flagStore,
	}}
	if flagConfig != "" {
		loaded, err := loadProfile(flagConfig)
		if err != nil {
			return err
		}
		scenarios = loaded
	}

	for _, sc := range scenarios {
		if err := sc.validate(0); err != nil {
			return err
		}
		runScenario(sc)
	}
	return nil
}

func runScenario(sc Scenario) {
	log.Info().
		Str("scenario", sc.Name).
		Int("size", sc.Size).
		Int("iters", sc.Iters).
		Int("workers", sc.Workers).
		Str("store", sc.Store).
		Msg("running")

	baseline := timed(sc, func(size, iters int) {
		for i := 0; i < iters; i++ {
			buf := make([]byte, size)
			touch(buf)
		}
	})
	report(sc, "baseline", baseline)

	p := pool.NewBytePool(storeOptions(sc.Store)...)
	pooled := timed(sc, func(size, iters int) {
		for i := 0; i < iters; i++ {
			blk := p.Alloc(size)
			touch(blk.Data().Bytes())
			blk.Release()
		}
	})
	st := p.Stats()
	p.Close()
	report(sc, "pooled", pooled)

	log.Info().
		Str("scenario", sc.Name).
		Int64("allocs", st.TotalAlloc).
		Int64("reuses", st.TotalReuse).
		Int64("idle", st.Idle).
		Float64("speedup", float64(baseline)/float64(pooled)).
		Msg("done")
}

func storeOptions(store string) []pool.Option {
	if store == "partitioned" {
		return []pool.Option{pool.WithPartitionedStore()}
	}
	return nil
}

// touch writes every byte, simulating the fill a request handler does.
func touch(data []byte) {
	for i := range data {
		data[i] = 1
	}
}

func timed(sc Scenario, loop func(size, iters int)) time.Duration {
	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < sc.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop(sc.Size, sc.Iters)
		}()
	}
	wg.Wait()
	return time.Since(start)
}

func report(sc Scenario, mode string, elapsed time.Duration) {
	totalBytes := int64(sc.Size) * int64(sc.Iters) * int64(sc.Workers)
	mbps := float64(totalBytes) / elapsed.Seconds() / (1 << 20)
	perOp := elapsed / time.Duration(sc.Iters*sc.Workers)
	log.Info().
		Str("scenario", sc.Name).
		Str("mode", mode).
		Dur("elapsed", elapsed).
		Dur("per_op", perOp).
		Float64("mb_per_sec", mbps).
		Msg("result")
}
