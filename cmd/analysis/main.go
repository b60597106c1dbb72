// Command analysis measures the false positive rate of the classic and
// partitioned filters against their configured target.
//
//	go run . -n 10000000 -f 0.02 -samples 1000000
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/fatih/color"
	"github.com/jcalabro/probable"
)

var (
	green = color.New(color.FgGreen).PrintlnFunc()
	red   = color.New(color.FgRed).PrintlnFunc()
	blue  = color.New(color.FgBlue).PrintlnFunc()
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfg     Config
		variant string
		level   string
	)
	flag.Uint64Var(&cfg.Items, "n", 10_000_000, "number of items to insert")
	flag.Float64Var(&cfg.FPRate, "f", 0.02, "target false positive rate")
	flag.Uint64Var(&cfg.Samples, "samples", 1_000_000, "number of absent keys to look up")
	flag.StringVar(&cfg.Keys, "keys", "int", "key kind: int or uuid")
	flag.StringVar(&cfg.Hasher, "hasher", "xxh3", "hash function: xxh3 or murmur3")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "seed for int key generation")
	flag.Float64Var(&cfg.Tolerance, "tolerance", 0.05, "allowed relative deviation from -f")
	flag.StringVar(&variant, "variant", "both", "filter variant: classic, partitioned or both")
	flag.StringVar(&level, "log-level", "INFO", "log level")
	flag.Parse()

	logger.New(level)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("analysis")

	variants := []probable.Variant{probable.Classic, probable.Partitioned}
	if variant != "both" {
		v, err := probable.ParseVariant(variant)
		if err != nil {
			red(err)
			return 2
		}
		variants = []probable.Variant{v}
	}

	blue(fmt.Sprintf("--- n=%d f=%g samples=%d keys=%s hasher=%s ---",
		cfg.Items, cfg.FPRate, cfg.Samples, cfg.Keys, cfg.Hasher))

	failed := false
	for _, v := range variants {
		log.Infof("measuring %s filter", v)
		res, err := Measure(v, cfg)
		if err != nil {
			red(err)
			return 2
		}
		log.Infof("%s", res)

		if res.Pass {
			green(fmt.Sprintf("PASS %s: %.3f%% false positives (target %.3f%% ±%.0f%%)",
				v, res.Measured*100, cfg.FPRate*100, cfg.Tolerance*100))
		} else {
			failed = true
			red(fmt.Sprintf("FAIL %s: %.3f%% false positives (target %.3f%% ±%.0f%%)",
				v, res.Measured*100, cfg.FPRate*100, cfg.Tolerance*100))
		}
	}

	if failed {
		return 1
	}
	return 0
}
