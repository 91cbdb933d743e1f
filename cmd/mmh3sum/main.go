// Command mmh3sum prints MurmurHash3 digests of files or stdin, in the
// mold of sha1sum. Inputs are hashed concurrently; output order follows
// the argument order.
//
// Usage:
//
//	mmh3sum [-a 32|128|128x64] [-seed N] [-big] [-z] [-v] [file ...]
//
// With no files, or with "-", stdin is hashed. With -z, inputs ending in
// .gz or .lz4 are decompressed before hashing.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/murmur3"
)

type config struct {
	algo       string
	seed       uint
	bigOut     bool
	decompress bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.algo, "a", "128x64", "hash variant: 32, 128 (x86 layout) or 128x64")
	flag.UintVar(&cfg.seed, "seed", 0, "32-bit seed")
	flag.BoolVar(&cfg.bigOut, "big", false, "print digests as decimal integers instead of hex")
	flag.BoolVar(&cfg.decompress, "z", false, "decompress .gz/.lz4 inputs before hashing")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.seed > 0xffffffff {
		logger.Error("seed out of 32-bit range", "seed", cfg.seed)
		os.Exit(2)
	}

	switch cfg.algo {
	case "32", "128", "128x64":
	default:
		logger.Error("unknown variant", "variant", cfg.algo)
		os.Exit(2)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	lines := make([]string, len(names))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			line, err := hashInput(cfg, name)
			if err != nil {
				logger.Error("hashing failed", "input", name, "error", err)
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("hashed input", "input", name)
			lines[i] = line
			return nil
		})
	}
	err := g.Wait()

	for _, line := range lines {
		if line != "" {
			fmt.Println(line)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// hashInput hashes one named input and returns its output line.
func hashInput(cfg config, name string) (string, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	if cfg.decompress {
		wrapped, err := wrapDecompressor(r, name)
		if err != nil {
			return "", err
		}
		r = wrapped
	}

	digest, err := hashReader(cfg, r)
	if err != nil {
		return "", err
	}
	return digest + "  " + name, nil
}

// wrapDecompressor wraps r based on the input's extension. Inputs without
// a recognized extension pass through unchanged.
func wrapDecompressor(r io.Reader, name string) (io.Reader, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case strings.HasSuffix(name, ".lz4"):
		return lz4.NewReader(r), nil
	default:
		return r, nil
	}
}

// hashReader streams r through the configured variant and formats the
// digest per the output flags.
func hashReader(cfg config, r io.Reader) (string, error) {
	seed := murmur3.WithSeed(uint32(cfg.seed))

	switch cfg.algo {
	case "32":
		h := murmur3.New32(seed)
		if _, err := io.Copy(h, r); err != nil {
			return "", err
		}
		if cfg.bigOut {
			return fmt.Sprintf("%d", h.Sum32()), nil
		}
		return fmt.Sprintf("%08x", h.Sum32()), nil
	case "128":
		h := murmur3.New128(seed)
		if _, err := io.Copy(h, r); err != nil {
			return "", err
		}
		return formatDigest(h.Sum128(), cfg.bigOut), nil
	default:
		h := murmur3.New128x64(seed)
		if _, err := io.Copy(h, r); err != nil {
			return "", err
		}
		return formatDigest(h.Sum128(), cfg.bigOut), nil
	}
}

func formatDigest(d murmur3.Digest128, bigOut bool) string {
	if bigOut {
		return d.BigInt().String()
	}
	return d.Hex()
}
