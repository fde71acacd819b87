package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebcase/base79"
)

type options struct {
	count  int
	seed   int64
	strict bool
	quiet  bool
}

// Main returns the root command.
func Main() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "base79-random",
		Short: "Insert keys at random positions and report their lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.count < 0 {
				return fmt.Errorf("invalid count: %d", opts.count)
			}

			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}

			keys, err := generate(rand.New(rand.NewSource(opts.seed)), opts.count, opts.strict)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), keys, opts.quiet)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 10_000, "number of keys to insert")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (defaults to the current time)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "always insert a key strictly between its neighbours")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print the summary")

	return cmd
}

// generate performs count random insertions into a sequence that starts with
// the midpoint.
func generate(rng *rand.Rand, count int, strict bool) (keys []base79.Number, err error) {
	keys = make([]base79.Number, 1, count+1)
	keys[0] = base79.Mid()

	for i := 0; i < count; i++ {
		pos := rng.Intn(len(keys) + 1)

		var key base79.Number
		switch {
		case pos == 0 && strict:
			key, err = base79.BetweenZero(keys[0])
		case pos == 0:
			key = base79.AverageWithZero(keys[0])
		case pos == len(keys) && strict:
			key = base79.BetweenOne(keys[pos-1])
		case pos == len(keys):
			key = base79.AverageWithOne(keys[pos-1])
		case strict:
			key, err = base79.Between(keys[pos-1], keys[pos])
		default:
			key = base79.Average(keys[pos-1], keys[pos])
		}
		if err != nil {
			return nil, err
		}

		keys = append(keys, base79.Number{})
		copy(keys[pos+1:], keys[pos:])
		keys[pos] = key
	}

	return keys, nil
}

func report(w io.Writer, keys []base79.Number, quiet bool) (err error) {
	maxLen, total := 0, 0
	for _, k := range keys {
		if !quiet {
			_, err = fmt.Fprintln(w, k)
			if err != nil {
				return err
			}
		}

		if k.Len() > maxLen {
			maxLen = k.Len()
		}
		total += k.Len()
	}

	avg := float64(total) / float64(len(keys))

	_, err = fmt.Fprintf(w, "Max len: %d\nAvg len: %g\n", maxLen, avg)

	return err
}
