// Command ladderstats generates random ladder boards and reports how many rungs
// they carry and how often every participant lands on a distinct line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"

	"github.com/ArowuTest/teamdesk-backend/internal/config"
	"github.com/ArowuTest/teamdesk-backend/internal/ladder"
	"github.com/ArowuTest/teamdesk-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

type options struct {
	participants int
	runs         int
	seed         int64
	workers      int
	json         bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		slog.Error("ladderstats failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "ladderstats",
		Short: "Simulate ladder boards and report rung and bijection statistics",
		Long: `ladderstats generates many boards with the configured generator settings
(config.yaml, .env or LADDER_* environment variables), traces every line and
summarizes rung counts, crossings and how often the result is a permutation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.runs < 1 {
				return fmt.Errorf("runs must be positive, got %d", opts.runs)
			}
			boardOpts, err := loadBoardOptions()
			if err != nil {
				return err
			}
			rep, err := simulate(seedSource(opts.seed), opts.participants, opts.runs, opts.workers, boardOpts...)
			if err != nil {
				return err
			}
			if opts.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep.summary())
			}
			printReport(out, rep)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().IntVar(&opts.participants, "participants", 6, "Number of participants (vertical lines)")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one at random")
	rootCmd.Flags().IntVar(&opts.runs, "runs", 1000, "Number of boards to generate")
	rootCmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "Parallel simulation workers")
	rootCmd.Flags().BoolVar(&opts.json, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(boardCmd(out, opts))
	return rootCmd
}

// boardCmd prints a single generated board and where every line ends up
func boardCmd(out io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Generate one board and trace every participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			boardOpts, err := loadBoardOptions()
			if err != nil {
				return err
			}
			b, err := ladder.GenerateBoard(seedSource(opts.seed), opts.participants, boardOpts...)
			if err != nil {
				return err
			}
			printBoard(out, b)
			return nil
		},
	}
}

func loadBoardOptions() ([]ladder.Option, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return cfg.Ladder.BoardOptions(), nil
}

func seedSource(seed int64) *rand.Rand {
	if seed == 0 {
		return utils.NewSeededRand()
	}
	return rand.New(rand.NewSource(seed))
}

type report struct {
	Participants int
	Runs         int
	Rungs        utils.CountSummary
	Crossings    utils.CountSummary
	Bijective    int
}

func (r *report) merge(o report) {
	r.Rungs.Merge(o.Rungs)
	r.Crossings.Merge(o.Crossings)
	r.Bijective += o.Bijective
}

type reportSummary struct {
	Participants  int     `json:"participants"`
	Boards        int     `json:"boards"`
	RungsMean     float64 `json:"rungsMean"`
	RungsMin      int     `json:"rungsMin"`
	RungsMax      int     `json:"rungsMax"`
	CrossingsMean float64 `json:"crossingsMean"`
	BijectiveRate float64 `json:"bijectiveRate"`
}

func (r report) summary() reportSummary {
	return reportSummary{
		Participants:  r.Participants,
		Boards:        r.Runs,
		RungsMean:     r.Rungs.Mean(),
		RungsMin:      r.Rungs.Min,
		RungsMax:      r.Rungs.Max,
		CrossingsMean: r.Crossings.Mean(),
		BijectiveRate: utils.Rate(r.Bijective, r.Runs),
	}
}

// simulate draws one seed per board up front so the totals do not depend on the
// number of workers.
func simulate(rng *rand.Rand, participants, runs, workers int, opts ...ladder.Option) (report, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > runs {
		workers = runs
	}
	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	partial := make([]report, workers)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			for i := w; i < runs; i += workers {
				if err := simulateOne(&partial[w], seeds[i], participants, opts); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return report{}, err
	}

	rep := report{Participants: participants, Runs: runs}
	for _, p := range partial {
		rep.merge(p)
	}
	return rep, nil
}

func simulateOne(rep *report, seed int64, participants int, opts []ladder.Option) error {
	b, err := ladder.GenerateBoard(rand.New(rand.NewSource(seed)), participants, opts...)
	if err != nil {
		return err
	}
	rep.Rungs.Add(b.RungCount())

	finals := make([]int, participants)
	for start := 0; start < participants; start++ {
		p, err := ladder.TracePath(b, start)
		if err != nil {
			return err
		}
		finals[start] = p.FinalLine()
		rep.Crossings.Add(p.Crossings())
	}
	if ladder.IsPermutation(finals) {
		rep.Bijective++
	}
	return nil
}

func printReport(w io.Writer, rep report) {
	s := rep.summary()
	fmt.Fprintf(w, "%s %d\n", bold("participants:   "), s.Participants)
	fmt.Fprintf(w, "%s %d\n", bold("boards:         "), s.Boards)
	fmt.Fprintf(w, "%s %.2f %s\n", bold("rungs mean:     "), s.RungsMean, dim(fmt.Sprintf("(max possible %d)", s.Participants*ladder.DefaultRungsPerLine)))
	fmt.Fprintf(w, "%s %d/%d\n", bold("rungs min/max:  "), s.RungsMin, s.RungsMax)
	fmt.Fprintf(w, "%s %.2f per path\n", bold("crossings mean: "), s.CrossingsMean)
	rate := fmt.Sprintf("%.2f%%", 100*s.BijectiveRate)
	if rep.Bijective == rep.Runs {
		rate = green(rate)
	} else {
		rate = red(rate)
	}
	fmt.Fprintf(w, "%s %s\n", bold("bijective:      "), rate)
}

func printBoard(w io.Writer, b ladder.Board) {
	fmt.Fprintf(w, "%s %d lines, %d rungs\n", bold("board:"), b.Lines(), b.RungCount())
	for _, r := range b.Rungs() {
		fmt.Fprintf(w, "  %d-%d at %6.2f\n", r.FromLine, r.ToLine, r.Height)
	}
	for start := 0; start < b.Lines(); start++ {
		p, err := ladder.TracePath(b, start)
		if err != nil {
			fmt.Fprintf(w, "  line %d: %s\n", start, red(err.Error()))
			continue
		}
		fmt.Fprintf(w, "  line %d -> %d %s\n", start, p.FinalLine(), dim(fmt.Sprintf("(%d crossings)", p.Crossings())))
	}
}
