package bench

// report.go contains the human readable output of the benchmarks.

import (
	"fmt"
	"io"
	"time"

	"github.com/perfgo/layoutbench/cloud"
	"github.com/perfgo/layoutbench/kernel"
)

// Reporter writes progress and result lines to an io.Writer.
type Reporter struct {
	out io.Writer
	// Progress enables the transient per-trial line of the sweep.
	Progress bool
}

// NewReporter returns a Reporter writing to out with progress lines enabled.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, Progress: true}
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// TrialProgress prints the per-trial line ended by a carriage return so the
// next one overwrites it.
func (r *Reporter) TrialProgress(s kernel.Sample) error {
	if !r.Progress {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "%.5f ms [%.5f, %.5f, %.5f]\r",
		milliseconds(s.Elapsed), s.Result.X, s.Result.Y, s.Result.Z)
	return err
}

// TrialDetail prints one complete line per trial for the single-size mode.
func (r *Reporter) TrialDetail(layout cloud.Layout, n int, s kernel.Sample) error {
	_, err := fmt.Fprintf(r.out, "%s: [%.5f, %.5f, %.5f] %.5f ms, %.5f MItems/s\n",
		layout, s.Result.X, s.Result.Y, s.Result.Z,
		milliseconds(s.Elapsed), Throughput(n, s.Elapsed)/1e6)
	return err
}

// Summary prints the final line of a configuration:
//
//	<N>, <layout_name>, <median_ms> ms, <throughput> MItems/s
func (r *Reporter) Summary(s Summary) error {
	_, err := fmt.Fprintf(r.out, "%d, %s, %.5f ms, %.5f MItems/s\n",
		s.Size, s.Layout, milliseconds(s.Median), s.MItemsPerSecond())
	return err
}
