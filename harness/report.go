package harness

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/cpuid/v2"
)

// hostInfo reads the CPU identification detected at start-up.
func hostInfo() Host {
	return Host{
		CPU:           strings.TrimSpace(cpuid.CPU.BrandName),
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
	}
}

// WriteTable renders the report as an aligned comparison table:
//
//	Range [0, 1,000,000] on <cpu> (8 cores, 16 threads)
//	SL  METHOD        PRIMES  TIME (S)
//	1   trial         78,498  0.912345
//	...
//	agreed: yes
func (r Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cpu := r.Host.CPU
	if cpu == "" {
		cpu = "unknown CPU"
	}
	if r.Empty {
		fmt.Fprintf(tw, "Range [%s, %s] holds no primes on %s\n",
			humanize.Comma(r.A), humanize.Comma(r.B), cpu)
	} else {
		fmt.Fprintf(tw, "Range [%s, %s] on %s (%d cores, %d threads)\n",
			humanize.Comma(r.Range.Lo), humanize.Comma(r.Range.Hi),
			cpu, r.Host.PhysicalCores, r.Host.LogicalCores)
	}

	fmt.Fprintln(tw, "SL\tMETHOD\tPRIMES\tTIME (S)\t")
	for i, res := range r.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%f\t\n",
			i+1, res.Algorithm, humanize.Comma(int64(res.Count)), res.Elapsed.Seconds())
	}

	agreed := "no"
	if r.Agreed {
		agreed = "yes"
	}
	fmt.Fprintf(tw, "agreed: %s\n", agreed)

	return tw.Flush()
}
