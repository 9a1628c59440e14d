package cmd

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

func newProgressBar(total int) (*mpb.Progress, *mpb.Bar) {
	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Simulating"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)
	return p, bar
}

// startCPUMonitor prints overall CPU usage every five seconds until the
// returned stop function is called.
func startCPUMonitor() func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				percentage, err := cpu.Percent(time.Second, false)
				if err == nil && len(percentage) > 0 {
					fmt.Printf("\nCPU Usage: %.2f%%\n", percentage[0])
				}
			}
		}
	}()
	return func() { close(done) }
}
