package perf

import (
	"os"
	"runtime/metrics"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

var (
	selfOnce sync.Once
	self     *process.Process
	selfErr  error
)

// processRSS reads the resident set size of the current process.
func processRSS() (uint64, error) {
	selfOnce.Do(func() {
		self, selfErr = process.NewProcess(int32(os.Getpid()))
	})
	if selfErr != nil {
		return 0, selfErr
	}
	mi, err := self.MemoryInfo()
	if err != nil {
		return 0, err
	}

	return mi.RSS, nil
}

const (
	metricLiveHeap = "/memory/classes/heap/objects:bytes"
	metricAllocs   = "/gc/heap/allocs:bytes"
)

// heapProbe samples runtime/metrics on a ticker until stopped.
type heapProbe struct {
	samples   []metrics.Sample
	baseLive  uint64
	baseAlloc uint64
	peak      uint64

	stop chan struct{}
	done chan struct{}
}

// startProbe records the baseline and starts sampling every interval.
func startProbe(interval time.Duration) *heapProbe {
	p := &heapProbe{
		samples: []metrics.Sample{{Name: metricLiveHeap}, {Name: metricAllocs}},
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	p.baseLive, p.baseAlloc = p.read()
	p.peak = p.baseLive

	go func() {
		defer close(p.done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-t.C:
				p.observe()
			}
		}
	}()

	return p
}

// read returns (live heap, cumulative allocs) in bytes.
func (p *heapProbe) read() (uint64, uint64) {
	metrics.Read(p.samples)

	return sampleUint(p.samples[0]), sampleUint(p.samples[1])
}

func (p *heapProbe) observe() uint64 {
	live, alloc := p.read()
	if live > p.peak {
		p.peak = live
	}

	return alloc
}

// finish stops the sampler and returns (peak above baseline, allocated) in MB.
func (p *heapProbe) finish() (float64, float64) {
	close(p.stop)
	<-p.done
	alloc := p.observe()

	var allocated uint64
	if alloc > p.baseAlloc {
		allocated = alloc - p.baseAlloc
	}

	return toMB(p.peak - p.baseLive), toMB(allocated)
}

func sampleUint(s metrics.Sample) uint64 {
	if s.Value.Kind() != metrics.KindUint64 {
		return 0
	}

	return s.Value.Uint64()
}

func toMB(b uint64) float64 { return float64(b) / bytesPerMB }
