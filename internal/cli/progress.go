// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const progressInterval = 10 * time.Second

type progress struct {
	evaluated uint64
	total     int
	start     time.Time
	ticker    *time.Ticker
	stop      chan struct{}
}

func newProgress(total int) *progress {
	return &progress{
		total:  total,
		start:  time.Now(),
		ticker: time.NewTicker(progressInterval),
		stop:   make(chan struct{}),
	}
}

// Begin reports the progress of the batch every 10 seconds.
func (p *progress) Begin() {
	go func() {
		for {
			select {
			case <-p.stop:
				return
			case <-p.ticker.C:
				done := atomic.LoadUint64(&p.evaluated)
				log.Info().Msgf("%.2f%% passwords evaluated. %.0f passwords/s", float64(done)*100/float64(p.total), p.rate())
			}
		}
	}()
}

func (p *progress) Evaluated() {
	atomic.AddUint64(&p.evaluated, 1)
}

func (p *progress) rate() float64 {
	elapsed := time.Since(p.start)
	done := float64(atomic.LoadUint64(&p.evaluated))
	if elapsed.Seconds() > 0 {
		return done / elapsed.Seconds()
	}
	return done
}

func (p *progress) Done() {
	p.ticker.Stop()
	close(p.stop)

	pr := message.NewPrinter(language.English)
	log.Debug().Msgf("evaluated %s passwords in %v. %.0f passwords/s",
		pr.Sprintf("%d", atomic.LoadUint64(&p.evaluated)), time.Since(p.start), p.rate())
}
