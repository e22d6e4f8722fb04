package game

import "time"

// TickerClock paces the loop at a fixed rate. Missed ticks are dropped, not
// caught up.
type TickerClock struct {
	ticker *time.Ticker
}

func NewTickerClock(ticksPerSecond int) *TickerClock {
	return &TickerClock{
		ticker: time.NewTicker(time.Second / time.Duration(ticksPerSecond)),
	}
}

func (c *TickerClock) Wait() {
	<-c.ticker.C
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// NoClock never blocks. Used when something else paces the frames.
type NoClock struct{}

func (NoClock) Wait() {}
