package systems

import "time"

// TickClock hands out the length of each fixed-rate tick. Lengths vary by a
// nanosecond so that every tickRate ticks add up to exactly one second.
type TickClock struct {
	tickRate int
	ticks    int
}

func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{tickRate: tickRate}
}

// Next returns the duration of the next tick.
func (c *TickClock) Next() time.Duration {
	prev := c.elapsed(c.ticks)
	c.ticks++
	dt := c.elapsed(c.ticks) - prev
	if c.ticks == c.tickRate {
		c.ticks = 0
	}
	return dt
}

func (c *TickClock) elapsed(n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(c.tickRate)
}
