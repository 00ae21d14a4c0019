package hal

import "tinygo.org/x/drivers/touch"

type touchSample struct {
	p    touch.Point
	down bool
}

// touchLatch hands touch samples from a sampler goroutine to the render loop.
// The sampler publishes whole samples over a one-slot channel, newest wins;
// Poll runs on a single reader and keeps the last sample it received.
type touchLatch struct {
	ch   chan touchSample
	last touchSample
}

func newTouchLatch() *touchLatch {
	return &touchLatch{ch: make(chan touchSample, 1)}
}

// publish never blocks. An unread older sample is replaced.
func (l *touchLatch) publish(p touch.Point, down bool) {
	s := touchSample{p: p, down: down}
	for {
		select {
		case l.ch <- s:
			return
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}

func (l *touchLatch) Poll() (touch.Point, bool) {
	select {
	case s := <-l.ch:
		l.last = s
	default:
	}
	return l.last.p, l.last.down
}
