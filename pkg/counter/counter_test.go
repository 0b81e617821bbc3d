package counter_test

import (
	"github.com/brickingsoft/void/pkg/counter"
	"golang.org/x/sync/errgroup"
	"testing"
)

func TestCounter(t *testing.T) {
	c := counter.New()
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				c.Incr()
			}
			return nil
		})
	}
	_ = g.Wait()
	if v := c.Value(); v != 400 {
		t.Fatal("want 400, got", v)
	}
	if v := c.Decr(); v != 399 {
		t.Error("want 399, got", v)
	}
	if v := c.Reset(); v != 399 {
		t.Error("reset want 399, got", v)
	}
	if v := c.Value(); v != 0 {
		t.Error("want 0 after reset, got", v)
	}
}
