package dbscan

import (
	"cmp"
	"log"
)

// contractChecker checks the caller contracts the engines rely on but do not
// enforce. It only reports the first violation of a run.
type contractChecker[T any, D cmp.Ordered] struct {
	data     []T
	distance func(a, b T) D
	reported bool
}

func newContractChecker[T any, D cmp.Ordered](data []T, distance func(a, b T) D) *contractChecker[T, D] {
	return &contractChecker[T, D]{data: data, distance: distance}
}

// checkPair verifies that d = distance(data[i], data[j]) is reproduced by a
// second evaluation and by the swapped evaluation.
func (c *contractChecker[T, D]) checkPair(i, j pos, d D) {
	if c.reported {
		return
	}
	if again := c.distance(c.data[i], c.data[j]); !sameDistance(again, d) {
		c.warnf("distance is not deterministic at positions %d and %d (%v, then %v)", i, j, d, again)
		return
	}
	if back := c.distance(c.data[j], c.data[i]); !sameDistance(back, d) {
		c.warnf("distance is not symmetric at positions %d and %d (%v vs %v)", i, j, d, back)
	}
}

// checkWindow compares a binary-searched window with a linear scan. A
// mismatch means the data is not sorted under the order the distance
// grows with.
func (c *contractChecker[T, D]) checkWindow(cfg *Config[D], i pos, w window) {
	if c.reported {
		return
	}
	for j := range c.data {
		inside := w.contains(pos(j))
		if cfg.within(c.distance(c.data[j], c.data[i])) != inside {
			c.warnf("window [%d, %d) of position %d disagrees with linear scan at position %d", w.lo, w.hi, i, j)
			return
		}
	}
}

func (c *contractChecker[T, D]) warnf(format string, args ...any) {
	c.reported = true
	log.Printf("dbscan: "+format, args...)
}

// sameDistance is == except that NaN matches NaN.
func sameDistance[D cmp.Ordered](a, b D) bool {
	return a == b || (a != a && b != b)
}
