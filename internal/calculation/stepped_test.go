package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteppedValue(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		interval int
		total    int
		index    int
		expected string
	}{
		{"first level is current", "1000", "2000", 3, 9, 0, "1000"},
		{"still first level", "1000", "2000", 3, 9, 2, "1000"},
		{"second level", "1000", "2000", 3, 9, 3, "1500"},
		{"last level is target", "1000", "2000", 3, 9, 6, "2000"},
		{"beyond journey stays at target", "1000", "2000", 3, 9, 40, "2000"},
		{"partial final interval", "1000", "2000", 4, 10, 8, "2000"},
		{"single level journey", "5000", "7000", 12, 10, 0, "7000"},
		{"zero interval keeps current", "5000", "7000", 0, 24, 12, "5000"},
		{"zero journey keeps current", "5000", "7000", 6, 0, 3, "5000"},
		{"negative index clamps to current", "1000", "2000", 3, 9, -4, "1000"},
		{"flat schedule", "3000", "3000", 6, 24, 12, "3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SteppedValue(dec(tt.current), dec(tt.target), tt.interval, tt.total, tt.index)
			assertDecimal(t, dec(tt.expected), got)
		})
	}
}

func TestSteppedValueMonotonicAndReachesTarget(t *testing.T) {
	current, target := dec("4250"), dec("6100")
	for interval := 1; interval <= 13; interval++ {
		for total := 1; total <= 48; total++ {
			steps := (total + interval - 1) / interval
			prev := current
			for i := 0; i < total+interval; i++ {
				v := SteppedValue(current, target, interval, total, i)
				assert.False(t, v.LessThan(prev), "interval=%d total=%d i=%d decreased", interval, total, i)
				assert.False(t, v.GreaterThan(target), "interval=%d total=%d i=%d overshot", interval, total, i)
				if i >= (steps-1)*interval {
					assertDecimal(t, target, v, "interval=%d total=%d i=%d", interval, total, i)
				}
				prev = v
			}
		}
	}
}
