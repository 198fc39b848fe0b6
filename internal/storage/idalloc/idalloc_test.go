package idalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_EmptyCollection(t *testing.T) {
	assert.Equal(t, int64(1), Next(nil))
	assert.Equal(t, int64(1), Next([]int64{}))
}

func TestNext_Monotonic(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
		want int64
	}{
		{"single", []int64{1}, 2},
		{"sequential", []int64{1, 2, 3}, 4},
		{"with gaps", []int64{1, 5, 3}, 6},
		{"unordered", []int64{9, 2, 7}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.ids)
			assert.Equal(t, tt.want, got)
			for _, id := range tt.ids {
				assert.Greater(t, got, id)
			}
		})
	}
}
