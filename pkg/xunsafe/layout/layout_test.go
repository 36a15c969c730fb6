package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FarazRemi/heap-allocator/pkg/xunsafe/layout"
)

func TestSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, layout.Size[byte]())
	assert.Equal(t, 4, layout.Size[int32]())
	assert.Equal(t, 8, layout.Size[int64]())

	type pair struct {
		A int64
		B int64
	}
	assert.Equal(t, 16, layout.Size[pair]())
}
