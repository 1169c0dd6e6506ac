package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmaze/unionfind"
)

func TestSingletons(t *testing.T) {
	u := unionfind.New(4)
	assert.Equal(t, 4, u.Len())
	assert.Equal(t, 4, u.Sets())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, u.Find(i))
	}
	assert.False(t, u.Connected(0, 1))
}

func TestUnion(t *testing.T) {
	u := unionfind.New(5)
	assert.True(t, u.Union(0, 1))
	assert.True(t, u.Union(2, 3))
	assert.False(t, u.Union(1, 0), "already merged")
	assert.Equal(t, 3, u.Sets())

	assert.True(t, u.Union(1, 3))
	assert.True(t, u.Connected(0, 2))
	assert.False(t, u.Connected(0, 4))
	assert.Equal(t, 2, u.Sets())
	// second argument's root hangs under the first's
	assert.Equal(t, u.Find(0), u.Find(3))
}

// TestPathCompression builds a long chain and checks that one Find flattens it.
func TestPathCompression(t *testing.T) {
	const n = 64
	u := unionfind.New(n)
	for i := n - 1; i > 0; i-- {
		u.Union(i-1, i)
	}
	root := u.Find(n - 1)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, u.Find(i))
	}
	assert.Equal(t, 1, u.Sets())
}

// TestRandomUnions merges random pairs until a single set remains; exactly
// n-1 unions must succeed.
func TestRandomUnions(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	u := unionfind.New(n)
	merged := 0
	for u.Sets() > 1 {
		if u.Union(r.Intn(n), r.Intn(n)) {
			merged++
		}
	}
	assert.Equal(t, n-1, merged)
}
