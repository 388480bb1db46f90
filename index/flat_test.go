package index

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func url(slug string) string {
	return "https://www.linkedin.com/in/" + slug
}

func TestFlatBuild(t *testing.T) {
	t.Run("build and query", func(t *testing.T) {
		idx := NewFlat()
		err := idx.Build([]Entry{
			{LinkedInURL: url("a"), Vector: []float32{1, 0}},
			{LinkedInURL: url("b"), Vector: []float32{0, 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, idx.Len())

		matches, err := idx.Query([]float32{1, 0}, 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, url("a"), matches[0].LinkedInURL)
		assert.InDelta(t, 1.0, matches[0].Similarity, 1e-6)
		assert.Equal(t, url("b"), matches[1].LinkedInURL)
	})

	t.Run("empty identity rejected", func(t *testing.T) {
		idx := NewFlat()
		err := idx.Build([]Entry{{LinkedInURL: "", Vector: []float32{1}}})
		assert.ErrorIs(t, err, ErrEmptyIdentity)
	})

	t.Run("empty vector rejected", func(t *testing.T) {
		idx := NewFlat()
		err := idx.Build([]Entry{{LinkedInURL: url("a"), Vector: nil}})
		assert.ErrorIs(t, err, ErrEmptyVector)
	})

	t.Run("mixed dimensions rejected", func(t *testing.T) {
		idx := NewFlat()
		err := idx.Build([]Entry{
			{LinkedInURL: url("a"), Vector: []float32{1, 0}},
			{LinkedInURL: url("b"), Vector: []float32{1, 0, 0}},
		})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("failed build keeps previous snapshot", func(t *testing.T) {
		idx := NewFlat()
		require.NoError(t, idx.Build([]Entry{
			{LinkedInURL: url("a"), Vector: []float32{1, 0}},
		}))
		version := idx.Version()

		err := idx.Build([]Entry{{LinkedInURL: "", Vector: []float32{1, 0}}})
		require.Error(t, err)

		assert.Equal(t, 1, idx.Len())
		assert.Equal(t, version, idx.Version())
		matches, err := idx.Query([]float32{1, 0}, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, url("a"), matches[0].LinkedInURL)
	})

	t.Run("rebuild replaces everything", func(t *testing.T) {
		idx := NewFlat()
		require.NoError(t, idx.Build([]Entry{
			{LinkedInURL: url("a"), Vector: []float32{1, 0}},
		}))
		require.NoError(t, idx.Build([]Entry{
			{LinkedInURL: url("b"), Vector: []float32{0, 1}},
		}))

		matches, err := idx.Query([]float32{1, 0}, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, url("b"), matches[0].LinkedInURL)
	})
}

func TestFlatQuery(t *testing.T) {
	idx := NewFlat()
	require.NoError(t, idx.Build([]Entry{
		{LinkedInURL: url("north"), Vector: []float32{0, 1}},
		{LinkedInURL: url("east"), Vector: []float32{1, 0}},
		{LinkedInURL: url("northeast"), Vector: []float32{1, 1}},
	}))

	t.Run("ranked by descending similarity", func(t *testing.T) {
		matches, err := idx.Query([]float32{1, 0}, 3)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, url("east"), matches[0].LinkedInURL)
		assert.Equal(t, url("northeast"), matches[1].LinkedInURL)
		assert.Equal(t, url("north"), matches[2].LinkedInURL)
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i].Similarity, matches[i-1].Similarity)
		}
	})

	t.Run("k truncates", func(t *testing.T) {
		matches, err := idx.Query([]float32{1, 0}, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, url("east"), matches[0].LinkedInURL)
	})

	t.Run("k larger than corpus", func(t *testing.T) {
		matches, err := idx.Query([]float32{1, 0}, 100)
		require.NoError(t, err)
		assert.Len(t, matches, 3)
	})

	t.Run("k zero or negative", func(t *testing.T) {
		matches, err := idx.Query([]float32{1, 0}, 0)
		require.NoError(t, err)
		assert.Nil(t, matches)

		matches, err = idx.Query([]float32{1, 0}, -1)
		require.NoError(t, err)
		assert.Nil(t, matches)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := idx.Query([]float32{1, 0, 0}, 3)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("empty index returns nothing", func(t *testing.T) {
		empty := NewFlat()
		matches, err := empty.Query([]float32{1, 0}, 3)
		require.NoError(t, err)
		assert.Nil(t, matches)
	})

	t.Run("ties broken by ascending identity", func(t *testing.T) {
		tied := NewFlat()
		require.NoError(t, tied.Build([]Entry{
			{LinkedInURL: url("charlie"), Vector: []float32{1, 0}},
			{LinkedInURL: url("alpha"), Vector: []float32{1, 0}},
			{LinkedInURL: url("bravo"), Vector: []float32{1, 0}},
		}))

		matches, err := tied.Query([]float32{1, 0}, 3)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, url("alpha"), matches[0].LinkedInURL)
		assert.Equal(t, url("bravo"), matches[1].LinkedInURL)
		assert.Equal(t, url("charlie"), matches[2].LinkedInURL)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first, err := idx.Query([]float32{3, 4}, 3)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := idx.Query([]float32{3, 4}, 3)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}

func TestFlatUpsertOne(t *testing.T) {
	t.Run("insert into empty index", func(t *testing.T) {
		idx := NewFlat()
		require.NoError(t, idx.UpsertOne(url("a"), []float32{1, 0}))
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("replace existing vector", func(t *testing.T) {
		idx := NewFlat()
		require.NoError(t, idx.UpsertOne(url("a"), []float32{1, 0}))
		require.NoError(t, idx.UpsertOne(url("a"), []float32{0, 1}))
		assert.Equal(t, 1, idx.Len())

		matches, err := idx.Query([]float32{0, 1}, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.InDelta(t, 1.0, matches[0].Similarity, 1e-6)
	})

	t.Run("dimension must match index", func(t *testing.T) {
		idx := NewFlat()
		require.NoError(t, idx.UpsertOne(url("a"), []float32{1, 0}))
		err := idx.UpsertOne(url("b"), []float32{1, 0, 0})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("version increments", func(t *testing.T) {
		idx := NewFlat()
		v0 := idx.Version()
		require.NoError(t, idx.UpsertOne(url("a"), []float32{1, 0}))
		assert.Equal(t, v0+1, idx.Version())
	})
}

func TestFlatRemove(t *testing.T) {
	idx := NewFlat()
	require.NoError(t, idx.Build([]Entry{
		{LinkedInURL: url("a"), Vector: []float32{1, 0}},
		{LinkedInURL: url("b"), Vector: []float32{0, 1}},
	}))

	t.Run("removes existing", func(t *testing.T) {
		idx.Remove(url("a"))
		assert.Equal(t, 1, idx.Len())

		matches, err := idx.Query([]float32{1, 0}, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, url("b"), matches[0].LinkedInURL)
	})

	t.Run("unknown identity is a no-op", func(t *testing.T) {
		before := idx.Len()
		idx.Remove(url("ghost"))
		assert.Equal(t, before, idx.Len())
	})
}

func TestFlatConcurrentAccess(t *testing.T) {
	idx := NewFlat()
	require.NoError(t, idx.Build([]Entry{
		{LinkedInURL: url("seed"), Vector: []float32{1, 0, 0}},
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = idx.UpsertOne(url(fmt.Sprintf("writer-%d-%d", n, j)), []float32{1, 0, 0})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				matches, err := idx.Query([]float32{0, 1, 0}, 5)
				assert.NoError(t, err)
				// a reader must always see a coherent snapshot
				for k := 1; k < len(matches); k++ {
					assert.LessOrEqual(t, matches[k].Similarity, matches[k-1].Similarity)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1+8*50, idx.Len())
}
