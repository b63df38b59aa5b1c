package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

func testDestinations() []entities.Destination {
	return []entities.Destination{
		{Key: "london", DisplayName: "London", Price: "$799"},
		{Key: "paris", DisplayName: "Paris", Price: "$899"},
		{Key: "hochiminh", DisplayName: "Ho Chi Minh City", Price: "$1500"},
	}
}

func collectAliases(c *Catalog) []entities.AliasEntry {
	var out []entities.AliasEntry
	for alias, key := range c.Aliases() {
		out = append(out, entities.AliasEntry{Alias: alias, Key: key})
	}
	return out
}

func TestBuild(t *testing.T) {
	c, err := Build(testDestinations(), []entities.AliasEntry{
		{Alias: "HCMC", Key: "hochiminh"},
		{Alias: "  Londres ", Key: "london"},
		{Alias: "saigon", Key: "hochiminh"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 6, c.AliasCount())

	expected := []entities.AliasEntry{
		{Alias: "london", Key: "london"},
		{Alias: "londres", Key: "london"},
		{Alias: "paris", Key: "paris"},
		{Alias: "hochiminh", Key: "hochiminh"},
		{Alias: "hcmc", Key: "hochiminh"},
		{Alias: "saigon", Key: "hochiminh"},
	}
	assert.Equal(t, expected, collectAliases(c))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name         string
		destinations []entities.Destination
		aliases      []entities.AliasEntry
		check        func(t *testing.T, err error)
	}{
		{
			name: "duplicate key",
			destinations: []entities.Destination{
				{Key: "paris"},
				{Key: "paris"},
			},
			check: func(t *testing.T, err error) {
				var dupErr *DuplicateKeyError
				require.True(t, errors.As(err, &dupErr))
				assert.Equal(t, "paris", dupErr.Key)
			},
		},
		{
			name:         "alias registered for two keys",
			destinations: testDestinations(),
			aliases: []entities.AliasEntry{
				{Alias: "capital", Key: "london"},
				{Alias: "Capital", Key: "paris"},
			},
			check: func(t *testing.T, err error) {
				var dupErr *DuplicateAliasError
				require.True(t, errors.As(err, &dupErr))
				assert.Equal(t, "capital", dupErr.Alias)
				assert.Equal(t, "london", dupErr.ExistingKey)
				assert.Equal(t, "paris", dupErr.Key)
			},
		},
		{
			name:         "alias collides with another key",
			destinations: testDestinations(),
			aliases: []entities.AliasEntry{
				{Alias: "paris", Key: "london"},
			},
			check: func(t *testing.T, err error) {
				var dupErr *DuplicateAliasError
				require.True(t, errors.As(err, &dupErr))
				assert.Equal(t, "paris", dupErr.ExistingKey)
			},
		},
		{
			name:         "alias for unknown key",
			destinations: testDestinations(),
			aliases: []entities.AliasEntry{
				{Alias: "tokio", Key: "tokyo"},
			},
			check: func(t *testing.T, err error) {
				var unknownErr *UnknownKeyError
				require.True(t, errors.As(err, &unknownErr))
				assert.Equal(t, "tokyo", unknownErr.Key)
			},
		},
		{
			name:         "empty key",
			destinations: []entities.Destination{{Key: ""}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidDestination)
			},
		},
		{
			name:         "key not normalized",
			destinations: []entities.Destination{{Key: "Paris"}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidDestination)
			},
		},
		{
			name:         "alias empty after normalization",
			destinations: testDestinations(),
			aliases: []entities.AliasEntry{
				{Alias: "   ", Key: "paris"},
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidDestination)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Build(tt.destinations, tt.aliases)
			require.Error(t, err)
			assert.Nil(t, c)
			tt.check(t, err)
		})
	}
}

func TestBuild_SameAliasSameKeyIsNoop(t *testing.T) {
	c, err := Build(testDestinations(), []entities.AliasEntry{
		{Alias: "ho chi minh", Key: "hochiminh"},
		{Alias: "Ho Chi Minh City", Key: "hochiminh"},
		{Alias: "paris", Key: "paris"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, c.AliasCount())
}

func TestCatalog_LookupExact(t *testing.T) {
	c, err := Build(testDestinations(), []entities.AliasEntry{{Alias: "hcmc", Key: "hochiminh"}})
	require.NoError(t, err)

	key, ok := c.LookupExact("hcmc")
	assert.True(t, ok)
	assert.Equal(t, "hochiminh", key)

	key, ok = c.LookupExact("paris")
	assert.True(t, ok)
	assert.Equal(t, "paris", key)

	_, ok = c.LookupExact("HCMC")
	assert.False(t, ok, "lookup expects normalized input")

	_, ok = c.LookupExact("atlantis")
	assert.False(t, ok)
}

func TestCatalog_AliasesRestartable(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	first := collectAliases(c)
	second := collectAliases(c)
	assert.Equal(t, first, second)
	assert.Len(t, first, c.AliasCount())
}

func TestCatalog_AliasesEarlyStop(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	count := 0
	for range c.Aliases() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestCatalog_Entity(t *testing.T) {
	c, err := Build(testDestinations(), nil)
	require.NoError(t, err)

	d, err := c.Entity("paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", d.DisplayName)
	assert.Equal(t, "$899", d.Price)

	_, err = c.Entity("atlantis")
	var unknownErr *UnknownKeyError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "atlantis", unknownErr.Key)
}

func TestCatalog_DestinationsIsCopy(t *testing.T) {
	c, err := Build(testDestinations(), nil)
	require.NoError(t, err)

	dests := c.Destinations()
	require.Len(t, dests, 3)
	dests[0].Price = "$1"

	d, err := c.Entity("london")
	require.NoError(t, err)
	assert.Equal(t, "$799", d.Price)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, len(entities.DefaultDestinations), c.Len())
	for _, d := range entities.DefaultDestinations {
		key, ok := c.LookupExact(d.Key)
		assert.True(t, ok)
		assert.Equal(t, d.Key, key)
	}
}
