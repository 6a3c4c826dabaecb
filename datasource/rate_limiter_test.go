package datasource

import (
	"context"
	"sync"
	"testing"
	"time"

	"weather-card/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider counts calls and returns a fixed reading
type countingProvider struct {
	mu    sync.Mutex
	calls int
}

func (c *countingProvider) GetWeather(ctx context.Context, city string) (models.CurrentWeather, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return models.CurrentWeather{Name: city, Main: &models.MainReadings{Temp: 10}}, nil
}

func (c *countingProvider) Name() string { return "Counting" }

func TestRateLimitedProvider_Name(t *testing.T) {
	p := NewRateLimitedProvider(&countingProvider{}, 1, 1)
	assert.Equal(t, "Counting [Rate Limited]", p.Name())
}

func TestRateLimitedProvider_BurstThenWait(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, 0.001, 2)

	for i := 0; i < 2; i++ {
		data, err := p.GetWeather(context.Background(), "Quito")
		require.NoError(t, err)
		assert.Equal(t, "Quito", data.Name)
	}

	// Bucket is empty and refills far slower than the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.GetWeather(ctx, "Quito")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait canceled")
	assert.Equal(t, 2, inner.calls)
}
