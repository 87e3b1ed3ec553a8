package bbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateThreadsRejectsOutOfBounds(t *testing.T) {
	_, err := ValidateThreads(0, defaultShardCount)
	assert.Error(t, err)

	_, err = ValidateThreads(MaxThreads+1, defaultShardCount)
	assert.Error(t, err)
}

func TestValidateThreadsAcceptsInRangeWithoutWarnings(t *testing.T) {
	warnings, err := ValidateThreads(4, defaultShardCount)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateThreadsWarnsWhenExceedingAccumulators(t *testing.T) {
	warnings, err := ValidateThreads(20, 4)
	assert.NoError(t, err)
	assert.NotEmpty(t, warnings)
}

func TestRecommendThreadsWithinBounds(t *testing.T) {
	n := RecommendThreads()
	assert.GreaterOrEqual(t, n, MinThreads)
	assert.LessOrEqual(t, n, MaxThreads)
}
