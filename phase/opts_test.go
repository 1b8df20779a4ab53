package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigRejectsLowPloidy(t *testing.T) {
	cfg := DefaultConfig
	cfg.Ploidy = 1
	_, err := NewConfig(cfg)
	assert.Error(t, err)
}

func TestNewConfigRejectsOutOfRangeEpsilon(t *testing.T) {
	cfg := DefaultConfig
	cfg.Epsilon = 1.5
	_, err := NewConfig(cfg)
	assert.Error(t, err)

	cfg.Epsilon = 0
	_, err = NewConfig(cfg)
	assert.Error(t, err)
}

func TestNewConfigRejectsNonPositiveDivFactor(t *testing.T) {
	cfg := DefaultConfig
	cfg.DivFactor = 0
	_, err := NewConfig(cfg)
	assert.Error(t, err)
}

func TestNewConfigRejectsNegativeMaxIters(t *testing.T) {
	cfg := DefaultConfig
	cfg.MaxIters = -1
	_, err := NewConfig(cfg)
	assert.Error(t, err)
}

func TestNewConfigAcceptsDefault(t *testing.T) {
	cfg, err := NewConfig(DefaultConfig)
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)
}
