package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "[..........]", renderBar(0, 10))
	assert.Equal(t, "[#####.....]", renderBar(0.5, 10))
	assert.Equal(t, "[##########]", renderBar(1, 10))
	assert.Equal(t, "[..........]", renderBar(-0.2, 10))
	assert.Equal(t, "[##########]", renderBar(1.7, 10))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:05", formatElapsed(5*time.Second))
	assert.Equal(t, "1:00", formatElapsed(60*time.Second))
	assert.Equal(t, "12:34", formatElapsed(754*time.Second))
}
