package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("debug", &buf))
	defer Setup(DefaultLevel, nil)

	log.WithFields(log.Fields{"figure": "fission"}).Debug("built")
	assert.Contains(t, buf.String(), "figure=fission")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestSetupDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("", &buf))
	defer Setup(DefaultLevel, nil)

	assert.Equal(t, log.WarnLevel, log.GetLevel())
	log.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestSetupBadLevel(t *testing.T) {
	assert.Error(t, Setup("loud", nil))
}
