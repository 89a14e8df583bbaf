package internal

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestEcho(t *testing.T) {
	var buf bytes.Buffer
	orig := Output
	defer func() {
		Output = orig
	}()
	Output = &buf

	Echo("Encrypted -> %s", "out.png")
	Echo("already terminated\n")
	assert.Equal(t, "Encrypted -> out.png\nalready terminated\n", buf.String())
}

func TestEchoTo(t *testing.T) {
	var buf, other bytes.Buffer
	orig := Output
	defer func() {
		Output = orig
	}()
	Output = &other

	EchoTo(&buf, "Decrypted -> %s", "dec.png")
	assert.Equal(t, "Decrypted -> dec.png\n", buf.String())
	assert.Empty(t, other.String())
}

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetupLogging(&buf, true)
	log.Debug().Str("key", "value").Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "value")

	buf.Reset()
	DisableLogging()
	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}
