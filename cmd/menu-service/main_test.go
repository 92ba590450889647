package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	setupLogger("debug")
	require.Equal(t, log.DebugLevel, log.GetLevel())

	setupLogger("warn")
	require.Equal(t, log.WarnLevel, log.GetLevel())

	setupLogger("not-a-level")
	require.Equal(t, log.InfoLevel, log.GetLevel())

	_, ok := log.StandardLogger().Formatter.(*log.TextFormatter)
	require.True(t, ok)
}
