package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLoggerLevel(t *testing.T) {
	defer func(level string) { flagLogLevel = level }(flagLogLevel)

	flagLogLevel = "loud"
	if _, _, err := openLogger(nil); err == nil {
		t.Error("openLogger() should reject an unknown level")
	}
}

func TestOpenLoggerFile(t *testing.T) {
	defer func(file, level string) { flagLogFile, flagLogLevel = file, level }(flagLogFile, flagLogLevel)

	flagLogFile = filepath.Join(t.TempDir(), "game.log")
	flagLogLevel = "debug"

	logger, closeLog, err := openLogger(nil)
	if err != nil {
		t.Fatalf("openLogger() error: %v", err)
	}
	logger.Debug("year advanced", "year", 1961)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "year advanced") {
		t.Errorf("log file = %q", data)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"play", "list", "menu", "serve", "frames", "config"} {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunFramesBuiltin(t *testing.T) {
	if err := runFrames(nil, nil); err != nil {
		t.Errorf("runFrames() on built-in art: %v", err)
	}
	if err := runFrames(nil, []string{t.TempDir()}); err == nil {
		t.Error("runFrames() on an empty directory should fail")
	}
}
