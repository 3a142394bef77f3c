package logger

import "testing"

func TestInit_InvalidLevel(t *testing.T) {
	if err := Init("loud", false); err == nil {
		t.Fatal("Expected an error for an unknown log level")
	}
}

func TestInit_SetsLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("debug", true); err != nil {
		t.Fatalf("Init should not return an error, but got: %v", err)
	}
	if Log == prev {
		t.Error("Expected Init to replace the package logger")
	}
}
