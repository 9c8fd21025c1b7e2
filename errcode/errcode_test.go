package errcode

import (
	"errors"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	var err error = InvalidChannel
	if err.Error() != "invalid_channel" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, InvalidChannel) {
		t.Fatal("errors.Is must match the code itself")
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("Of(nil) must be OK")
	}
	if Of(InvalidParams) != InvalidParams {
		t.Fatal("Of must pass codes through")
	}
	if Of(errors.New("i2c: nack")) != Error {
		t.Fatal("foreign errors map to the generic fallback")
	}
}
