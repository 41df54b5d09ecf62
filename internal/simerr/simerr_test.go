package simerr

import (
	"errors"
	"testing"
)

func TestKindMatchingViaErrorsIs(t *testing.T) {
	err := Configurationf("tick rate %d out of range", 200)
	if !errors.Is(err, InvalidConfiguration) {
		t.Fatalf("expected InvalidConfiguration match, got %v", err)
	}
	if errors.Is(err, Unrecoverable) {
		t.Fatalf("did not expect Unrecoverable match")
	}
}

func TestCallbackWrapsTick(t *testing.T) {
	cause := errors.New("boom")
	err := Callback(42, cause)
	if !errors.Is(err, CallbackFailure) {
		t.Fatalf("expected CallbackFailure match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
}
