package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "yamldirectory.load",
		Kind: KindInvalidConfig,
		Path: "data/employees.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(fmt.Errorf("outer: %w", err), &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{
		Op:   "query.parse",
		Kind: KindInvalidQuery,
		Err:  ErrInvalidQuery,
	}

	msg := err.Error()
	if !strings.Contains(msg, "query.parse") || !strings.Contains(msg, "invalid_query") {
		t.Fatalf("unexpected message %q", msg)
	}
	if strings.Contains(msg, "path=") {
		t.Fatalf("expected no path in message, got %q", msg)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &OpError{Op: "x", Kind: KindNotFound})

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match wrapped OpError")
	}
	if IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected IsKind false for plain errors")
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>")
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestOpErrorMatchesKindSentinel(t *testing.T) {
	err := fmt.Errorf("loading: %w", &OpError{
		Op:   "runstore.load",
		Kind: KindNotFound,
		Err:  errors.New("open .primer/runs/x.json: no such file"),
	})

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound to match by kind")
	}
	if errors.Is(err, ErrExecution) {
		t.Fatalf("expected other sentinels not to match")
	}

	var nilErr *OpError
	if nilErr.Is(ErrNotFound) {
		t.Fatalf("expected nil OpError to match nothing")
	}
}
