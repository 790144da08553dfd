package storage

import (
	"errors"
	"testing"
)

type failingBackend struct {
	err error
}

func (f *failingBackend) Load(Word) (Word, error) { return Word{}, f.err }
func (f *failingBackend) Store(Word, Word) error  { return f.err }

func TestRuntimeErrorWrapsAndUnwraps(t *testing.T) {
	inner := &OutOfGasError{Requested: 10, Remaining: 5}
	b := &failingBackend{err: inner}

	_, err := FullSlot(&Uint64, Word{}).Read(b)
	if err == nil {
		t.Fatal("expected an error")
	}
	var rt *RuntimeError
	if !errors.As(err, &rt) {
		t.Fatalf("expected RuntimeError, got %T", err)
	}
	var oog *OutOfGasError
	if !errors.As(err, &oog) {
		t.Fatalf("expected to unwrap to OutOfGasError, got %v", err)
	}
	if oog != inner {
		t.Fatal("unwrapped error is not the original instance")
	}
}

func TestOverflowErrorMessage(t *testing.T) {
	err := errOverflow(30, 4)
	if err.Error() == "" {
		t.Fatal("expected non-empty message")
	}
}
