package job

import (
	"context"
	"errors"
	"testing"
)

func TestJobFunc_Run(t *testing.T) {
	t.Parallel()
	ran := false
	j := New(func(context.Context) error { ran = true; return nil })
	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ran {
		t.Fatal("closure did not run")
	}
}

func TestJobFunc_Nil(t *testing.T) {
	t.Parallel()
	var j jobFunc
	if err := j.Run(context.Background()); !errors.Is(err, ErrNilJobFunc) {
		t.Fatalf("expected ErrNilJobFunc, got %v", err)
	}
}
