package errutil

import (
	"errors"
	"os"
	"testing"

	. "github.com/ecalc/ecalc/pkg/tt"
)

var (
	err1 = errors.New("error 1")
	err2 = errors.New("error 2")
	err3 = errors.New("error 3")
)

func TestMulti(t *testing.T) {
	Test(t, Multi,
		Args().Rets(nil),
		Args(nil, nil).Rets(nil),
		Args(err1).Rets(err1),
		Args(nil, err1, nil).Rets(err1),
		Args(err1, err2).Rets(multiError{err1, err2}),
		It("flattens nested results").
			Args(Multi(err1, err2), err3).Rets(multiError{err1, err2, err3}),
	)
}

func TestMulti_Error(t *testing.T) {
	want := "multiple errors: error 1; error 2"
	if got := Multi(err1, err2).Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMulti_Unwrap(t *testing.T) {
	err := Multi(err1, os.ErrClosed)
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("errors.Is does not find a combined error")
	}
	if errors.Is(err, err2) {
		t.Errorf("errors.Is finds an error that was not combined")
	}
}
