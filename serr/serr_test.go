package serr_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"ngramwc/serr"
)

func TestErrCode(t *testing.T) {
	err := serr.NewErr(serr.TErrConfig, "n 0")
	assert.True(t, serr.IsErrCode(err, serr.TErrConfig))
	assert.False(t, serr.IsErrCode(err, serr.TErrRead))
	assert.Equal(t, "bad configuration n 0", err.Error())
}

func TestWrapped(t *testing.T) {
	err := serr.NewErrErrorf(serr.TErrRead, "/tmp/x.txt", os.ErrNotExist)
	werr := fmt.Errorf("lane 3: %w", err)
	assert.True(t, serr.IsErrCode(werr, serr.TErrRead))
	assert.True(t, errors.Is(werr, os.ErrNotExist))
	assert.Equal(t, serr.TErrRead, serr.NewErrError(werr).Code())
	assert.Equal(t, serr.TErrError, serr.NewErrError(os.ErrClosed).Code())
	assert.False(t, serr.IsErrCode(os.ErrClosed, serr.TErrRead))
}
