package core

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCarriesCodeAndMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	err := Error(EMISSING, "symbol `%s` not found", "xyz")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "symbol `xyz` not found", UserMessage(err))
	assert.Contains(t, err.Error(), "symbol `xyz` not found")
}

func TestWrapErrorKeepsChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	cause := errors.New("boom")
	err := WrapError(cause, EINVALID, "while validating")
	assert.Equal(t, EINVALID, Code(err))
	assert.True(t, errors.Is(err, cause))
}

func TestCodeOfForeignAndNilErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
}
