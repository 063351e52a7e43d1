package chatdump_test

import (
	"testing"

	"github.com/fwojciec/chatdump"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := chatdump.Errorf(chatdump.ENOTFOUND, "message container %q not found", "test")

	assert.Equal(t, chatdump.ENOTFOUND, chatdump.ErrorCode(err))
	assert.Equal(t, "message container \"test\" not found", chatdump.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, chatdump.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, chatdump.ErrorMessage(nil))
}
