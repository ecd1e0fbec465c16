package xlog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	assert.Equal(t, "error", Err(errors.New("boom")).Key)
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
	assert.Equal(t, "", Err(nil).Value.String())

	assert.Equal(t, "component", Component("guard").Key)
	assert.Equal(t, "host", Host("example.com").Key)
	assert.Equal(t, "url", URL("https://example.com").Key)
	assert.Equal(t, "scheme", Scheme("https").Key)
	assert.Equal(t, "reason", Reason("unsafe_reserved").Key)
	assert.Equal(t, "addr", Addr("127.0.0.1").Key)

	d := Duration(1500 * time.Millisecond)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, "1.5s", d.Value.String())
}
