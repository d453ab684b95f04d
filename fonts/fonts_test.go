package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	assert.NotNil(t, Hint.Get())
	assert.NotNil(t, Console.Get())
}

func TestLoadFontWithSizeSkipsBadData(t *testing.T) {
	const broken FontName = "broken"
	LoadFontWithSize(broken, []byte("not a font"), 10)
	assert.Panics(t, func() { broken.Get() })
}
