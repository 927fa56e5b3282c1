package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 1))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}

func TestNormalizeInstanceDomain(t *testing.T) {
	var res string
	var err error

	res, err = NormalizeInstanceDomain("mastodon.social")
	assert.Nil(t, err)
	assert.Equal(t, "mastodon.social", res)

	res, err = NormalizeInstanceDomain("https://Mastodon.Social/")
	assert.Nil(t, err)
	assert.Equal(t, "mastodon.social", res)

	res, err = NormalizeInstanceDomain("http://toot.example.com/@someone")
	assert.Nil(t, err)
	assert.Equal(t, "toot.example.com", res)

	res, err = NormalizeInstanceDomain("  fosstodon.org  ")
	assert.Nil(t, err)
	assert.Equal(t, "fosstodon.org", res)

	_, err = NormalizeInstanceDomain("")
	assert.NotNil(t, err)

	_, err = NormalizeInstanceDomain("localhost")
	assert.NotNil(t, err)

	_, err = NormalizeInstanceDomain("bad domain.com")
	assert.NotNil(t, err)

	_, err = NormalizeInstanceDomain(".starts-with-dot.com.")
	assert.NotNil(t, err)
}

func TestValidateFocus(t *testing.T) {
	assert.Nil(t, ValidateFocus(0, 0))
	assert.Nil(t, ValidateFocus(-1, 1))
	assert.Nil(t, ValidateFocus(0.33, -0.87))
	assert.NotNil(t, ValidateFocus(-1.01, 0))
	assert.NotNil(t, ValidateFocus(0, 1.5))
}

func TestFullHandle(t *testing.T) {
	assert.Equal(t, "@parrot@mastodon.social", FullHandle("parrot", "mastodon.social"))
}
