package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		page, limit string
		want        Params
	}{
		{"", "", Params{Page: 1, Limit: 10}},
		{"3", "25", Params{Page: 3, Limit: 25}},
		{"0", "-5", Params{Page: 1, Limit: 10}},
		{"abc", "1000", Params{Page: 1, Limit: MaxLimit}},
		{"9223372036854775807", "10", Params{Page: MaxPage, Limit: 10}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.page, tc.limit), "page=%q limit=%q", tc.page, tc.limit)
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, 20, Params{Page: 3, Limit: 10}.Skip())
	assert.Equal(t, 0, All().Skip())
	assert.Positive(t, Parse("9223372036854775807", "100").Skip())
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{Page: 2, Limit: 10, Total: 21, Pages: 3}, NewMeta(Params{Page: 2, Limit: 10}, 21))
	assert.Equal(t, Meta{Page: 1, Limit: 10, Total: 0, Pages: 0}, NewMeta(Params{Page: 1, Limit: 10}, 0))
	assert.Equal(t, 1, NewMeta(All(), 7).Pages)
}
