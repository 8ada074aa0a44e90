package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{name: "no commit", commit: "", want: "0.1.0"},
		{name: "short commit", commit: "1a2b3c", want: "0.1.0"},
		{name: "full commit", commit: "1a2b3c4d5e6f", want: "0.1.0+1a2b3c4d"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := &version{majorVersion: 0, minorVersion: 1, patchVersion: 0, commit: test.commit}
			assert.Equal(t, test.want, v.String())
		})
	}
	assert.NotEmpty(t, GetVersion())
}
