package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":8000", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":8000"},
		},
		{
			name:    "equals form",
			args:    []string{"-a=:8000", "--secret=abc"},
			allowed: []string{"-a"},
			want:    []string{"-a=:8000"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-s", "key"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", "-s", "key"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-test.v", "-test.run", "TestFoo"},
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}
