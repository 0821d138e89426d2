package launcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubStartDetached(t *testing.T, stub func(name string, args ...string) error) {
	t.Helper()
	orig := startDetached
	startDetached = stub
	t.Cleanup(func() { startDetached = orig })
}

func stubGOOS(t *testing.T, value string) {
	t.Helper()
	orig := goos
	goos = value
	t.Cleanup(func() { goos = orig })
}

func TestOpen(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{goos: "linux", want: []string{"xdg-open", "/tmp/f.txt"}},
		{goos: "darwin", want: []string{"open", "/tmp/f.txt"}},
		{goos: "windows", want: []string{"cmd", "/c", "start", "", "/tmp/f.txt"}},
		{goos: "freebsd", want: []string{"xdg-open", "/tmp/f.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			stubGOOS(t, tt.goos)
			var got []string
			stubStartDetached(t, func(name string, args ...string) error {
				got = append([]string{name}, args...)
				return nil
			})
			assert.NoError(t, Open("/tmp/f.txt"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenError(t *testing.T) {
	stubGOOS(t, "linux")
	launchErr := errors.New("exec: \"xdg-open\": executable file not found in $PATH")
	stubStartDetached(t, func(name string, args ...string) error {
		return launchErr
	})
	assert.ErrorIs(t, Open("/tmp/f.txt"), launchErr)
	assert.ErrorIs(t, Launcher{}.Open("/tmp/f.txt"), launchErr)
}
