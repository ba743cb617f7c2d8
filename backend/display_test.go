package backend

import (
	"errors"
	"testing"
)

func TestRequireDisplay(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		wantErr bool
	}{
		{"linux without display", "linux", nil, true},
		{"linux empty values", "linux", map[string]string{"DISPLAY": "", "WAYLAND_DISPLAY": ""}, true},
		{"linux x11", "linux", map[string]string{"DISPLAY": ":0"}, false},
		{"linux wayland", "linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, false},
		{"freebsd without display", "freebsd", nil, true},
		{"windows", "windows", nil, false},
		{"darwin", "darwin", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireDisplay(tt.goos, func(k string) string { return tt.env[k] })
			if tt.wantErr {
				if !errors.Is(err, ErrUnavailable) {
					t.Errorf("requireDisplay() error = %v, want ErrUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Errorf("requireDisplay() error = %v, want nil", err)
			}
		})
	}
}
