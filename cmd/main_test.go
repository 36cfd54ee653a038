package main

import "testing"

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: nil, want: "config.yml"},
		{name: "short flag", args: []string{"-c", "custom.yml", "example.com"}, want: "custom.yml"},
		{name: "long flag", args: []string{"--config", "custom.yml"}, want: "custom.yml"},
		{name: "long flag with equals", args: []string{"--config=custom.yml"}, want: "custom.yml"},
		{name: "flag after positional", args: []string{"example.com", "-c", "custom.yml"}, want: "custom.yml"},
		{name: "dangling flag", args: []string{"-c"}, want: "config.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configPathFromArgs(tt.args); got != tt.want {
				t.Fatalf("configPathFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
