package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	if GetString("server.host") != "0.0.0.0" {
		t.Errorf("Expected server.host to default to 0.0.0.0, got %s", GetString("server.host"))
	}
	if GetInt("server.port") != 8080 {
		t.Errorf("Expected server.port to default to 8080, got %d", GetInt("server.port"))
	}
	if GetString("blog_search.base_url") != "https://api.blogscout.io/v2" {
		t.Errorf("Unexpected blog_search.base_url default: %s", GetString("blog_search.base_url"))
	}
	if GetDuration("blog_search.timeout") != 10*time.Second {
		t.Errorf("Expected blog_search.timeout to default to 10s, got %v", GetDuration("blog_search.timeout"))
	}
	if !GetBool("history.enabled") {
		t.Error("Expected history.enabled to default to true")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	os.Setenv("BLOGSCOUT_SERVER_PORT", "9090")
	os.Setenv("BLOGSCOUT_BLOG_SEARCH_API_KEY", "test-key")
	defer os.Unsetenv("BLOGSCOUT_SERVER_PORT")
	defer os.Unsetenv("BLOGSCOUT_BLOG_SEARCH_API_KEY")

	setDefaults()
	viper.SetEnvPrefix("BLOGSCOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if GetInt("server.port") != 9090 {
		t.Errorf("Expected server.port to be overridden to 9090, got %d", GetInt("server.port"))
	}
	if GetString("blog_search.api_key") != "test-key" {
		t.Errorf("Expected blog_search.api_key override, got %q", GetString("blog_search.api_key"))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name: "valid defaults",
			setup: func() {
				setDefaults()
				viper.Set("blog_search.api_key", "real-key")
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				setDefaults()
				viper.Set("server.port", -1)
			},
			wantErr: true,
		},
		{
			name: "placeholder key in production",
			setup: func() {
				setDefaults()
				viper.Set("environment", "production")
				viper.Set("blog_search.api_key", "YOUR_KEY_HERE")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			tt.setup()
			err := validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			viper.Reset()
		})
	}
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.History.RecentLimit != 20 {
		t.Errorf("Expected recent limit auto-corrected to 20, got %d", cfg.History.RecentLimit)
	}

	bad := &Config{Server: ServerConfig{Port: 0}}
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for invalid port")
	}
}
