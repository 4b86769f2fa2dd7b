package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/talkscore/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars(t)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.HistoryCapacity, convey.ShouldEqual, 100)
				convey.So(cfg.MinWords, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			t.Setenv("TALKSCORE_ADDR", ":8080")
			t.Setenv("TALKSCORE_HISTORY_CAPACITY", "50")
			t.Setenv("TALKSCORE_MIN_WORDS", "5")
			t.Setenv("TALKSCORE_DEFAULT_DURATION_SECONDS", "45.5")
			t.Setenv("TALKSCORE_LOG_FORMAT", "json")
			t.Setenv("TALKSCORE_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.HistoryCapacity, convey.ShouldEqual, 50)
				convey.So(cfg.MinWords, convey.ShouldEqual, 5)
				convey.So(cfg.DefaultDurationSeconds, convey.ShouldEqual, 45.5)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://a.example", "https://b.example"})
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := createTempConfigFile(t, `
addr: ":9090"
history_capacity: 300
max_history_limit: 50
history_default_limit: 10
rate_limit_rps: 0
`)
			t.Setenv("TALKSCORE_CONFIG", path)
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.HistoryCapacity, convey.ShouldEqual, 300)
				convey.So(cfg.MaxHistoryLimit, convey.ShouldEqual, 50)
				convey.So(cfg.HistoryDefaultLimit, convey.ShouldEqual, 10)
				convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 0)
				convey.So(cfg.MinWords, convey.ShouldEqual, 10) // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := createTempConfigFile(t, `
addr: ":9090"
history_capacity: 300
`)
			t.Setenv("TALKSCORE_CONFIG", path)
			t.Setenv("TALKSCORE_ADDR", ":8080")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.HistoryCapacity, convey.ShouldEqual, 300)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			path := createTempConfigFile(t, `invalid: yaml: content: [`)
			t.Setenv("TALKSCORE_CONFIG", path)
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			t.Setenv("TALKSCORE_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			t.Setenv("TALKSCORE_ADDR", "")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
			})
		})

		convey.Convey("When loading config with a non-numeric capacity", func() {
			t.Setenv("TALKSCORE_HISTORY_CAPACITY", "lots")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then unmarshalling should fail", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talkscore.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TALKSCORE_CONFIG",
		"TALKSCORE_ADDR",
		"TALKSCORE_HISTORY_CAPACITY",
		"TALKSCORE_MIN_WORDS",
		"TALKSCORE_DEFAULT_DURATION_SECONDS",
		"TALKSCORE_LOG_FORMAT",
		"TALKSCORE_CORS_ALLOWED_ORIGINS",
	} {
		_ = os.Unsetenv(key)
	}
}
