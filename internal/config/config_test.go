package config

import "testing"

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("REQLOG_PRIMARY.ENV", "test")
	t.Setenv("REQLOG_SERVER.PORT", "8080")
	t.Setenv("REQLOG_SERVER.READ_TIMEOUT", "5")
	t.Setenv("REQLOG_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("REQLOG_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("REQLOG_LOGGING.LEVEL", "info")
	t.Setenv("REQLOG_LOGGING.FORMAT", "json")
	t.Setenv("REQLOG_REQUESTLOG.IGNORED_PATHS", "/health,/metrics")
	t.Setenv("REQLOG_REQUESTLOG.BODY_CHUNK_SIZE", "1024")
	t.Setenv("REQLOG_REQUESTLOG.HEADERS.LOG_ALL", "true")
	t.Setenv("REQLOG_REQUESTLOG.HEADERS.PREFIX", "req_")
	t.Setenv("REQLOG_REQUESTLOG.HEADERS.EXCLUDE", "Authorization,Cookie")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Primary.Env != "test" {
		t.Errorf("env = %q", cfg.Primary.Env)
	}
	if cfg.Server.Port != "8080" || cfg.Server.ReadTimeout != 5 {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging config = %+v", cfg.Logging)
	}
	if len(cfg.RequestLog.IgnoredPaths) != 2 || cfg.RequestLog.IgnoredPaths[0] != "/health" {
		t.Errorf("ignored paths = %v", cfg.RequestLog.IgnoredPaths)
	}
	if cfg.RequestLog.BodyChunkSize != 1024 {
		t.Errorf("body chunk size = %d", cfg.RequestLog.BodyChunkSize)
	}
	if !cfg.RequestLog.Headers.LogAll || cfg.RequestLog.Headers.Prefix != "req_" {
		t.Errorf("headers = %+v", cfg.RequestLog.Headers)
	}
	if len(cfg.RequestLog.Headers.Exclude) != 2 || cfg.RequestLog.Headers.Exclude[1] != "Cookie" {
		t.Errorf("exclude = %v", cfg.RequestLog.Headers.Exclude)
	}
}
