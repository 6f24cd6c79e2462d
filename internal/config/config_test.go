package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
  mode: debug
database:
  driver: postgres
  host: db
  port: 5432
jwt:
  secret: dev-secret
  expire_hours: 24
ledger:
  timezone: Asia/Tashkent
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q", cfg.Database.Driver)
	}
	if cfg.JWT.ExpireTime != 24*time.Hour {
		t.Errorf("jwt expire = %v", cfg.JWT.ExpireTime)
	}
	if got := cfg.Ledger.Location().String(); got != "Asia/Tashkent" {
		t.Errorf("ledger location = %q", got)
	}
	if cfg.Scheduler.StatsRefreshSpec == "" {
		t.Error("expected default stats refresh spec")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "debug with short secret",
			cfg:  Config{Server: ServerConfig{Mode: "debug"}, Database: DatabaseConfig{Driver: "mysql"}, JWT: JWTConfig{Secret: "x"}},
		},
		{
			name:    "release with short secret",
			cfg:     Config{Server: ServerConfig{Mode: "release"}, Database: DatabaseConfig{Driver: "mysql"}, JWT: JWTConfig{Secret: "short"}},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     Config{Database: DatabaseConfig{Driver: "sqlite"}},
			wantErr: true,
		},
		{
			name:    "bad timezone",
			cfg:     Config{Database: DatabaseConfig{Driver: "mysql"}, Ledger: LedgerConfig{Timezone: "Mars/Olympus"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLedgerLocationFallsBackToLocal(t *testing.T) {
	if (LedgerConfig{}).Location() != time.Local {
		t.Error("empty timezone should resolve to time.Local")
	}
	if (LedgerConfig{Timezone: "nope/nope"}).Location() != time.Local {
		t.Error("invalid timezone should resolve to time.Local")
	}
}
