package database

import (
	"strings"
	"testing"

	"ecotrack_backend/internal/config"
)

func TestDSN(t *testing.T) {
	mysqlCfg := &config.DatabaseConfig{
		Driver: "mysql", Host: "db", Port: 3306, User: "eco", Password: "pw",
		DBName: "ecotrack", Charset: "utf8mb4", ParseTime: true,
	}
	if got := DSN(mysqlCfg); got != "eco:pw@tcp(db:3306)/ecotrack?charset=utf8mb4&parseTime=true&loc=Local" {
		t.Errorf("mysql dsn = %q", got)
	}

	pgCfg := &config.DatabaseConfig{
		Driver: "postgres", Host: "pg", Port: 5432, User: "eco", Password: "pw",
		DBName: "ecotrack", SSLMode: "disable",
	}
	got := DSN(pgCfg)
	for _, part := range []string{"host=pg", "port=5432", "dbname=ecotrack", "sslmode=disable"} {
		if !strings.Contains(got, part) {
			t.Errorf("postgres dsn %q missing %q", got, part)
		}
	}
}

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{Enabled: false})
	if err != nil || rdb != nil {
		t.Fatalf("expected nil client and nil error, got %v, %v", rdb, err)
	}
}
