package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT              = 3000
	BIND_HOST         = ""    // empty binds on all interfaces
	SQLITE_FILE       = ""    // in-memory SQLite is used when this is empty (and no other DSN is set)
	MYSQL_DSN         = ""    // MySQL will be used if this is set
	POSTGRES_DSN      = ""    // PostgreSQL will be used if this is set and MYSQL_DSN is not
	TLS_DOMAINS       = ""    // e.g. "example.com,example2.com"
	DEBUG_MODE        = false // gin debug mode + logging of error response bodies
	LOG_LEVEL         = "info"
	METRICS_ENABLED   = true
	DB_MAX_OPEN_CONNS = 25 // ignored for in-memory SQLite, which needs exactly one connection
)

func init() {
	// A missing .env file is fine, the environment is used as is
	_ = godotenv.Load()
	load()
}

func load() {
	readEnvInt("PORT", &PORT)
	readEnvString("BIND_HOST", &BIND_HOST)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("LOG_LEVEL", &LOG_LEVEL)
	readEnvBool("METRICS_ENABLED", &METRICS_ENABLED)
	readEnvInt("DB_MAX_OPEN_CONNS", &DB_MAX_OPEN_CONNS)
}

// BindAddress is the host:port pair the HTTP listener uses
func BindAddress() string {
	return BIND_HOST + ":" + strconv.Itoa(PORT)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	switch strings.ToLower(os.Getenv(name)) {
	case "true", "1", "yes", "on":
		*value = true
	case "false", "0", "no", "off":
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
