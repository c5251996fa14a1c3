package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// Defaults used when the corresponding env variable is unset.
const (
	defaultPostsPerPage  = 10
	defaultNotesPerPage  = 20
	defaultCredentialLen = 5
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("THINKER_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("THINKER_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("THINKER_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/thinker-ui"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("THINKER_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("THINKER_LISTEN")
}

func GetPort() int {
	return getEnvInt("THINKER_PORT", 2053)
}

func GetBasePath() string {
	basePath := os.Getenv("THINKER_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

// GetWebDomain optionally pins the panel to one Host header value.
func GetWebDomain() string {
	return os.Getenv("THINKER_WEB_DOMAIN")
}

// GetSessionSecret returns the key used to sign and encrypt session cookies.
// Empty means the server generates an ephemeral one at startup, which
// invalidates all sessions on restart.
func GetSessionSecret() string {
	return os.Getenv("THINKER_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	return getEnvInt("THINKER_SESSION_MAX_AGE", 60)
}

// GetMinCredentialLen is the minimum accepted length for both logins and
// passwords. Historic deployments used 5 or 6; 5 is the default here.
func GetMinCredentialLen() int {
	return getEnvInt("THINKER_MIN_CREDENTIAL_LEN", defaultCredentialLen)
}

func GetPostsPerPage() int {
	return getEnvInt("THINKER_POSTS_PER_PAGE", defaultPostsPerPage)
}

func GetNotesPerPage() int {
	return getEnvInt("THINKER_NOTES_PER_PAGE", defaultNotesPerPage)
}

func getEnvInt(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
