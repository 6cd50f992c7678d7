package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	minBoardSize = 5
)

type Engine struct {
	BoardSize       int `json:"boardSize"`
	SearchDepth     int `json:"searchDepth"`
	CandidateRadius int `json:"candidateRadius"`
}

type Config struct {
	HTTPAddr  string `json:"-"`
	LogLevel  string `json:"-"`
	LogPretty bool   `json:"-"`
	Pprof     bool   `json:"-"`
	Engine    Engine `json:"engine"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	cfg := Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty: getenvBool("LOG_PRETTY", false),
		Pprof:     getenvBool("PPROF_ENABLED", false),
		Engine: Engine{
			BoardSize:       getenvInt("BOARD_SIZE", 10),
			SearchDepth:     getenvInt("SEARCH_DEPTH", 2),
			CandidateRadius: getenvInt("CANDIDATE_RADIUS", 2),
		},
	}
	cfg.Engine = cfg.Engine.normalized()
	return cfg
}

// normalized replaces out-of-range values with the defaults.
func (e Engine) normalized() Engine {
	if e.BoardSize < minBoardSize {
		e.BoardSize = 10
	}
	if e.SearchDepth < 1 {
		e.SearchDepth = 2
	}
	if e.CandidateRadius < 1 {
		e.CandidateRadius = 2
	}
	return e
}
