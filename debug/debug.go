package debug

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/signadot/domref/dom"

	"go.uber.org/zap"
)

type debug struct {
	Parse  bool
	Encode bool
	Match  bool
	Patch  bool
}

var (
	d          *debug
	logger     *zap.Logger
	loggerOnce sync.Once

	nodeString = (*dom.Node).String
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("DOMREF_DEBUG_PARSE")
	d.Encode = boolEnv("DOMREF_DEBUG_ENCODE")
	d.Match = boolEnv("DOMREF_DEBUG_MATCH")
	d.Patch = boolEnv("DOMREF_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}

func enabled() bool {
	return d.Parse || d.Encode || d.Match || d.Patch
}

// Logger returns the debug logger. Unless SetLogger was called it is a
// development logger on stderr when any debug flag is set, and a no-op
// logger otherwise.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger != nil {
			return
		}
		if !enabled() {
			logger = zap.NewNop()
			return
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// SetLogger replaces the debug logger. It must be called before any
// logging takes place.
func SetLogger(l *zap.Logger) {
	logger = l
}

// SetNodeString sets how Logf renders node arguments. The encode
// package registers its outline encoder here.
func SetNodeString(f func(*dom.Node) string) {
	nodeString = f
}

// Logf logs a debug message. *dom.Node and *dom.ElementRef arguments are
// rendered with the function given to SetNodeString, or as a one line
// label when none was given.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *dom.Node:
			args[i] = nodeString(x)
		case *dom.ElementRef:
			args[i] = nodeString(x.AsNode())
		}
	}
	Logger().Sugar().Debugf(strings.TrimSuffix(msg, "\n"), args...)
}
