package logger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	// DefaultFilter applies when no filter is configured or the configured
	// one is invalid: application events at info and above, HTTP framework
	// diagnostics at debug and above, and route rejections at trace.
	DefaultFilter = AppTarget + "=info,gin=debug,gin.rejection=trace"

	// FilterEnvVar names the environment variable read by FilterFromEnv.
	FilterEnvVar = "LOG_FILTER"
)

const (
	// TraceLevel sits below zapcore.DebugLevel and is encoded as "TRACE".
	TraceLevel = zapcore.DebugLevel - 1

	// OffLevel is above every level a logger can emit.
	OffLevel = zapcore.FatalLevel + 1
)

// ErrInvalidFilter is returned by ParseFilter for malformed expressions.
var ErrInvalidFilter = errors.New("invalid log filter")

// Filter maps logger targets to minimum levels.
//
// A target matches a logger when it equals the logger name or is a dotted
// prefix of it: "gin" matches "gin" and "gin.rejection" but not "ginger".
// The longest matching target wins. Loggers matched by no directive use the
// bare default level, or error when the expression has none.
type Filter struct {
	raw        string
	fallback   zapcore.Level
	directives []directive
	min        zapcore.Level
}

type directive struct {
	target string
	level  zapcore.Level
}

// ParseFilter parses a filter expression such as
// "tempo_demo=info,gin=debug,warn".
func ParseFilter(expr string) (Filter, error) {
	f := Filter{raw: strings.TrimSpace(expr), fallback: zapcore.ErrorLevel}
	if f.raw == "" {
		return Filter{}, fmt.Errorf("%w: empty expression", ErrInvalidFilter)
	}

	byTarget := make(map[string]zapcore.Level)
	for _, part := range strings.Split(f.raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		target, lvl, hasTarget := strings.Cut(part, "=")
		if !hasTarget {
			level, err := ParseLevel(part)
			if err != nil {
				return Filter{}, err
			}
			f.fallback = level
			continue
		}

		target = strings.TrimSpace(target)
		if target == "" || strings.ContainsAny(target, " \t=") {
			return Filter{}, fmt.Errorf("%w: bad target in %q", ErrInvalidFilter, part)
		}
		level, err := ParseLevel(strings.TrimSpace(lvl))
		if err != nil {
			return Filter{}, err
		}
		byTarget[target] = level
	}

	for target, level := range byTarget {
		f.directives = append(f.directives, directive{target: target, level: level})
	}
	sort.Slice(f.directives, func(i, j int) bool {
		return len(f.directives[i].target) > len(f.directives[j].target)
	})

	f.min = f.fallback
	for _, d := range f.directives {
		if d.level < f.min {
			f.min = d.level
		}
	}

	return f, nil
}

// ParseLevel converts a level name into a zapcore.Level. Names are case
// insensitive; "warn" and "warning" are equivalent.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(name) {
	case Trace:
		return TraceLevel, nil
	case Debug:
		return zapcore.DebugLevel, nil
	case Info:
		return zapcore.InfoLevel, nil
	case Warning, "warn":
		return zapcore.WarnLevel, nil
	case Error:
		return zapcore.ErrorLevel, nil
	case Off:
		return OffLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: unknown level %q", ErrInvalidFilter, name)
	}
}

// ResolveFilter parses expr, falling back to DefaultFilter when expr is
// blank or invalid.
func ResolveFilter(expr string) Filter {
	if f, err := ParseFilter(expr); err == nil {
		return f
	}
	f, _ := ParseFilter(DefaultFilter)
	return f
}

// FilterFromEnv resolves the filter held in FilterEnvVar.
func FilterFromEnv() Filter {
	return ResolveFilter(os.Getenv(FilterEnvVar))
}

// LevelFor returns the minimum level enabled for the named logger.
func (f Filter) LevelFor(name string) zapcore.Level {
	for _, d := range f.directives {
		if name == d.target || strings.HasPrefix(name, d.target+".") {
			return d.level
		}
	}
	return f.fallback
}

// String returns the expression the filter was parsed from.
func (f Filter) String() string {
	return f.raw
}

// filterCore applies a Filter in front of another core.
type filterCore struct {
	zapcore.Core
	filter Filter
}

func newFilterCore(core zapcore.Core, filter Filter) zapcore.Core {
	return &filterCore{Core: core, filter: filter}
}

func (c *filterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.filter.min && c.Core.Enabled(lvl)
}

func (c *filterCore) With(fields []zapcore.Field) zapcore.Core {
	return &filterCore{Core: c.Core.With(fields), filter: c.filter}
}

func (c *filterCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if ent.Level < c.filter.LevelFor(ent.LoggerName) {
		return ce
	}
	return c.Core.Check(ent, ce)
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == TraceLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}
