package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the ANSI colors for one theme
type palette struct {
	time      string
	component string
	key       string
	value     string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

// Everforest Dark (natural forest greens)
var everforest = palette{
	time:      "\x1b[38;5;107m", // Mid green (#83c092)
	component: "\x1b[38;5;208m", // Autumn orange (#e69875)
	key:       "\x1b[38;5;65m",  // Deep forest green
	value:     "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	warn:      "\x1b[38;5;179m", // Warm yellow (#dbbc7f)
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m", // Error red (#e67e80)
	errBg:     "\x1b[48;5;52m",
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	time:      "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	component: "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	key:       "\x1b[38;5;109m", // Soft blue (#83a598)
	value:     "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	warn:      "\x1b[38;5;214m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m", // Warm red (#fb4934)
	errBg:     "\x1b[48;5;88m",
}

// Themes accepted by SetTheme.
const (
	ThemeEverforest = "everforest"
	ThemeGruvbox    = "gruvbox"
)

var currentTheme = ThemeEverforest

// SetTheme configures the color scheme for console output. Unknown names
// are ignored.
func SetTheme(theme string) {
	if IsTheme(theme) {
		currentTheme = theme
	}
}

// IsTheme reports whether theme names a known palette.
func IsTheme(theme string) bool {
	return theme == ThemeEverforest || theme == ThemeGruvbox
}

func colors() palette {
	if currentTheme == ThemeGruvbox {
		return gruvbox
	}
	return everforest
}

var bufferPool = buffer.NewPool()

// minimalEncoder is a compact console encoder:
// "13:04:35  cli  Mode selected  mode=time"
//
// Fields attached with Logger.With accumulate in the embedded map encoder
// and are printed, sorted by key, ahead of the entry's own fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := bufferPool.Get()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level is only shown when it needs attention
	if lvl := levelString(ent.Level, c); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(c.component)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if kv := enc.renderFields(fields, c); kv != "" {
		final.AppendString("  ")
		final.AppendString(kv)
	}

	final.AppendString("\n")
	return final, nil
}

func levelString(level zapcore.Level, c palette) string {
	switch level {
	case zapcore.DebugLevel, zapcore.InfoLevel:
		return ""
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	default:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	}
}

// renderFields prints every field as key=value. Nothing is dropped.
func (enc *minimalEncoder) renderFields(fields []zapcore.Field, c palette) string {
	var parts []string

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, renderPair(k, enc.Fields[k], c))
	}

	entry := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(entry)
		if v, ok := entry.Fields[f.Key]; ok {
			parts = append(parts, renderPair(f.Key, v, c))
		}
	}

	return strings.Join(parts, " ")
}

func renderPair(key string, value interface{}, c palette) string {
	return c.key + key + colorReset + "=" + c.value + fmt.Sprint(value) + colorReset
}
