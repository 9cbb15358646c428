package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/qikcik/qlang/interp"
	"github.com/qikcik/qlang/scanner"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Conf is a flat key-value configuration.
type Conf struct {
	values      map[string]interface{}
	interactive bool
}

var _ schuko.Configuration = (*Conf)(nil)

// New creates a configuration holding the defaults.
func New() *Conf {
	c := &Conf{values: make(map[string]interface{})}
	c.InitDefaults()
	return c
}

// Load reads a YAML configuration file. Values from the file override the
// defaults. An empty file results in the defaults.
func Load(path string) (*Conf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse reads YAML configuration from r. Values override the defaults.
func Parse(r io.Reader) (*Conf, error) {
	c := New()
	var raw map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	c.merge("", raw)
	return c, nil
}

func (c *Conf) merge(prefix string, m map[string]interface{}) {
	for k, v := range m {
		c.mergeValue(prefix+k, v)
	}
}

func (c *Conf) mergeValue(key string, v interface{}) {
	switch v := v.(type) {
	case map[string]interface{}:
		c.merge(key+".", v)
	case map[interface{}]interface{}:
		for k, vv := range v {
			c.mergeValue(key+"."+fmt.Sprint(k), vv)
		}
	case []interface{}:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}
		c.values[key] = strings.Join(items, " ")
	default:
		c.values[key] = v
	}
}

// InitDefaults is part of interface schuko.Configuration.
func (c *Conf) InitDefaults() {
	c.values["interp.maxiterations"] = interp.DefaultMaxIterations
	c.values["interp.maxcalldepth"] = interp.DefaultMaxCallDepth
	c.values["scanner.separators"] = strings.Join(scanner.DefaultSeparators, " ")
	c.values["tracing.adapter"] = "go"
	c.values["tracelevel.root"] = "Error"
	c.values["repl.prompt"] = "qlang> "
	c.values["repl.history"] = ""
}

// Set sets a configuration value.
func (c *Conf) Set(key string, value interface{}) {
	c.mergeValue(key, value)
}

// SetInteractive flags the configuration as being used in an interactive
// session.
func (c *Conf) SetInteractive(b bool) {
	c.interactive = b
}

// Keys returns all keys, sorted.
func (c *Conf) Keys() []string {
	keys := maps.Keys(c.values)
	slices.Sort(keys)
	return keys
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	v, ok := c.values[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// GetInt is part of interface schuko.Configuration. Values which are not
// integers yield 0.
func (c *Conf) GetInt(key string) int {
	switch v := c.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			tracer().Errorf("config key %s: %q is not an integer", key, v)
		}
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *Conf) GetBool(key string) bool {
	switch v := c.values[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Conf) IsInteractive() bool {
	return c.interactive
}
