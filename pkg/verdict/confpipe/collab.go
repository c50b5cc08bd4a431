package confpipe

import (
	"context"
	"io/fs"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the parsed configuration document.
type Config struct {
	Mode    string `yaml:"mode"`
	Payload string `yaml:"payload"`
}

// Source provides raw configuration content by identifier. A missing
// identifier is reported with an error satisfying
// errors.Is(err, fs.ErrNotExist).
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// Parser turns raw content into a Config. Malformed content is reported
// with an error carrying line context where the format provides one.
type Parser interface {
	Parse(raw []byte) (Config, error)
}

// FSSource adapts a file system into a Source.
func FSSource(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

var _ Source = fsSource{}

func (s fsSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, name)
}

// YAMLParser parses YAML configuration documents.
type YAMLParser struct{}

var _ Parser = YAMLParser{}

func (YAMLParser) Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var lineRe = regexp.MustCompile(`line (\d+)`)

// errorLine pulls the line number out of a parser error message, 0 when
// there is none.
func errorLine(err error) int {
	if err == nil {
		return 0
	}
	m := lineRe.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
