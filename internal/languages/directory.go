// Package languages holds the read-only table of supported output languages.
package languages

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

var (
	ErrUnknownLanguage   = errors.New("unknown language")
	ErrDuplicateLanguage = errors.New("duplicate language code")
)

// Language is one entry of the directory.
type Language struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Directory maps language codes to display names and prompt fragments.
// It is built once and safe for concurrent use.
type Directory struct {
	languages   []Language
	byCode      map[string]Language
	defaultCode string
}

type languageFile struct {
	Languages []Language `yaml:"languages"`
}

// Load builds the directory from the embedded language table. defaultCode
// must be one of its entries; it is used whenever a lookup misses.
func Load(defaultCode string) (*Directory, error) {
	return Parse(languagesYAML, defaultCode)
}

// Parse builds a directory from a YAML document of the embedded format.
func Parse(data []byte, defaultCode string) (*Directory, error) {
	var file languageFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse language table: %w", err)
	}

	d := &Directory{
		languages:   file.Languages,
		byCode:      make(map[string]Language, len(file.Languages)),
		defaultCode: defaultCode,
	}
	for _, lang := range file.Languages {
		if _, exists := d.byCode[lang.Code]; exists {
			return nil, fmt.Errorf("%q: %w", lang.Code, ErrDuplicateLanguage)
		}
		d.byCode[lang.Code] = lang
	}
	if _, ok := d.byCode[defaultCode]; !ok {
		return nil, fmt.Errorf("default language %q: %w", defaultCode, ErrUnknownLanguage)
	}
	return d, nil
}

// DefaultCode returns the fallback language code.
func (d *Directory) DefaultCode() string {
	return d.defaultCode
}

// Supports reports whether code has an entry.
func (d *Directory) Supports(code string) bool {
	_, ok := d.byCode[code]
	return ok
}

// Lookup returns the entry for code, or the default entry when code is unknown.
func (d *Directory) Lookup(code string) Language {
	if lang, ok := d.byCode[code]; ok {
		return lang
	}
	return d.byCode[d.defaultCode]
}

// Name returns the display name for code, falling back to the default language.
func (d *Directory) Name(code string) string {
	return d.Lookup(code).Name
}

// Prompt returns the instruction fragment telling the model which language to write in.
func (d *Directory) Prompt(code string) string {
	return fmt.Sprintf("Write in %s with a natural, conversational tone suitable for video content.", d.Lookup(code).Name)
}

// Resolve picks the first non-empty code, or the default when all are empty.
// The returned code is not checked against the table.
func (d *Directory) Resolve(codes ...string) string {
	for _, code := range codes {
		if code != "" {
			return code
		}
	}
	return d.defaultCode
}

// List returns all entries in listing order.
func (d *Directory) List() []Language {
	out := make([]Language, len(d.languages))
	copy(out, d.languages)
	return out
}
