// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Input format selectors.
const (
	InputJSON  = "json"
	InputJSONC = "jsonc"
	InputCSV   = "csv"
)

// OutputHackMD selects the HackMD Markdown writer.
const OutputHackMD = "hackmd"

// DefaultOutputFile is used when no output path is configured.
const DefaultOutputFile = "./output.md"

// HackMDConfig holds settings for the HackMD Markdown writer.
type HackMDConfig struct {
	// CodeLanguage forces the fence language tag for every code block. When
	// empty the tag is derived from the code file extension.
	CodeLanguage string `json:"code_language" yaml:"code_language" mapstructure:"code_language"`

	// LineNumbers appends HackMD's "=" marker to the fence so the rendered
	// block shows line numbers (default true).
	LineNumbers bool `json:"line_numbers" yaml:"line_numbers" mapstructure:"line_numbers"`

	// SourceCacheSize bounds the number of code files kept in memory while
	// rendering (default 64).
	SourceCacheSize int `json:"source_cache_size" yaml:"source_cache_size" mapstructure:"source_cache_size"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is one of console, json, pretty.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ConvertConfig holds everything a single conversion run needs.
type ConvertConfig struct {
	// InputFile is the path of the document to read. Required.
	InputFile string `json:"input_file" yaml:"input_file" mapstructure:"input_file"`

	// OutputFile is the path the rendered document is written to
	// (default ./output.md).
	OutputFile string `json:"output_file" yaml:"output_file" mapstructure:"output_file"`

	// InputFormat selects the reader: json or csv.
	InputFormat string `json:"input_format" yaml:"input_format" mapstructure:"input_format"`

	// OutputFormat selects the writer: hackmd.
	OutputFormat string `json:"output_format" yaml:"output_format" mapstructure:"output_format"`

	HackMD HackMDConfig `json:"hackmd" yaml:"hackmd" mapstructure:"hackmd"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
