// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config turns viper settings into a validated ConvertConfig.
package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/viper"

	"github.com/pdiddy/presentation-formatter/internal/logging"
	"github.com/pdiddy/presentation-formatter/pkg/types"
)

const configInvalidCode = "CONFIG_INVALID"

// Viper keys.
const (
	KeyInputFile       = "input_file"
	KeyOutputFile      = "output_file"
	KeyInputFormat     = "input_format"
	KeyOutputFormat    = "output_format"
	KeyCodeLanguage    = "hackmd.code_language"
	KeyLineNumbers     = "hackmd.line_numbers"
	KeySourceCacheSize = "hackmd.source_cache_size"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputFile, types.DefaultOutputFile)
	v.SetDefault(KeyInputFormat, types.InputJSON)
	v.SetDefault(KeyOutputFormat, types.OutputHackMD)
	v.SetDefault(KeyCodeLanguage, "")
	v.SetDefault(KeyLineNumbers, true)
	v.SetDefault(KeySourceCacheSize, 64)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads a ConvertConfig from v. Call SetDefaults first.
func Load(v *viper.Viper) types.ConvertConfig {
	return types.ConvertConfig{
		InputFile:    strings.TrimSpace(v.GetString(KeyInputFile)),
		OutputFile:   strings.TrimSpace(v.GetString(KeyOutputFile)),
		InputFormat:  strings.TrimSpace(v.GetString(KeyInputFormat)),
		OutputFormat: strings.TrimSpace(v.GetString(KeyOutputFormat)),
		HackMD: types.HackMDConfig{
			CodeLanguage:    strings.TrimSpace(v.GetString(KeyCodeLanguage)),
			LineNumbers:     v.GetBool(KeyLineNumbers),
			SourceCacheSize: v.GetInt(KeySourceCacheSize),
		},
		Log: types.LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}
}

// Validate checks required paths, the cache size and the log settings. Format
// selectors are resolved by the driver, which reports unknown ones as
// configuration errors.
func Validate(cfg types.ConvertConfig) error {
	err := validation.Errors{
		KeyInputFile:       validation.Validate(cfg.InputFile, validation.Required.Error("input file is required")),
		KeyOutputFile:      validation.Validate(cfg.OutputFile, validation.Required.Error("output file is required")),
		KeySourceCacheSize: validation.Validate(cfg.HackMD.SourceCacheSize, validation.Required, validation.Min(1)),
		KeyLogLevel:        validation.Validate(strings.ToLower(strings.TrimSpace(cfg.Log.Level)), validation.In(toAny(logging.Levels)...)),
		KeyLogFormat:       validation.Validate(strings.ToLower(strings.TrimSpace(cfg.Log.Format)), validation.In(toAny(logging.Formats)...)),
	}.Filter()
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration: "+err.Error()).
			WithTextCode(configInvalidCode)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
