package config

import (
	"os"
	"fmt"
	"errors"
	"gopkg.in/yaml.v3"

	"pixelsteg/stegano/img"
	"pixelsteg/util"
)

/*
 * Configuration for steganography: how payloads are placed and
 * in which format stego covers are written.
 */
type SteganoConfig struct {
	Mode		string		`yaml:"mode"`		// linear or spiral
	Threshold	int		`yaml:"bw_threshold"`	// gray level above which a pixel is white
	OutputFormat	string		`yaml:"output_format"`	// png, bmp or qoi
	FontSize	float64		`yaml:"font_size"`	// used when rendering text into an image payload
}

// processing of whole folders of covers.
type BatchConfig struct {
	Workers		int		`yaml:"workers"`
	Suffix		string		`yaml:"suffix"`
	Extensions	[]string	`yaml:"extensions"`
}

type FullConfig struct {
	Stegano		SteganoConfig	`yaml:"steganography_config"`
	Batch		BatchConfig	`yaml:"batch_config"`
	Logger		util.LoggerInfo	`yaml:"logger_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Stegano: SteganoConfig{
			Mode: img.Spiral.String(),
			Threshold: 128,
			OutputFormat: img.PNGFormat,
			FontSize: img.DefaultFontSize,
		},
		Batch: BatchConfig{
			Workers: 4,
			Suffix: "-steg",
			Extensions: []string{ "png", "bmp", "qoi", "jpg", "jpeg", "gif" },
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning,
		},
	}
}

func (c *FullConfig) Validate() error {
	if _, err := img.ParseMode( c.Stegano.Mode ); err != nil {
		return err
	}
	if img.IsLossless( c.Stegano.OutputFormat ) == false {
		return fmt.Errorf("Output format %q does not preserve the LSB plane", c.Stegano.OutputFormat)
	}
	if c.Stegano.Threshold < 0 || c.Stegano.Threshold > 255 {
		return fmt.Errorf("Threshold %d is out of 0..255", c.Stegano.Threshold)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("At least one batch worker is required")
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Fields missing from the file keep their default values. A missing
 * file means the defaults unless required is set.
 */
func LoadConfig( filename string, required bool ) (*FullConfig, error) {
	conf := DefaultConfig()
	if filename == "" {
		return conf, nil
	}
	data, err := os.ReadFile( filename )
	if errors.Is( err, os.ErrNotExist ) && required == false {
		return conf, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, fmt.Errorf("Failed to parse configuration %s: %w", filename, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
