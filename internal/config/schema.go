package config

// Config holds sofer configuration.
// Loaded from config.yaml in the working directory or ~/.sofer.
type Config struct {
	Defaults  DefaultsCfg  `mapstructure:"defaults" yaml:"defaults"`
	Batch     BatchCfg     `mapstructure:"batch" yaml:"batch"`
	Detection DetectionCfg `mapstructure:"detection" yaml:"detection"`
}

// DefaultsCfg specifies the per-file processing defaults. CLI flags
// override these.
type DefaultsCfg struct {
	Book          string `mapstructure:"book" yaml:"book"`                     // H1 collection name
	Sefer         string `mapstructure:"sefer" yaml:"sefer"`                   // H2
	Output        string `mapstructure:"output" yaml:"output"`                 // writer name
	Chunking      string `mapstructure:"chunking" yaml:"chunking"`             // chunking strategy
	FilterHeaders bool   `mapstructure:"filter_headers" yaml:"filter_headers"` // drop legacy title lines
}

// BatchCfg bounds directory runs.
type BatchCfg struct {
	Workers   int  `mapstructure:"workers" yaml:"workers"` // 0 = NumCPU
	Recursive bool `mapstructure:"recursive" yaml:"recursive"`
}

// DetectionCfg holds the font-size thresholds used by heading detection.
type DetectionCfg struct {
	H3FontSize  float64 `mapstructure:"h3_font_size" yaml:"h3_font_size"` // points
	H4FontSize  float64 `mapstructure:"h4_font_size" yaml:"h4_font_size"` // points
	RequireBold bool    `mapstructure:"require_bold" yaml:"require_bold"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsCfg{
			Output:        "json",
			Chunking:      "paragraph",
			FilterHeaders: true,
		},
		Batch: BatchCfg{
			Workers: 0,
		},
		Detection: DetectionCfg{
			H3FontSize:  21.0,
			H4FontSize:  17.0,
			RequireBold: true,
		},
	}
}
