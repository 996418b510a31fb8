package config

// YAMLFile mirrors primer.yaml. Pointer fields distinguish "absent" from
// zero values so defaults survive partial files.
type YAMLFile struct {
	Primer YAMLPrimer `yaml:"primer"`
}

type YAMLPrimer struct {
	Fetch     YAMLFetch     `yaml:"fetch"`
	Directory YAMLDirectory `yaml:"directory"`
	Masking   YAMLMasking   `yaml:"masking"`
	Paths     YAMLPaths     `yaml:"paths"`
}

type YAMLFetch struct {
	URL          string `yaml:"url"`
	Timeout      string `yaml:"timeout"`
	MaxBodyBytes *int64 `yaml:"max_body_bytes"`
}

type YAMLDirectory struct {
	Data string `yaml:"data"`
}

type YAMLMasking struct {
	Enabled *bool `yaml:"enabled"`
}

type YAMLPaths struct {
	RunsDir string `yaml:"runs_dir"`
}
