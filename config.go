package roadgraph

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTags is set of highway tags accepted by default
var DefaultTags = []string{"motorway", "primary", "primary_link", "road", "secondary", "secondary_link", "residential", "tertiary", "tertiary_link", "unclassified", "trunk", "trunk_link", "motorway_link"}

// Config is the YAML configuration of CLI
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Encoder FlagEncoder   `yaml:"encoder"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type StorageConfig struct {
	Directory       string `yaml:"directory"`
	Compress        bool   `yaml:"compress"`
	InitialCapacity int    `yaml:"initial_capacity"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Directory:       "./graph",
			Compress:        false,
			InitialCapacity: DEFAULT_INITIAL_CAPACITY,
		},
		Encoder: FlagEncoder{
			EntityName: "highway",
			Tags:       append([]string{}, DefaultTags...),
		},
		Metrics: MetricsConfig{
			Namespace: "roadgraph",
		},
	}
}

// LoadConfig reads YAML file on top of DefaultConfig()
func LoadConfig(fname string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(fname)
	if err != nil {
		return cfg, errors.Wrap(err, "Can't read config file")
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "Can't parse config file")
	}
	if cfg.Encoder.EntityName != "highway" {
		return cfg, errors.Errorf("Entity '%s' is not supported, only 'highway' is", cfg.Encoder.EntityName)
	}
	if len(cfg.Encoder.Tags) == 0 {
		return cfg, errors.New("Encoder tags must not be empty")
	}
	return cfg, nil
}

// GraphOptions converts storage section into MemoryGraph options
func (cfg Config) GraphOptions(verbose bool) []func(*MemoryGraph) {
	return []func(*MemoryGraph){
		WithDirectory(cfg.Storage.Directory),
		WithCompression(cfg.Storage.Compress),
		WithInitialCapacity(cfg.Storage.InitialCapacity),
		WithVerbose(verbose),
	}
}
