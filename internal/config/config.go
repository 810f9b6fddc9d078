package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names an environment variable holding the config file path,
// for repositories that keep the file somewhere non-standard.
const ConfigEnvVar = "ALH_CONFIG"

// configFileNames are the file names probed, in order, when no explicit
// config path is given.
var configFileNames = []string{
	".add-license-header.yaml",
	".add-license-header.yml",
	".add-license-header.toml",
}

const DefaultConfigContent = `# add-license-header configuration
#
# Command-line flags override any value set here.

# Path to the license template, relative to this file.
# The template may reference $create_year, $edit_year, $year_delimiter
# and $author_name.
#licenseFile: LICENSE.tmpl

#authorName: Jane Doe

# Separator between the creation and edit years ("2019, 2024").
#yearDelimiter: ", "

# Render a single year instead of a range when both years are equal.
#singleYearIfSame: false

# Maintain headers without the managed sentinel line. The top-most comment
# block of each file is assumed to be the license header.
#unmanaged: false

# Additional comment styles. Keys starting with a dot are extensions,
# anything else is an exact file name.
#styles:
#  .nim:
#    start: "#"
#    middle: "#"
#    end: "#"
`

// Style declares the comment delimiters for one file type.
type Style struct {
	Start  string `yaml:"start" toml:"start"`
	Middle string `yaml:"middle" toml:"middle"`
	End    string `yaml:"end" toml:"end"`
}

// Config is the optional per-repository configuration. All fields have flag
// equivalents; flags win.
type Config struct {
	LicenseFile      string           `yaml:"licenseFile" toml:"licenseFile"`
	AuthorName       string           `yaml:"authorName" toml:"authorName"`
	YearDelimiter    string           `yaml:"yearDelimiter" toml:"yearDelimiter"`
	SingleYearIfSame bool             `yaml:"singleYearIfSame" toml:"singleYearIfSame"`
	Unmanaged        bool             `yaml:"unmanaged" toml:"unmanaged"`
	Styles           map[string]Style `yaml:"styles" toml:"styles"`

	// Path is where the config was loaded from; relative paths inside the
	// config resolve against its directory.
	Path string `yaml:"-" toml:"-"`
}

// Load reads and validates a config file. The format is chosen by
// extension: .toml is decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingConfigError{Path: path}
		}
		return nil, err
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, &InvalidConfigError{Path: path, Wrapped: err}
	}

	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover returns the config path for dir: the ConfigEnvVar override if
// set, otherwise the first of the standard file names present in dir. The
// second return is false when there is no config, which is not an error.
func Discover(dir string, getenv func(string) string) (string, bool) {
	if path := getenv(ConfigEnvVar); path != "" {
		return path, true
	}
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// ResolveLicenseFile returns the configured template path resolved against
// the config file's directory.
func (c *Config) ResolveLicenseFile() string {
	if c.LicenseFile == "" || filepath.IsAbs(c.LicenseFile) {
		return c.LicenseFile
	}
	return filepath.Join(filepath.Dir(c.Path), c.LicenseFile)
}

func (c *Config) Validate() error {
	for key, s := range c.Styles {
		if s.Start == "" {
			return &InvalidStyleConfigError{Path: c.Path, Key: key}
		}
	}
	return nil
}
