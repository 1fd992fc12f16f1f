package config

import (
	"github.com/go-ini/ini"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// DefaultIniFile is the config file looked up when OVIRT_INI_PATH is unset.
const DefaultIniFile = "ovirt.ini"

// Environment fallbacks for each [ovirt] key, plus the config-file path
// override.
type envSettings struct {
	IniPath  string `envconfig:"OVIRT_INI_PATH"`
	URL      string `envconfig:"OVIRT_URL"`
	Username string `envconfig:"OVIRT_USERNAME"`
	Password string `envconfig:"OVIRT_PASSWORD"`
	CAFile   string `envconfig:"OVIRT_CA_FILE"`
}

type OvirtSettings struct {
	URL      string
	Username string
	Password string
	CAFile   string
}

type FormatSettings struct {
	ReplaceDashInGroups bool
}

type Settings struct {
	Ovirt  OvirtSettings
	Format FormatSettings
}

// Load resolves the settings from the ovirt.ini file and the environment.
// File values win over environment values; a missing file degrades to
// environment-only settings. Nothing is validated here: empty credentials
// surface as connection failures.
func Load() (*Settings, error) {
	var env envSettings
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}
	path := env.IniPath
	if path == "" {
		path = DefaultIniFile
	}
	return load(path, env)
}

func load(path string, env envSettings) (*Settings, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	section := file.Section("ovirt")
	settings := &Settings{
		Ovirt: OvirtSettings{
			URL:      firstOf(section.Key("ovirt_url").String(), env.URL),
			Username: firstOf(section.Key("ovirt_username").String(), env.Username),
			Password: firstOf(section.Key("ovirt_password").String(), env.Password),
			CAFile:   firstOf(section.Key("ovirt_ca_file").String(), env.CAFile),
		},
	}

	// a missing [format] section means the default group-name charset
	if format, err := file.GetSection("format"); err == nil {
		settings.Format.ReplaceDashInGroups = format.Key("replace_dash_in_groups").MustBool(false)
	}

	return settings, nil
}

func firstOf(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
