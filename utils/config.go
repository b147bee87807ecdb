package utils

import (
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

//ConfigName - ini file looked up next to the executable
const ConfigName = "filecopier.ini"

//Config - settings from the ini file
type Config struct {
	//DBDir holds <name>.db files, relative paths are resolved against the ini file
	DBDir    string
	Hash     string
	FailStop int
	Exif     bool
}

//DefaultConfig - settings used when no ini file exists
func DefaultConfig(baseDir string) *Config {
	return &Config{
		DBDir: filepath.Join(baseDir, "db"),
		Hash:  MD5,
	}
}

//LoadConfig - reads path over the defaults for baseDir.
//A missing file is not an error when required is false.
func LoadConfig(path string, baseDir string, required bool) (*Config, error) {
	cfg := DefaultConfig(baseDir)
	if _, err := os.Stat(path); os.IsNotExist(err) && !required {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, &ConfigError{Msg: "failed to load config file " + path, Err: err}
	}

	db := f.Section("database")
	if dir := db.Key("dir").String(); dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		cfg.DBDir = dir
	}

	cp := f.Section("copy")
	cfg.Hash = cp.Key("hash").MustString(cfg.Hash)
	if _, err := NewHash(cfg.Hash); err != nil {
		return nil, err
	}
	if cp.HasKey("fail_stop") {
		n, err := cp.Key("fail_stop").Int()
		if err != nil {
			return nil, &ConfigError{Msg: "fail_stop must be a number", Err: err}
		}
		cfg.FailStop = n
	}
	cfg.Exif = cp.Key("exif").MustBool(false)

	return cfg, nil
}

//DBPath - store file for database name
func (c *Config) DBPath(name string) string {
	return filepath.Join(c.DBDir, name+".db")
}
