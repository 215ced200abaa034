package env

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/supakorn-kn/go-catalog/errors"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "catalog.yaml"

type Env struct {
	Server  ServerConfig  `yaml:"server"`
	MongoDB MongoDBConfig `yaml:"mongodb"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type MongoDBConfig struct {
	URI string `yaml:"uri"`
	DB  string `yaml:"db"`
}

type CatalogConfig struct {
	// Path of a catalog JSON document. Empty uses the bundled catalog.
	Path     string `yaml:"path"`
	PageSize int    `yaml:"page_size"`
}

type LogConfig struct {
	Format string `yaml:"format"`
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

var (
	once     sync.Once
	instance *Env
	loadErr  error
)

func Default() Env {

	return Env{
		Server:  ServerConfig{Port: 8080},
		MongoDB: MongoDBConfig{DB: "go-catalog_data"},
		Catalog: CatalogConfig{PageSize: 10},
		Log:     LogConfig{Format: "text"},
	}
}

// GetEnv loads the configuration once from CATALOG_CONFIG (default catalog.yaml) and the process environment.
func GetEnv() (*Env, error) {

	once.Do(func() {

		path := os.Getenv("CATALOG_CONFIG")
		if path == "" {
			path = DefaultConfigPath
		}

		instance, loadErr = Load(path, os.LookupEnv)
	})

	return instance, loadErr
}

// Load reads the YAML file at path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string, lookup LookupFunc) (*Env, error) {

	env := Default()

	if path != "" {

		b, err := os.ReadFile(path)
		switch {
		case stdErrors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(b, &env); err != nil {
				return nil, errors.DataValidationFailedError.New(fmt.Sprintf("parse %s: %v", path, err))
			}
		}
	}

	if err := env.applyOverrides(lookup); err != nil {
		return nil, err
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (e *Env) applyOverrides(lookup LookupFunc) error {

	if lookup == nil {
		return nil
	}

	if serverPort, ok := lookup("SERVER_PORT"); ok {

		parsedServerPort, err := strconv.Atoi(serverPort)
		if err != nil {
			return errors.DataValidationFailedError.New(fmt.Sprintf("SERVER_PORT: %v", err))
		}
		e.Server.Port = parsedServerPort
	}

	if mongoDBURI, ok := lookup("MONGODB_URI"); ok {
		e.MongoDB.URI = mongoDBURI
	}

	if mongoDBName, ok := lookup("MONGODB_NAME"); ok {
		e.MongoDB.DB = mongoDBName
	}

	if catalogPath, ok := lookup("CATALOG_PATH"); ok {
		e.Catalog.Path = catalogPath
	}

	if pageSize, ok := lookup("CATALOG_PAGE_SIZE"); ok {

		parsedPageSize, err := strconv.Atoi(pageSize)
		if err != nil {
			return errors.DataValidationFailedError.New(fmt.Sprintf("CATALOG_PAGE_SIZE: %v", err))
		}
		e.Catalog.PageSize = parsedPageSize
	}

	if logFormat, ok := lookup("LOG_FORMAT"); ok {
		e.Log.Format = logFormat
	}

	return nil
}

func (e Env) Validate() error {

	if e.Server.Port < 1 || e.Server.Port > 65535 {
		return errors.DataValidationFailedError.New(fmt.Sprintf("server port %d is out of range", e.Server.Port))
	}

	if e.Catalog.PageSize < 1 {
		return errors.PageSizeInvalidError.New()
	}

	if e.Log.Format != "text" && e.Log.Format != "json" {
		return errors.DataValidationFailedError.New(fmt.Sprintf("log format %q is unsupported", e.Log.Format))
	}

	if e.MongoDB.URI != "" && e.MongoDB.DB == "" {
		return errors.DataValidationFailedError.New("mongodb db must be set with mongodb uri")
	}

	return nil
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Enabled reports whether the catalog is served from MongoDB.
func (m MongoDBConfig) Enabled() bool {
	return m.URI != ""
}
