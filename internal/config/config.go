package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Sparql Sparql `yaml:"sparql"`
	Cache  Cache  `yaml:"cache"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Sparql struct {
	Endpoint  string `yaml:"endpoint"`
	UserAgent string `yaml:"userAgent"`
	// Timeouts in seconds; zero values fall back to the defaults below.
	ConnectTimeout int `yaml:"connectTimeout"`
	RequestTimeout int `yaml:"requestTimeout"`
}

type Cache struct {
	Backend       string `yaml:"backend"` // redis, memcached, memory
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	TTLMinutes    int    `yaml:"ttlMinutes"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Sparql.UserAgent == "" {
		config.Sparql.UserAgent = "straatnamen-api/1.0"
	}
	if config.Sparql.ConnectTimeout == 0 {
		config.Sparql.ConnectTimeout = 10
	}
	if config.Sparql.RequestTimeout == 0 {
		config.Sparql.RequestTimeout = 30
	}
	if config.Cache.Backend == "" {
		config.Cache.Backend = "memory"
	}
	if config.Cache.TTLMinutes == 0 {
		config.Cache.TTLMinutes = 60
	}

	return config, nil
}
