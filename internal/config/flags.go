package config

import "flag"

// Flags are the command-line overrides for Config.
type Flags struct {
	ConfigPath string
	Port       string
	Seed       int64
	Instances  string
	Debug      bool
}

// RegisterFlags binds the overrides to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.StringVar(&f.Port, "port", "", "HTTP port")
	fs.Int64Var(&f.Seed, "seed", 0, "Master world seed (0 for random)")
	fs.StringVar(&f.Instances, "instances", "", "Path to instance config")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	return f
}

// apply writes the flag overrides into cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Port != "" {
		cfg.Server.Port = f.Port
	}
	if f.Seed != 0 {
		cfg.Generation.Seed = f.Seed
	}
	if f.Instances != "" {
		cfg.Generation.InstancesPath = f.Instances
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
}
