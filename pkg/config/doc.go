// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags; Load fills them,
// optionally under a prefix, from the process environment, from dotenv files
// read with joho/godotenv, or from an explicit map (handy in tests).
//
//	type Config struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("TOASTKIT_"))
//
// Parse failures wrap ErrParsingConfig.
package config
