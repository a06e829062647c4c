package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LoadDotEnv copies variables from ./.env into the environment without
// overriding ones already set. A missing file is fine.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
