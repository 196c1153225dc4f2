package config

import (
	"os"
	"path/filepath"

	"social-store/internal/storage"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir string    `yaml:"data_dir"`
	Files   FileNames `yaml:"files"`
}

type FileNames struct {
	Users    string `yaml:"users"`
	Posts    string `yaml:"posts"`
	Comments string `yaml:"comments"`
	Friends  string `yaml:"friends"`
}

// Default возвращает конфигурацию с файлами в текущем каталоге
func Default() *Config {
	return &Config{
		DataDir: ".",
		Files: FileNames{
			Users:    "users.txt",
			Posts:    "posts.txt",
			Comments: "comments.txt",
			Friends:  "friends.txt",
		},
	}
}

// LoadConfig читает YAML-файл конфигурации; отсутствующий файл
// заменяется значениями по умолчанию
func LoadConfig(path string) (*Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// StorageFiles собирает полные пути файлов хранилища
func (c *Config) StorageFiles() storage.Files {
	return storage.Files{
		Users:    filepath.Join(c.DataDir, c.Files.Users),
		Posts:    filepath.Join(c.DataDir, c.Files.Posts),
		Comments: filepath.Join(c.DataDir, c.Files.Comments),
		Friends:  filepath.Join(c.DataDir, c.Files.Friends),
	}
}
