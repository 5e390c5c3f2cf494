package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения: JUBEE_SERVER_URL, JUBEE_DB_PATH и т.д.
const EnvPrefix = "JUBEE"

const defaultEnvFile = ".env"

// LoadOptions describes where configuration comes from.
// Приоритет: флаги > переменные окружения (.env) > файл конфигурации > значения по умолчанию.
type LoadOptions struct {
	// Flags - флаги cobra; привязываются только те, что реально объявлены
	Flags *pflag.FlagSet
	// ConfigFile - явный путь к YAML файлу. Пустая строка означает поиск
	// config.yaml в текущей директории; отсутствие файла не ошибка.
	ConfigFile string
	// EnvFile - путь к .env файлу, по умолчанию ".env"
	EnvFile string
}

// newViper создает изолированный экземпляр viper: глобальное состояние не
// разделяется между клиентом, сервером и тестами
func newViper(opts LoadOptions) (*viper.Viper, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return v, nil
}

// loadEnvFile загружает .env, если он существует. Уже заданные переменные не перезаписываются.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to stat env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// bindFlags связывает ключи конфигурации с именами флагов
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	if flags == nil {
		return nil
	}
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}
