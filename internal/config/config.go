package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string
	AdminChats  string // сырое значение CHAT_ID (через запятую)
	MongoURI    string
	AdminKey    string
	Port        string
	Environment string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		AdminChats:  os.Getenv("CHAT_ID"),
		MongoURI:    os.Getenv("MONGO_URI"),
		AdminKey:    os.Getenv("ADMIN_KEY"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required but not set")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required but not set")
	}

	return cfg, nil
}

// AllowedChatIDs разбирает CHAT_ID в список идентификаторов админов.
// Нечисловые элементы молча пропускаются: пустой список означает,
// что бот никому не отвечает.
func (c *Config) AllowedChatIDs() []int64 {
	var ids []int64
	for _, part := range strings.Split(c.AdminChats, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
