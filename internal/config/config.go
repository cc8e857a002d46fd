package config

import "os"

type Config struct {
	Addr         string
	DatabaseURL  string
	CartDBPath   string
	ShopWhatsApp string
}

func Load() Config {
	return Config{
		Addr:         getenv("COLD_LOVE_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CartDBPath:   getenv("CART_DB_PATH", "./carts.db"),
		ShopWhatsApp: getenv("SHOP_WHATSAPP", "918810544170"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
