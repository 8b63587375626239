package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTExpireMinutes int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No se encontró .env, usando variables del sistema")
	} else {
		log.Println("✅ .env cargado")
	}

	JWTSecret = GetEnv("JWT_SECRET_KEY")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET_KEY no está definido")
	}

	JWTExpireMinutes = 60
	if v := GetEnv("JWT_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			JWTExpireMinutes = n
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func JWTExpiry() time.Duration {
	return time.Duration(JWTExpireMinutes) * time.Minute
}
