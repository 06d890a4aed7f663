package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	Sheet    SheetConfig
	JWT      JWTConfig
	Admin    AdminConfig
	AI       AIConfig
	Business BusinessConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración del almacén local clave-valor.
// QuotaBytes limita el tamaño total persistido; 0 = sin límite.
type StorageConfig struct {
	DataDir    string
	QuotaBytes int64
}

// SheetConfig configuración del espejo remoto (hoja de cálculo).
// Endpoint vacío = sincronización deshabilitada.
type SheetConfig struct {
	Endpoint    string
	MaxAttempts int           // intentos por push antes de marcar fallo
	Backoff     time.Duration // espera base entre reintentos (se duplica)
}

// JWTConfig configuración de los tokens del admin.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del único admin del panel.
type AdminConfig struct {
	User         string
	PasswordHash string // hash bcrypt; vacío = panel cerrado
}

// AIConfig configuración del enriquecimiento con Gemini.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// BusinessConfig valores por defecto del negocio cuando no hay ajustes
// persistidos todavía.
type BusinessConfig struct {
	WhatsAppPhone string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, STORAGE_DATA_DIR, SHEET_ENDPOINT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "catalogo-innova"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			DataDir:    getString(v, "STORAGE_DATA_DIR", "./data"),
			QuotaBytes: int64(getInt(v, "STORAGE_QUOTA_BYTES", 5*1024*1024)),
		},
		Sheet: SheetConfig{
			Endpoint:    getString(v, "SHEET_ENDPOINT", ""),
			MaxAttempts: getInt(v, "SHEET_MAX_ATTEMPTS", 3),
			Backoff:     time.Duration(getInt(v, "SHEET_BACKOFF_MS", 2000)) * time.Millisecond,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 240),
			Issuer:     getString(v, "JWT_ISSUER", "catalogo-innova"),
		},
		Admin: AdminConfig{
			User:         getString(v, "ADMIN_USER", "admin"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Business: BusinessConfig{
			WhatsAppPhone: getString(v, "WHATSAPP_PHONE", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
