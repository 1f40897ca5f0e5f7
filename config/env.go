package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "vastra"
	defaultAppPort    = "5000"
	defaultAppEnv     = "local"
	defaultUploadsDir = "uploads"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env (in that order, later wins) into the
// in-memory config map. Safe to call from anywhere; only the first call does
// any work.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGODB_URI":        defaultMongoURI,
		"MONGO_DB":           defaultMongoDB,
		"APP_PORT":           defaultAppPort,
		"APP_ENV":            defaultAppEnv,
		"UPLOADS_DIR":        defaultUploadsDir,
		"STORAGE_DISK":       "local",
		"STORAGE_LOCAL_ROOT": "storage",
		"STORAGE_URL":        "http://localhost:5000",
	}
}

// MongoURI returns the MongoDB connection string.
func MongoURI() string {
	_ = Load()
	return get("MONGODB_URI", defaultMongoURI)
}

// MongoDatabase returns the database name holding the products and orders
// collections.
func MongoDatabase() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

// AppPort returns the HTTP listen port.
func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

// AppEnv returns the runtime environment ("local", "production", ...).
func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// UploadsDir is the directory (relative to the local storage root) where
// product images are written, and the public path prefix they are served from.
func UploadsDir() string {
	_ = Load()
	return strings.Trim(get("UPLOADS_DIR", defaultUploadsDir), "/")
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string   { _ = Load(); return get("STORAGE_DISK", "local") }
func StorageLocalRoot() string { _ = Load(); return get("STORAGE_LOCAL_ROOT", "storage") }
func StorageURL() string       { _ = Load(); return get("STORAGE_URL", "http://localhost:5000") }

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// ── Limits ───────────────────────────────────────────────────────────────────

// MaxBodyBytes caps JSON request bodies (default 4 MB).
func MaxBodyBytes() int64 { return getInt64("MAX_BODY_BYTES", 4<<20) }

// MaxUploadBytes caps in-memory multipart parsing (default 16 MB).
func MaxUploadBytes() int64 { return getInt64("MAX_UPLOAD_BYTES", 16<<20) }

func getInt64(key string, fallback int64) int64 {
	_ = Load()
	n, err := strconv.ParseInt(get(key, ""), 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ── File loading ─────────────────────────────────────────────────────────────

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
