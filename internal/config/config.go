package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Env         string
	AppSecret   string
	Port        string
	SiteName    string
	SiteUrl     string
	OutputPath  string        // 静态页面输出路径
	OpenBrowser bool          // 生成后是否自动打开浏览器
	CatalogPath string        // 电影清单文件，空则使用内置清单
	PageCache   time.Duration // 预览服务器页面缓存时长
}

// Load 加载配置
func Load() *Config {
	cacheSeconds, err := strconv.Atoi(getEnv("PAGE_CACHE_TTL_SECONDS", "300"))
	if err != nil || cacheSeconds < 0 {
		cacheSeconds = 300
	}

	appSecret := getEnv("APP_SECRET", defaultSecret)
	if getEnv("APP_ENV", "development") == "production" && appSecret == defaultSecret {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		AppSecret:   appSecret,
		Port:        getEnv("PORT", "5005"),
		SiteName:    getEnv("SITE_NAME", "Fresh Tomatoes Movie Trailers"),
		SiteUrl:     getEnv("SITE_URL", "http://localhost:5005"),
		OutputPath:  getEnv("OUTPUT_PATH", "fresh_tomatoes.html"),
		OpenBrowser: getBool("OPEN_BROWSER", true),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		PageCache:   time.Duration(cacheSeconds) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool 解析布尔环境变量，无法识别时回退默认值
func getBool(key string, defaultValue bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
