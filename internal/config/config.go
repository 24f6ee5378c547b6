package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Members  MembersConfig
	Provider ProviderConfig
}

// Load 从环境变量和可选的配置文件加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	auth, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	provider, err := loadProviderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Auth:     auth,
		Members:  loadMembersConfig(),
		Provider: provider,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AuthConfig 描述管理员登录凭证。两项都必须配置，否则拒绝启动。
type AuthConfig struct {
	Username string
	Password string
}

func loadAuthConfig() (AuthConfig, error) {
	username := strings.TrimSpace(os.Getenv("SITE_USER"))
	password := os.Getenv("SITE_PASS")

	if username == "" || password == "" {
		return AuthConfig{}, errors.New("SITE_USER and SITE_PASS must both be set")
	}

	return AuthConfig{Username: username, Password: password}, nil
}

// MembersConfig 描述成员名单文件位置。
type MembersConfig struct {
	Path string
}

func loadMembersConfig() MembersConfig {
	return MembersConfig{Path: getEnvOrDefault("MEMBERS_PATH", "members.full.json")}
}

// ProviderConfig 描述大模型服务相关配置。
type ProviderConfig struct {
	BaseURL         string
	APIKey          string
	Model           string
	MaxOutputTokens int
}

// Enabled 表示是否提供了必需的端点和密钥。
func (c ProviderConfig) Enabled() bool {
	return c.BaseURL != "" && c.APIKey != "" && c.Model != ""
}

const defaultMaxOutputTokens = 700

// loadProviderConfig 从可选的 config.yaml 读取 provider 段，
// 环境变量（PROVIDER_BASE_URL 等）可以覆盖文件里的值。
func loadProviderConfig() (ProviderConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := strings.TrimSpace(os.Getenv("SITE_CONFIG_DIR")); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetDefault("provider.max_output_tokens", defaultMaxOutputTokens)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return ProviderConfig{}, fmt.Errorf("read config file: %w", err)
		}
		// 没有配置文件时只依赖环境变量。
	}

	cfg := ProviderConfig{
		BaseURL:         strings.TrimSpace(v.GetString("provider.base_url")),
		APIKey:          strings.TrimSpace(v.GetString("provider.api_key")),
		Model:           strings.TrimSpace(v.GetString("provider.model")),
		MaxOutputTokens: v.GetInt("provider.max_output_tokens"),
	}
	if cfg.MaxOutputTokens < 1 {
		cfg.MaxOutputTokens = defaultMaxOutputTokens
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
