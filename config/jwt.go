package config

// Jwt 鉴权配置，密钥由外部登录服务共享
type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpiresTime int64  `json:"expires_time" yaml:"expires_time"`
}
