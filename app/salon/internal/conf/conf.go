package conf

type Bootstrap struct {
	Server *Server
	Data   *Data
	Chart  *Chart
	Log    *Log
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Data struct {
	Database *Database
}

// Database Source 为空时使用内存仓库
type Database struct {
	Driver string
	Source string
}

type Chart struct {
	RateLimit *RateLimit `json:"rate_limit"`
	// 请求未携带时区时使用，未配置时为 9（日本标准时间）
	DefaultTimezone *float64 `json:"default_timezone"`
}

type RateLimit struct {
	Qps   float64 `json:"qps"`
	Burst int32   `json:"burst"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
