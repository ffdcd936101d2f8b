package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일명과 설정 파일명에 사용됩니다.
	AppName = "shop-server"

	// DefaultFilename 기본 설정 파일명입니다. 파일이 없으면 내장 기본값으로 실행됩니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다. 이 접두사로 시작하지 않는 변수는 읽지 않습니다.
	// 이중 언더스코어(__)는 계층 구분자로 해석됩니다. 예: SHOP_SERVER_HTTP_SERVER__LISTEN_PORT -> http_server.listen_port
	EnvPrefix = "SHOP_SERVER_"
)

// 헬스체크 응답에서 런타임 버전을 담는 JSON 키로 사용할 수 있는 값입니다.
const (
	RuntimeVersionFieldPHP     = "php_version"
	RuntimeVersionFieldRuntime = "runtime_version"
)

// AppConfig 애플리케이션 설정의 최상위 구조체입니다.
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Health     HealthConfig     `json:"health"`
	Storefront StorefrontConfig `json:"storefront"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	Log        LogConfig        `json:"log"`
}

// HealthConfig 헬스체크 응답 형식 설정입니다.
type HealthConfig struct {
	// RuntimeVersionField 런타임 버전 값을 담을 JSON 키 (php_version 또는 runtime_version)
	RuntimeVersionField string `json:"runtime_version_field" validate:"oneof=php_version runtime_version"`
}

// StorefrontConfig 스토어프론트 페이지 설정입니다.
type StorefrontConfig struct {
	// Timezone 서버 시각 표시에 사용할 IANA 시간대 이름 (빈 값이면 프로세스 로컬 시간대)
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
}

// HTTPServerConfig HTTP 서버의 포트, TLS, CORS, 요청 제한, 부가 엔드포인트 설정입니다.
type HTTPServerConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`

	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`

	EnableVersion bool `json:"enable_version"`
	EnableMetrics bool `json:"enable_metrics"`
	EnableSwagger bool `json:"enable_swagger"`
}

// CORSConfig 교차 출처 요청을 허용할 Origin 목록입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// RateLimitConfig 클라이언트 IP별 요청 제한(토큰 버킷) 설정입니다.
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

// LogConfig 로그 파일 설정입니다.
type LogConfig struct {
	Dir string `json:"dir" validate:"required"`
}

// Default 내장 기본 설정을 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Debug: false,
		Health: HealthConfig{
			RuntimeVersionField: RuntimeVersionFieldPHP,
		},
		HTTPServer: HTTPServerConfig{
			ListenPort: 8080,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				Burst:             40,
			},
			EnableVersion: true,
			EnableMetrics: true,
			EnableSwagger: true,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load 기본 설정 파일(shop-server.json)과 환경 변수로 설정을 로드합니다.
// 기본 설정 파일이 없으면 내장 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile 지정된 설정 파일과 환경 변수로 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

// load 설정을 다음 우선순위로 병합한 뒤 검증합니다: 환경 변수 > 설정 파일 > 내장 기본값
func load(filename string, fileRequired bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 내장 기본값
	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "내장 기본 설정을 로드할 수 없습니다")
	}

	// 2. JSON 설정 파일
	if _, err := os.Stat(filename); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일에 접근할 수 없습니다: '%s'", filename)
		}
		if fileRequired {
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		}
	} else if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일을 해석할 수 없습니다: '%s'", filename)
	}

	// 3. 환경 변수 (EnvPrefix로 시작하는 변수만, 알 수 없는 키는 4단계에서 거부)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyToPath), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 설정을 로드할 수 없습니다")
	}

	// 4. 구조체 변환 (알 수 없는 키는 오타로 간주하여 거부)
	var cfg AppConfig
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "json",
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 값을 구조체로 변환할 수 없습니다")
	}

	// 5. 유효성 검사
	if err := cfg.validate(newValidator()); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정('%s') 검증에 실패했습니다", filename)
	}

	return &cfg, nil
}

// envKeyToPath SHOP_SERVER_HTTP_SERVER__LISTEN_PORT 형식의 환경 변수 이름을 http_server.listen_port로 변환합니다.
func envKeyToPath(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// VerifyRecommendations 실행은 가능하지만 운영 환경에서 권장되지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용합니다(port: %d). 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}

	if !c.Debug {
		for _, origin := range c.HTTPServer.CORS.AllowOrigins {
			if origin == "*" {
				warnings = append(warnings, "운영 모드에서 모든 Origin(*)의 교차 출처 요청을 허용하고 있습니다")
				break
			}
		}
	}

	if !c.HTTPServer.TLSServer && c.HTTPServer.EnableSwagger && !c.Debug {
		warnings = append(warnings, "운영 모드에서 Swagger UI가 공개되어 있습니다 (http_server.enable_swagger)")
	}

	return warnings
}
