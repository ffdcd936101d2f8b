package system

// HealthResponse 헬스체크 응답입니다. (runtime_version_field = "runtime_version")
type HealthResponse struct {
	// Status 항상 "healthy"
	Status string `json:"status" example:"healthy"`

	// Timestamp 서버 로컬 시각 (YYYY-MM-DD HH:MM:SS)
	Timestamp string `json:"timestamp" example:"2026-10-18 14:03:27"`

	// Hostname 운영체제 호스트명 (Kubernetes에서는 Pod 이름)
	Hostname string `json:"hostname" example:"shop-server-7d9f8c6b5-x2kqp"`

	// RuntimeVersion 서버 런타임 버전
	RuntimeVersion string `json:"runtime_version" example:"go1.24.0"`
}

// LegacyHealthResponse 기존 모니터링 시스템과 호환되는 헬스체크 응답입니다. (기본값)
//
// 필드 구성은 HealthResponse와 같고, 런타임 버전의 JSON 키만 php_version입니다.
type LegacyHealthResponse struct {
	Status     string `json:"status" example:"healthy"`
	Timestamp  string `json:"timestamp" example:"2026-10-18 14:03:27"`
	Hostname   string `json:"hostname" example:"shop-server-7d9f8c6b5-x2kqp"`
	PHPVersion string `json:"php_version" example:"go1.24.0"`
}
