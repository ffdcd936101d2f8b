package constants

// 라우트 경로 상수입니다.
const (
	// PathStorefront 스토어프론트 페이지
	PathStorefront = "/"

	// PathStorefrontLegacy 기존 배포 환경에서 사용하던 스토어프론트 경로
	PathStorefrontLegacy = "/index.php"

	// PathHealth 헬스체크
	PathHealth = "/health"

	// PathHealthLegacy 기존 모니터링 시스템이 호출하던 헬스체크 경로
	PathHealthLegacy = "/health_check.php"

	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*"
)

// HealthPaths 헬스체크 경로 목록입니다.
var HealthPaths = []string{PathHealth, PathHealthLegacy}

// PublicPaths 스토어프론트와 헬스체크 경로 목록입니다.
// 요청 제한, 본문 크기 제한, CORS 검사를 적용하지 않으며 메서드와 본문에 관계없이 항상 응답합니다.
var PublicPaths = []string{PathStorefront, PathStorefrontLegacy, PathHealth, PathHealthLegacy}
