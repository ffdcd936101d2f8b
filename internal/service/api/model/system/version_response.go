package system

// VersionResponse 빌드 정보 응답입니다.
type VersionResponse struct {
	Version     string `json:"version" example:"v1.2.0"`
	Commit      string `json:"commit" example:"f25b8bf"`
	BuildDate   string `json:"build_date" example:"2026-10-18T09:00:00Z"`
	BuildNumber string `json:"build_number" example:"42"`
	GoVersion   string `json:"go_version" example:"go1.24.0"`
}
