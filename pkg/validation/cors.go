package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin origin이 "*" 또는 "scheme://host[:port]" 형식인지 검증합니다.
//
// scheme은 http, https만 허용하며 경로, 쿼리, 프래그먼트, 사용자 정보는 포함할 수 없습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin이 비어 있습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (origin=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin을 URL로 해석할 수 없습니다 (origin=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin의 scheme은 http 또는 https여야 합니다 (origin=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin에는 scheme, host, port 외의 요소를 포함할 수 없습니다 (origin=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin의 포트가 숫자가 아닙니다 (origin=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류 (origin=%q): %w", origin, err)
		}
	}

	if err := ValidateHostname(u.Hostname()); err != nil {
		return fmt.Errorf("CORS Origin 호스트 오류 (origin=%q): %w", origin, err)
	}

	return nil
}

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("포트는 1에서 65535 사이여야 합니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname host가 localhost, IP 주소, 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("호스트명이 비어 있습니다")
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 넘을 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return fmt.Errorf("%w (host=%q)", err, host)
		}
	}

	// 최상위 도메인은 숫자로만 구성될 수 없습니다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인이 숫자로만 구성되어 있습니다 (host=%q)", host)
	}

	return nil
}

func validateLabel(label string) error {
	if label == "" || len(label) > 63 {
		return fmt.Errorf("레이블 길이는 1에서 63자 사이여야 합니다 (label=%q)", label)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("레이블은 하이픈으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
	}
	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return fmt.Errorf("레이블에 허용되지 않는 문자가 있습니다 (char=%q)", r)
		}
	}
	return nil
}
