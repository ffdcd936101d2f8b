// Package validation 설정값 검증에 사용하는 네트워크 관련 검증 함수를 제공합니다.
package validation
