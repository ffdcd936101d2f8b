// Package middleware API 서버에서 사용하는 echo 미들웨어를 제공합니다.
//
// 패닉 복구, 접근 로그, IP별 요청 제한, echo 로거 어댑터를 포함합니다.
package middleware
