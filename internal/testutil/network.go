// Package testutil 실제 포트에서 서버를 띄우는 테스트를 위한 도우미 함수를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"time"
)

// FreePort 지금 비어 있는 로컬 TCP 포트 번호를 반환합니다.
// 반환 직후 다른 프로세스가 포트를 차지할 수 있으므로 테스트 용도로만 사용합니다.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForServer port에서 TCP 연결을 받을 수 있을 때까지 최대 timeout 동안 기다립니다.
func WaitForServer(port int, timeout time.Duration) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("%s 에서 %v 안에 서버가 시작되지 않았습니다", addr, timeout)
}

// WaitForServerDown port가 더 이상 연결을 받지 않을 때까지 최대 timeout 동안 기다립니다.
func WaitForServerDown(port int, timeout time.Duration) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return nil
		}
		_ = conn.Close()
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("%s 에서 %v 안에 서버가 종료되지 않았습니다", addr, timeout)
}
