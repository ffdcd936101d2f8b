// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작 후 serviceStopCtx가 취소될 때까지 백그라운드에서 실행되는 서비스입니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 해야 하며,
// 서비스는 완전히 종료된 뒤(또는 이미 실행 중이어서 시작하지 않은 경우 즉시) serviceStopWG.Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
