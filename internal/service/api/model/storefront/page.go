// Package storefront 스토어프론트 페이지 템플릿에 전달되는 뷰 모델을 정의합니다.
package storefront

// Page 페이지 한 번의 렌더링에 필요한 값입니다.
// Hostname, RuntimeVersion, ServerTime만 요청마다 달라지고 나머지는 고정입니다.
type Page struct {
	Hostname       string
	RuntimeVersion string
	ServerTime     string

	Products []Product

	// NotificationDelayMS 장바구니 추가 알림이 화면에 머무는 시간(밀리초)
	NotificationDelayMS int
}

// Product 상품 카드 하나의 표시 값입니다.
type Product struct {
	ID          string
	Icon        string
	Name        string
	Price       string
	Description string
}
