// Package storefront 스토어프론트 페이지에 표시되는 상품 카탈로그를 제공합니다.
//
// 카탈로그는 컴파일 시점에 고정되며, 저장소나 외부 시스템을 사용하지 않습니다.
package storefront

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Product 페이지에 표시되는 상품 하나입니다.
type Product struct {
	ID          string // 이름의 kebab-case 슬러그 (예: "gaming-laptop")
	Icon        string
	Name        string
	PriceCents  int64
	Description string
}

// Price "$1,299.99" 형식의 가격 문자열을 반환합니다.
func (p Product) Price() string {
	return FormatPrice(p.PriceCents)
}

var catalog = []Product{
	newProduct("🎮", "Gaming Laptop", 129999, "High-performance gaming laptop with RGB keyboard and powerful GPU"),
	newProduct("📱", "Smartphone Pro", 89999, "Latest flagship smartphone with amazing camera and 5G support"),
	newProduct("🎧", "Wireless Headphones", 29999, "Premium noise-canceling headphones with 30-hour battery life"),
	newProduct("⌚", "Smart Watch", 39999, "Fitness tracking smartwatch with heart rate monitor and GPS"),
	newProduct("💻", "Mechanical Keyboard", 14999, "RGB mechanical keyboard with custom switches and programmable keys"),
	newProduct("🖱️", "Gaming Mouse", 7999, "Precision gaming mouse with 16000 DPI and customizable buttons"),
}

func newProduct(icon, name string, priceCents int64, description string) Product {
	return Product{
		ID:          strcase.ToKebab(name),
		Icon:        icon,
		Name:        name,
		PriceCents:  priceCents,
		Description: description,
	}
}

// Products 카탈로그의 복사본을 표시 순서대로 반환합니다.
func Products() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// FormatPrice 센트 단위 금액을 미국 영어 로캘의 천 단위 구분자와 소수점 두 자리로 표시합니다.
//
//	FormatPrice(129999) == "$1,299.99"
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}
