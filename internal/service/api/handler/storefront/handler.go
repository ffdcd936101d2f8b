// Package storefront 데모 상점 페이지를 렌더링하는 핸들러를 제공합니다.
//
// 페이지는 내장 템플릿 하나로 만들어지며, 요청마다 달라지는 값은 호스트명, 런타임 버전, 서버 시각뿐입니다.
// 장바구니는 브라우저 안의 카운터이며 서버로 전송되지 않습니다.
package storefront

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-server/internal/pkg/sysinfo"
	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/metrics"
	model "github.com/darkkaiser/shop-server/internal/service/api/model/storefront"
	"github.com/darkkaiser/shop-server/internal/storefront"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// NotificationDelay 장바구니 추가 알림이 화면에 머무는 시간(밀리초)입니다.
const NotificationDelay = 2000

const templateName = "storefront.html"

//go:embed templates/storefront.html
var templateFS embed.FS

// pageTemplate 시작 시 한 번만 파싱됩니다. 내장 템플릿이 잘못되었으면 프로세스가 시작되지 않습니다.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/"+templateName))

// Handler 스토어프론트 페이지 핸들러
type Handler struct {
	source sysinfo.Source

	tmpl *template.Template

	// products 카탈로그는 고정이므로 표시 값을 미리 만들어 둡니다.
	products []model.Product

	metrics *metrics.Metrics
}

// NewHandler Handler 인스턴스를 생성합니다. m이 nil이면 지표를 기록하지 않습니다.
func NewHandler(source sysinfo.Source, m *metrics.Metrics) *Handler {
	if source == nil {
		panic(constants.PanicMsgSnapshotSourceRequired)
	}

	catalog := storefront.Products()
	products := make([]model.Product, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, model.Product{
			ID:          p.ID,
			Icon:        p.Icon,
			Name:        p.Name,
			Price:       p.Price(),
			Description: p.Description,
		})
	}

	return &Handler{
		source: source,

		tmpl: pageTemplate,

		products: products,

		metrics: m,
	}
}

// PageHandler godoc
// @Summary 스토어프론트 페이지
// @Description 상품 6개와 배포 정보(Pod 이름, 런타임 버전, 서버 시각)를 보여주는 HTML 페이지를 반환합니다.
// @Tags Storefront
// @Produce html
// @Success 200 {string} string "HTML 문서"
// @Router / [get]
// @Router /index.php [get]
func (h *Handler) PageHandler(c echo.Context) error {
	snap := h.source.Snapshot()

	page := model.Page{
		Hostname:       snap.Hostname,
		RuntimeVersion: snap.RuntimeVersion,
		ServerTime:     snap.Timestamp,

		Products: h.products,

		NotificationDelayMS: NotificationDelay,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, templateName, page); err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"path":  c.Request().URL.Path,
			"error": err,
		}).Error(constants.LogMsgStorefrontRenderErr)

		return apperrors.Wrap(err, apperrors.Internal, constants.LogMsgStorefrontRenderErr)
	}

	h.metrics.ObserveStorefrontRender()

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"path":      c.Request().URL.Path,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgStorefrontRendered)

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
