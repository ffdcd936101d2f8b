package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 설정 검증용 Validator를 생성합니다.
// 에러 메시지에는 Go 필드명 대신 설정 파일의 JSON 키 이름이 표시됩니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	}); err != nil {
		panic(fmt.Sprintf("'cors_origin' 검증 함수 등록 실패: %v", err))
	}

	return v
}

// validate 태그 기반 검증과 태그로 표현할 수 없는 규칙을 함께 검사합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c); err != nil {
		return err
	}

	origins := c.HTTPServer.CORS.AllowOrigins
	if len(origins) > 1 {
		for _, o := range origins {
			if strings.TrimSpace(o) == "*" {
				return apperrors.New(apperrors.InvalidInput, "CORS 와일드카드(*)는 다른 Origin과 함께 설정할 수 없습니다")
			}
		}
	}

	return nil
}

// checkStruct 검증 실패 시 첫 번째 위반 항목을 설정 키 기준의 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "ListenPort":
		return apperrors.Newf(apperrors.InvalidInput, "HTTP 서버 포트(http_server.listen_port)는 1에서 65535 사이여야 합니다: %v", fe.Value())
	case "TLSCertFile", "TLSKeyFile":
		key := fe.Field()
		if fe.Tag() == "required_if" {
			return apperrors.Newf(apperrors.InvalidInput, "TLS 서버 활성화 시 %s 설정은 필수입니다", key)
		}
		return apperrors.Newf(apperrors.NotFound, "%s 파일을 찾을 수 없습니다: '%v'", key, fe.Value())
	case "RuntimeVersionField":
		return apperrors.Newf(apperrors.InvalidInput, "health.runtime_version_field는 %s 또는 %s 중 하나여야 합니다: '%v'", RuntimeVersionFieldPHP, RuntimeVersionFieldRuntime, fe.Value())
	case "Timezone":
		return apperrors.Newf(apperrors.InvalidInput, "storefront.timezone에 알 수 없는 시간대가 지정되었습니다: '%v'", fe.Value())
	}

	switch fe.Tag() {
	case "cors_origin":
		return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: scheme://host[:port])", fe.Value())
	case "min":
		if fe.Field() == "allow_origins" {
			return apperrors.New(apperrors.InvalidInput, "CORS 허용 Origin(http_server.cors.allow_origins) 목록이 비어 있습니다")
		}
	}

	return apperrors.Newf(apperrors.InvalidInput, "설정 값이 올바르지 않습니다: %s (조건: %s)", namespaceToKey(fe.Namespace()), fe.Tag())
}

// namespaceToKey "AppConfig.http_server.rate_limit.burst"를 "http_server.rate_limit.burst"로 변환합니다.
func namespaceToKey(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
