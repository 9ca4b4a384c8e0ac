package web

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/collector"
)

var validate = validator.New()

func init() {
	_ = validate.RegisterValidation("coinid", func(fl validator.FieldLevel) bool {
		return collector.ValidCoinID(fl.Field().String())
	})
}

// DashboardRequest is the query of the dashboard and API routes.
type DashboardRequest struct {
	Coin   string `query:"coin" validate:"required,max=64,coinid"`
	Format string `query:"format" default:"html" validate:"oneof=html text"`
}

// bindRequest binds query parameters, fills defaults and validates. The
// coin falls back to defaultCoin and is normalized before validation.
func bindRequest(c echo.Context, req *DashboardRequest, defaultCoin string) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("bind request: %w", err)
	}
	if err := defaults.Set(req); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}
	if strings.TrimSpace(req.Coin) == "" {
		req.Coin = defaultCoin
	}
	req.Coin = collector.NormalizeCoinID(req.Coin)
	req.Format = strings.ToLower(req.Format)
	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return err
	}
	return nil
}

// describeValidation renders validator errors as one line per field.
func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "coinid":
			msgs = append(msgs, fmt.Sprintf("%s must contain only lowercase letters, digits and dashes", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
