package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	"socialwall/internal/config"
	"socialwall/internal/metrics"
	"socialwall/internal/service"
)

type Handlers struct {
	UserService          service.UserService
	AuthService          service.AuthService
	FollowService        service.FollowService
	PostService          service.PostService
	FeedService          service.FeedService
	DirectMessageService service.DirectMessageService
	StatsService         service.StatsService
	Cfg                  *config.Config
	Validate             *validator.Validate
	Metrics              *metrics.Metrics
	HealthChecker        HealthChecker
	logger               *slog.Logger
}

func NewHandlers(service *service.Service, config *config.Config, metrics *metrics.Metrics, logger *slog.Logger) *Handlers {
	return &Handlers{
		UserService:          service.User,
		AuthService:          service.Auth,
		FollowService:        service.Follow,
		PostService:          service.Post,
		FeedService:          service.Feed,
		DirectMessageService: service.DirectMessage,
		StatsService:         service.Stats,
		Cfg:                  config,
		Validate:             NewValidator(),
		Metrics:              metrics,
		logger:               logger,
	}
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// NewValidator registers the custom tags used by request DTOs.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		var upper, lower, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && lower && digit
	})

	return v
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the 400 response itself and reports whether the caller may go on.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeClientError(w, service.KindValidation, "invalid request body")
		return false
	}

	if err := h.Validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeClientError(w, service.KindValidation, "invalid request")
			return false
		}

		fields := make([]map[string]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, map[string]string{
				"property": fe.Field(),
				"message":  fieldMessage(fe),
			})
		}
		WriteJSON(w, ErrorResponse{
			ErrorCode: string(service.KindValidation),
			Message:   "validation failed",
			Details:   map[string]any{"errors": fields},
		}, http.StatusBadRequest)
		return false
	}

	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return "email must be a valid email address"
	case "username":
		return "username may only contain letters, digits and underscores"
	case "strongpassword":
		return "password must contain an uppercase letter, a lowercase letter and a digit"
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// pathID validates a UUID path variable and writes the error response when it is malformed.
func pathID(w http.ResponseWriter, value string, kind service.Kind) (string, bool) {
	if _, err := uuid.Parse(value); err != nil {
		writeClientError(w, kind, fmt.Sprintf("%q is not a valid id", value))
		return "", false
	}
	return value, true
}
