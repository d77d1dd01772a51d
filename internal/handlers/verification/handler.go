package verification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"medibook/infras/otel"
	"medibook/internal/domains/verification/model/dto"
	"medibook/internal/domains/verification/service"
	"medibook/shared/constant"
	"medibook/shared/validator"
	"medibook/transport/http/response"
)

type Handler struct {
	service service.Verification
	otel    otel.Otel
}

func New(service service.Verification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/verification", func(routerGroup chi.Router) {
		routerGroup.Post("/send-otp", handler.SendOtp)
		routerGroup.Post("/verify-otp", handler.VerifyOtp)
	})
}

// SendOtp issues a one-time code to a guest phone number.
// @Summary Send an OTP
// @Description Send a one-time verification code to the given phone number. Resends are throttled by a cooldown.
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body dto.SendOtpRequest true "Send OTP Request"
// @Success 200 {object} dto.SendOtpResponse "OTP sent successfully"
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verification/send-otp [post]
func (handler *Handler) SendOtp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendOtp")
	defer scope.End()

	req := dto.SendOtpRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendOtp(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send otp")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTP sent successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyOtp checks a one-time code and marks the phone verified.
// @Summary Verify an OTP
// @Description Verify the one-time code for a phone number. A correct code marks the phone verified for a limited window.
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body dto.VerifyOtpRequest true "Verify OTP Request"
// @Success 200 {object} dto.VerifyOtpResponse "Phone verified successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verification/verify-otp [post]
func (handler *Handler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyOtp")
	defer scope.End()

	req := dto.VerifyOtpRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyOtp(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify otp")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Phone verified successfully")

	response.WithJSON(w, http.StatusOK, res)
}
