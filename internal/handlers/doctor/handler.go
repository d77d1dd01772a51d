package doctor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"medibook/infras/otel"
	"medibook/internal/domains/doctor/model"
	"medibook/internal/domains/doctor/model/dto"
	"medibook/internal/domains/doctor/service"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	"medibook/shared/validator"
	"medibook/transport/http/response"
)

type Handler struct {
	service service.Doctor
	otel    otel.Otel
}

func New(service service.Doctor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/doctors", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDoctor)
		routerGroup.Get("/", handler.GetDoctors)
		routerGroup.Get("/{id}", handler.GetDoctorByID)
		routerGroup.Get("/{id}/availability", handler.GetDoctorAvailability)
		routerGroup.Get("/{id}/patients", handler.GetDoctorPatients)
		routerGroup.Patch("/{id}", handler.UpdateDoctor)
		routerGroup.Delete("/{id}", handler.DeleteDoctor)
	})
}

// CreateDoctor registers a doctor with a published slot catalog.
// @Summary Create a new doctor
// @Description Register a doctor with name, specialty, fee and published slots.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Message "Doctor created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors [post]
// @Security BearerAuth
func (handler *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDoctor")
	defer scope.End()

	req := dto.CreateDoctorRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create doctor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor created successfully")

	response.WithMessage(w, http.StatusCreated, "Doctor created successfully")
}

// GetDoctors retrieves all doctors based on query parameters.
// @Summary Get all doctors
// @Description Retrieve all doctors with optional filtering and pagination.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param specialty query string false "Filter by specialty"
// @Success 200 {object} dto.GetDoctorsResponse "List of doctors"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors [get]
func (handler *Handler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctors")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	specialty := r.URL.Query().Get(model.FieldSpecialty)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if specialty != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSpecialty,
			Operator: gDto.FilterOperatorEq,
			Value:    specialty,
			Table:    model.TableName,
		})
	}

	doctors, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctors")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctors retrieved successfully")

	response.WithJSON(w, http.StatusOK, doctors)
}

// GetDoctorByID retrieves a doctor by its ID.
// @Summary Get a doctor by ID
// @Description Retrieve a doctor by its unique identifier.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} dto.DoctorResponse "Doctor details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors/{id} [get]
func (handler *Handler) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctorByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	doctor, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctor by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor retrieved successfully")

	response.WithJSON(w, http.StatusOK, doctor)
}

// GetDoctorAvailability lists the doctor's slots for a date with their
// availability.
// @Summary Get a doctor's availability
// @Description List the doctor's published slots for a date together with whether each is still free.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param date query string true "Appointment date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse "Slot availability for the date"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors/{id}/availability [get]
func (handler *Handler) GetDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctorAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.service.GetAvailability(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctor availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetDoctorPatients lists patients the doctor has seen.
// @Summary Get a doctor's patient history
// @Description List checked and completed bookings for the doctor, forming the patient history view.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} bookingDto.GetBookingsResponse "Patient history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors/{id}/patients [get]
// @Security BearerAuth
func (handler *Handler) GetDoctorPatients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctorPatients")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	patients, err := handler.service.GetPatients(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctor patients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor patients retrieved successfully")

	response.WithJSON(w, http.StatusOK, patients)
}

// UpdateDoctor updates an existing doctor by its ID.
// @Summary Update a doctor by ID
// @Description Update the details of an existing doctor, including the published slot catalog.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Message "Doctor updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDoctor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDoctorRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update doctor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor updated successfully")

	response.WithMessage(w, http.StatusOK, "Doctor updated successfully")
}

// DeleteDoctor deactivates a doctor by its ID.
// @Summary Delete a doctor by ID
// @Description Deactivate a doctor so no new bookings can be made. Existing bookings are untouched.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Message "Doctor deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/doctors/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDoctor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete doctor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor deleted successfully")

	response.WithMessage(w, http.StatusOK, "Doctor deleted successfully")
}
