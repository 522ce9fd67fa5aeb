package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaifmomin2004/EHR-Project/internal/middleware"
	"github.com/kaifmomin2004/EHR-Project/internal/service"
)

// PatientHandler handles patient profile HTTP requests.
type PatientHandler struct {
	patientService service.PatientService
	logger         *slog.Logger
}

// NewPatientHandler creates a new PatientHandler instance.
func NewPatientHandler(patientService service.PatientService, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create own patient profile
// @Description Create the profile owned by the calling patient identity
// @Tags patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.ProfileInput true "Profile data"
// @Success 201 {object} models.PatientProfile
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /patients [post]
func (h *PatientHandler) Create(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	var input service.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	profile, err := h.patientService.CreateOwnProfile(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetOwn godoc
// @Summary Get own patient profile
// @Description Return the calling patient's profile; 404 until created
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.PatientProfile
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /patients/me [get]
func (h *PatientHandler) GetOwn(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	profile, err := h.patientService.GetOwnProfile(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateOwn godoc
// @Summary Update own patient profile
// @Description Replace the mutable fields of the calling patient's profile
// @Tags patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.ProfileInput true "Profile data"
// @Success 200 {object} models.PatientProfile
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /patients/me [put]
func (h *PatientHandler) UpdateOwn(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	var input service.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	profile, err := h.patientService.UpdateOwnProfile(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetByID godoc
// @Summary Get a patient profile by id
// @Description Doctors and admins may fetch any profile; a patient only their own
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {object} models.PatientProfile
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /patients/{id} [get]
func (h *PatientHandler) GetByID(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	profile, err := h.patientService.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary List all patient profiles
// @Description Restricted to doctors and admins
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PatientProfile
// @Failure 403 {object} ErrorResponse
// @Router /patients [get]
func (h *PatientHandler) List(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	profiles, err := h.patientService.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}
