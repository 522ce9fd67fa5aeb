package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaifmomin2004/EHR-Project/internal/middleware"
	"github.com/kaifmomin2004/EHR-Project/internal/service"
)

// RecordHandler handles medical record HTTP requests.
type RecordHandler struct {
	recordService service.RecordService
	logger        *slog.Logger
}

// NewRecordHandler creates a new RecordHandler instance.
func NewRecordHandler(recordService service.RecordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create a medical record
// @Description Author an immutable record against an existing patient profile
// @Tags medical-records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.RecordInput true "Record data"
// @Success 201 {object} models.MedicalRecord
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /medical-records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("medical record created",
		"record_id", record.ID,
		"patient_id", record.PatientID,
		"author_id", record.DoctorID,
	)
	c.JSON(http.StatusCreated, record)
}

// List godoc
// @Summary List medical records
// @Description Patients see their own records; doctors and admins see all, optionally filtered by patient
// @Tags medical-records
// @Security BearerAuth
// @Produce json
// @Param patient_id query string false "Filter by patient profile id (doctor/admin only)"
// @Success 200 {array} models.MedicalRecord
// @Failure 401 {object} ErrorResponse
// @Router /medical-records [get]
func (h *RecordHandler) List(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	records, err := h.recordService.List(c.Request.Context(), caller, c.Query("patient_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByID godoc
// @Summary Get a medical record by id
// @Description Doctors and admins may fetch any record; a patient only records bound to their own profile
// @Tags medical-records
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} models.MedicalRecord
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /medical-records/{id} [get]
func (h *RecordHandler) GetByID(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	record, err := h.recordService.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
