package handler

import (
	"errors"
	"net/http"

	"lead-service/internal/model"
	"lead-service/internal/store"
	"lead-service/pkg/logger"
	"lead-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LeadHandler serves the lead list and create endpoints.
type LeadHandler struct {
	store store.LeadStore
}

// NewLeadHandler creates a LeadHandler backed by the given store.
func NewLeadHandler(s store.LeadStore) *LeadHandler {
	return &LeadHandler{store: s}
}

// LeadRequest defines the structure for lead creation requests
type LeadRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AltPhone      string `json:"altPhone"`
	Email         string `json:"email"`
	AltEmail      string `json:"altEmail"`
	Status        string `json:"status"`
	Qualification string `json:"qualification"`
	InterestField string `json:"interestField"`
	Source        string `json:"source"`
	AssignedTo    string `json:"assignedTo"`
	JobInterest   string `json:"jobInterest"`
	State         string `json:"state"`
	City          string `json:"city"`
	PassoutYear   string `json:"passoutYear"`
	HeardFrom     string `json:"heardFrom"`
}

// ListLeads handles GET /api/leads. The response is the full collection,
// most recently created first.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLeadOperation("list")

	leads, err := h.store.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to retrieve leads", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
		})
	}

	log.Info("Leads retrieved", zap.Int("count", len(leads)))
	return c.JSON(http.StatusOK, leads)
}

// CreateLead handles POST /api/leads. Required fields are checked in a fixed
// order and the response names the first one missing.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLeadOperation("create")

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	lead := model.Lead{
		Name:          req.Name,
		Phone:         req.Phone,
		AltPhone:      req.AltPhone,
		Email:         req.Email,
		AltEmail:      req.AltEmail,
		Status:        req.Status,
		Qualification: req.Qualification,
		InterestField: req.InterestField,
		Source:        req.Source,
		AssignedTo:    req.AssignedTo,
		JobInterest:   req.JobInterest,
		State:         req.State,
		City:          req.City,
		PassoutYear:   req.PassoutYear,
		HeardFrom:     req.HeardFrom,
	}

	if err := h.store.Create(c.Request().Context(), &lead); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			log.Warn("Lead rejected, required field missing", zap.String("field", verr.Field))
			prometheus.RecordValidationFailure(verr.Field)
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": verr.Error(),
			})
		}
		log.Error("Failed to create lead", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
		})
	}

	log.Info("Lead created",
		zap.Uint("id", lead.ID),
		zap.String("name", lead.Name),
		zap.String("status", lead.Status),
		zap.String("assigned_to", lead.AssignedTo))
	return c.JSON(http.StatusCreated, lead)
}
