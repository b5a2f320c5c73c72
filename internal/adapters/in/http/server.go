// Package http is the inbound REST adapter. It translates echo requests
// into commands and queries and maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	stageParcelHandler commands.StageParcelCommandHandler

	getRegionsHandler        queries.GetRegionsQueryHandler
	getServiceCentersHandler queries.GetServiceCentersQueryHandler

	calculator *services.TariffCalculator
}

// NewServer creates an HTTP server over the staging command handler, the
// geography query handlers, and the pricing engine.
func NewServer(
	stageParcelHandler commands.StageParcelCommandHandler,
	getRegionsHandler queries.GetRegionsQueryHandler,
	getServiceCentersHandler queries.GetServiceCentersQueryHandler,
	calculator *services.TariffCalculator,
) *Server {
	return &Server{
		stageParcelHandler:       stageParcelHandler,
		getRegionsHandler:        getRegionsHandler,
		getServiceCentersHandler: getServiceCentersHandler,
		calculator:               calculator,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/parcels/quote", s.QuoteParcel)
	e.POST("/api/v1/parcels", s.StageParcel)
	e.GET("/api/v1/regions", s.GetRegions)
	e.GET("/api/v1/regions/:regionId/service-centers", s.GetServiceCenters)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// QuoteParcel handles POST /api/v1/parcels/quote. The quote is
// side-effect-free; an unresolved service center yields a zero-cost,
// non-quotable breakdown rather than an error, matching the live pricing
// panel on the shipment form.
func (s *Server) QuoteParcel(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parcelType, err := parcel.ParseType(req.ParcelType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel type: " + err.Error(),
		})
	}

	breakdown := s.calculator.Quote(
		parcelType,
		req.SenderServiceCenter,
		req.ReceiverServiceCenter,
		kernel.ParseWeight(req.Weight),
	)

	return ctx.JSON(http.StatusOK, quoteResponse(breakdown))
}

// StageParcel handles POST /api/v1/parcels: the full submit-and-stage flow.
func (s *Server) StageParcel(ctx echo.Context) error {
	var req StageParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := buildStageCommand(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel data: " + err.Error(),
		})
	}

	staged, err := s.stageParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to stage parcel: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, stagedParcelResponse(staged))
}

// GetRegions handles GET /api/v1/regions.
func (s *Server) GetRegions(ctx echo.Context) error {
	regions, err := s.getRegionsHandler.Handle(queries.NewGetRegionsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve regions",
		})
	}

	response := make([]RegionResponse, len(regions))
	for i, r := range regions {
		response[i] = RegionResponse{ID: r.ID, Name: r.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetServiceCenters handles GET /api/v1/regions/:regionId/service-centers.
func (s *Server) GetServiceCenters(ctx echo.Context) error {
	query, err := queries.NewGetServiceCentersQuery(ctx.Param("regionId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid region: " + err.Error(),
		})
	}

	centers, err := s.getServiceCentersHandler.Handle(query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Unknown region",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve service centers",
		})
	}

	response := make([]ServiceCenterResponse, len(centers))
	for i, c := range centers {
		response[i] = ServiceCenterResponse{ID: c.ID, Name: c.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

func buildStageCommand(req StageParcelRequest) (commands.StageParcelCommand, error) {
	parcelType, err := parcel.ParseType(req.ParcelType)
	if err != nil {
		return commands.StageParcelCommand{}, err
	}

	sender, err := partyFromPayload(req.Sender)
	if err != nil {
		return commands.StageParcelCommand{}, err
	}
	receiver, err := partyFromPayload(req.Receiver)
	if err != nil {
		return commands.StageParcelCommand{}, err
	}

	decision, err := commands.ParseDecision(req.Decision)
	if err != nil {
		return commands.StageParcelCommand{}, err
	}

	draft := parcel.Draft{
		Type:     parcelType,
		Title:    req.Title,
		Weight:   req.Weight,
		Sender:   sender,
		Receiver: receiver,
	}

	return commands.NewStageParcelCommand(draft, decision, req.Email)
}

func partyFromPayload(p PartyPayload) (parcel.Party, error) {
	return parcel.NewParty(p.Name, p.Contact, p.Region, p.ServiceCenter, p.Address, p.Instruction)
}

func quoteResponse(b pricing.CostBreakdown) QuoteResponse {
	return QuoteResponse{
		BaseCost:    b.BaseCost().String(),
		ExtraCost:   b.ExtraCost().String(),
		TotalCost:   b.TotalCost().String(),
		Zone:        b.Zone().String(),
		Explanation: b.Explanation(),
		Quotable:    b.IsQuotable(),
	}
}

func stagedParcelResponse(staged *order.Order) StagedParcelResponse {
	history := staged.TrackingHistory()
	events := make([]TrackingEventPayload, len(history))
	for i, e := range history {
		events[i] = TrackingEventPayload{
			Status:      e.Status(),
			Timestamp:   e.Timestamp().Format(time.RFC3339),
			Description: e.Description(),
			Location:    e.Location(),
		}
	}

	return StagedParcelResponse{
		ID:                 staged.ID().String(),
		Status:             staged.Status().String(),
		Title:              staged.Title(),
		ParcelType:         staged.ParcelType().String(),
		Weight:             staged.Weight().String(),
		Cost:               quoteResponse(staged.Pricing()),
		DeliveryType:       staged.DeliveryType(),
		EstimatedDelivery:  staged.EstimatedDelivery().Format(time.RFC3339),
		PaymentStatus:      staged.PaymentStatus().String(),
		TrackingHistory:    events,
		CreatedBy:          staged.CreatedBy(),
		CreatedAt:          staged.CreatedAt().Format(time.RFC3339),
		CreatedAtTimestamp: staged.CreatedAtTimestamp(),
		Version:            staged.Version(),
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
