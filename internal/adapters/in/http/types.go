package http

// ErrorResponse is the error body every endpoint returns on failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QuoteRequest asks for a price without staging anything. Weight is the raw
// form string; missing or unparseable values price as zero.
type QuoteRequest struct {
	ParcelType            string `json:"parcelType"`
	Weight                string `json:"weight"`
	SenderServiceCenter   string `json:"senderServiceCenter"`
	ReceiverServiceCenter string `json:"receiverServiceCenter"`
}

// QuoteResponse is the cost breakdown the confirmation screen renders.
// Quotable is false when a service center did not resolve; all costs are
// zero and Zone is empty in that case.
type QuoteResponse struct {
	BaseCost    string `json:"baseCost"`
	ExtraCost   string `json:"extraCost"`
	TotalCost   string `json:"totalCost"`
	Zone        string `json:"zone"`
	Explanation string `json:"explanation"`
	Quotable    bool   `json:"quotable"`
}

// PartyPayload carries sender or receiver details of a staging request.
type PartyPayload struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Region        string `json:"region"`
	ServiceCenter string `json:"serviceCenter"`
	Address       string `json:"address"`
	Instruction   string `json:"instruction"`
}

// StageParcelRequest submits a completed shipment form together with the
// customer's decision: "confirm_payment" or "save_draft".
type StageParcelRequest struct {
	ParcelType string       `json:"parcelType"`
	Title      string       `json:"title"`
	Weight     string       `json:"weight"`
	Sender     PartyPayload `json:"sender"`
	Receiver   PartyPayload `json:"receiver"`
	Decision   string       `json:"decision"`
	Email      string       `json:"email"`
}

// TrackingEventPayload is one tracking history entry of a staged order.
type TrackingEventPayload struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// StagedParcelResponse is the persisted order as the client sees it.
type StagedParcelResponse struct {
	ID                 string                 `json:"id"`
	Status             string                 `json:"status"`
	Title              string                 `json:"title"`
	ParcelType         string                 `json:"parcelType"`
	Weight             string                 `json:"weight"`
	Cost               QuoteResponse          `json:"cost"`
	DeliveryType       string                 `json:"deliveryType"`
	EstimatedDelivery  string                 `json:"estimatedDelivery"`
	PaymentStatus      string                 `json:"paymentStatus"`
	TrackingHistory    []TrackingEventPayload `json:"trackingHistory"`
	CreatedBy          string                 `json:"createdBy"`
	CreatedAt          string                 `json:"createdAt"`
	CreatedAtTimestamp int64                  `json:"createdAtTimestamp"`
	Version            int                    `json:"version"`
}

// RegionResponse is one serviceable region.
type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceCenterResponse is one service center of a region.
type ServiceCenterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
