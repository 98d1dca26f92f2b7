package http

import "github.com/dialware/golang_services/internal/display_service/domain"

// InteractionLabelRequest asks for the label describing a call or text to a
// number of the given type. NumberType nil means the contact row carried no
// type. Interaction is deliberately not range-validated: unknown values are
// served from the call table, matching the resolver's fallback.
type InteractionLabelRequest struct {
	NumberType  *int   `json:"number_type"`
	CustomLabel string `json:"custom_label,omitempty"`
	Interaction int    `json:"interaction"`
	Locale      string `json:"locale,omitempty" validate:"omitempty,max=35"`
}

// InteractionLabelResponse carries the resolved label plus the catalog key
// it came from. LabelKey is empty when the custom label short-circuited the
// catalog.
type InteractionLabelResponse struct {
	Label    string `json:"label"`
	LabelKey string `json:"label_key,omitempty"`
}

// CallLabelRequest asks for the label shown on a call action, optionally
// offering a caller-ID plugin name as an override candidate.
type CallLabelRequest struct {
	Number      string `json:"number,omitempty"`
	NumberType  *int   `json:"number_type"`
	CustomLabel string `json:"custom_label,omitempty"`
	PluginName  string `json:"plugin_name,omitempty"`
	Locale      string `json:"locale,omitempty" validate:"omitempty,max=35"`
}

// CallLabelResponse carries the resolved call label.
type CallLabelResponse struct {
	Label string `json:"label"`
}

// AnnotateRequest asks for telephone spans over message. Both fields are
// pointers on purpose: a null message propagates as a null response and a
// null number means nothing to look for.
type AnnotateRequest struct {
	Message *string `json:"message"`
	Number  *string `json:"number"`
}

// AnnotateResponse mirrors the annotated message. Message is null exactly
// when the request message was null; Spans is null in that case too.
type AnnotateResponse struct {
	Message *string                `json:"message"`
	Spans   []domain.TelephoneSpan `json:"spans"`
}

// ClassifyRequest asks whether text looks like a phone number.
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse reports the two heuristic verdicts for the text.
type ClassifyResponse struct {
	PossiblePhoneNumber bool `json:"possible_phone_number"`
	GlobalPhoneNumber   bool `json:"global_phone_number"`
}

// UpsertOverrideRequest carries the replacement text for one catalog key.
type UpsertOverrideRequest struct {
	Text string `json:"text" validate:"required,max=255"`
}

// OverrideResponse is one applied override as returned by the admin API.
type OverrideResponse struct {
	Locale    string `json:"locale"`
	LabelKey  string `json:"label_key"`
	LabelText string `json:"label_text"`
}

// ListOverridesResponse wraps the applied overrides for the list endpoint.
type ListOverridesResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// GenericErrorResponse for API errors.
type GenericErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
